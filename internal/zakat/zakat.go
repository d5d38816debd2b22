// internal/zakat/zakat.go
package zakat

import "github.com/shopspring/decimal"

// Rate is the fixed zakat levy applied once nisab is met.
var Rate = decimal.RequireFromString("0.025")

// Calculate sums the current values of the selected assets and, when the
// total meets or exceeds the nisab threshold, returns total x 2.5%;
// otherwise zero. An empty selection yields zero.
//
// No currency conversion happens here: the caller must supply a selection
// already normalized to a single currency. The math is currency-agnostic.
func Calculate(nisab decimal.Decimal, values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	if total.GreaterThanOrEqual(nisab) {
		return total.Mul(Rate)
	}
	return decimal.Zero
}

// Assessment is the dual-threshold zakat result. GoldBased is the
// obligatory figure, SilverBased the supplementary/recommended one; both
// are always populated.
type Assessment struct {
	Thresholds  Thresholds      `json:"thresholds"`
	Total       decimal.Decimal `json:"total"`
	GoldBased   decimal.Decimal `json:"gold_based_due"`
	SilverBased decimal.Decimal `json:"silver_based_due"`
}

// Assess runs Calculate once per threshold over the same normalized values
// and reports both results together.
func Assess(thresholds Thresholds, values []decimal.Decimal) Assessment {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return Assessment{
		Thresholds:  thresholds,
		Total:       total,
		GoldBased:   Calculate(thresholds.GoldBased, values),
		SilverBased: Calculate(thresholds.SilverBased, values),
	}
}
