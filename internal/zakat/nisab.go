// internal/zakat/nisab.go

// Package zakat implements the almsgiving rules: nisab eligibility
// thresholds from precious-metal spot prices, the hawl holding period, and
// the 2.5% levy itself. All functions are pure and operate on decimals.
package zakat

import "github.com/shopspring/decimal"

// Canonical nisab weights in grams. These must not be altered.
var (
	goldNisabGrams   = decimal.RequireFromString("87.48")
	silverNisabGrams = decimal.RequireFromString("612.36")
)

// GoldNisab derives the gold-based eligibility threshold from a per-gram
// spot price. The price is caller-supplied; sanity of the input is the
// caller's responsibility.
func GoldNisab(pricePerGram decimal.Decimal) decimal.Decimal {
	return pricePerGram.Mul(goldNisabGrams)
}

// SilverNisab derives the silver-based eligibility threshold from a
// per-gram spot price.
func SilverNisab(pricePerGram decimal.Decimal) decimal.Decimal {
	return pricePerGram.Mul(silverNisabGrams)
}

// Thresholds pairs the two nisab figures. They answer different
// jurisprudential questions and are always reported together.
type Thresholds struct {
	GoldBased   decimal.Decimal `json:"gold_based"`
	SilverBased decimal.Decimal `json:"silver_based"`
}

// ComputeThresholds computes both thresholds from current spot prices,
// rounded to 2 decimal places for display.
func ComputeThresholds(goldPricePerGram, silverPricePerGram decimal.Decimal) Thresholds {
	return Thresholds{
		GoldBased:   GoldNisab(goldPricePerGram).Round(2),
		SilverBased: SilverNisab(silverPricePerGram).Round(2),
	}
}
