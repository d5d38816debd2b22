// internal/zakat/zakat_test.go
package zakat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func values(amounts ...string) []decimal.Decimal {
	vs := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		vs[i] = decimal.RequireFromString(a)
	}
	return vs
}

func TestCalculate(t *testing.T) {
	nisab := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		selected []decimal.Decimal
		want     string
	}{
		{"above threshold", values("2000"), "50"},
		{"below threshold", values("999.99"), "0"},
		{"boundary is inclusive", values("600", "400"), "25"},
		{"empty selection", nil, "0"},
		{"sums before comparing", values("500", "300", "200"), "25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(nisab, tt.selected)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestCalculateMonotonicity(t *testing.T) {
	nisab := decimal.NewFromInt(1000)

	// increasing any value never decreases the due amount
	lower := Calculate(nisab, values("900"))
	crossing := Calculate(nisab, values("1000"))
	higher := Calculate(nisab, values("1100"))

	assert.True(t, lower.LessThanOrEqual(crossing))
	assert.True(t, crossing.LessThanOrEqual(higher))
}

func TestAssess(t *testing.T) {
	// Silver threshold is the lower bar: totals between the two trigger
	// only the silver-based (recommended) figure.
	thresholds := Thresholds{
		GoldBased:   decimal.NewFromInt(418154),
		SilverBased: decimal.NewFromInt(31977),
	}

	assessment := Assess(thresholds, values("40000"))
	assert.True(t, assessment.Total.Equal(decimal.NewFromInt(40000)))
	assert.True(t, assessment.GoldBased.IsZero(), "below gold nisab")
	assert.True(t, assessment.SilverBased.Equal(decimal.NewFromInt(1000)), "40000 x 2.5%%")
	assert.Equal(t, thresholds, assessment.Thresholds)

	// Above both bars, both figures are due and equal.
	assessment = Assess(thresholds, values("500000"))
	assert.True(t, assessment.GoldBased.Equal(decimal.NewFromInt(12500)))
	assert.True(t, assessment.SilverBased.Equal(decimal.NewFromInt(12500)))
}

func TestAssessEmptySelection(t *testing.T) {
	assessment := Assess(ComputeThresholds(decimal.NewFromInt(4780), decimal.RequireFromString("52.22")), nil)
	assert.True(t, assessment.Total.IsZero())
	assert.True(t, assessment.GoldBased.IsZero())
	assert.True(t, assessment.SilverBased.IsZero())
}
