// internal/currency/table_test.go
package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospera/internal/util"
)

func TestConvert(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name   string
		from   string
		to     string
		amount string
		want   string
	}{
		{"EUR to USD", "EUR", "USD", "1000", "1130.00"},
		{"USD to EUR", "USD", "EUR", "1130", "1000.00"},
		{"GBP to EGP", "GBP", "EGP", "10", "665.00"},
		{"same code still rounds", "USD", "USD", "10.005", "10.01"},
		{"zero amount", "EUR", "USD", "0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(tt.from, tt.to, decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestConvertHalfUpRounding(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Register("XTS", decimal.RequireFromString("3")))

	// 10 / 3 = 3.333..., 2 dp HALF_UP
	got, err := table.Convert("USD", "XTS", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, "3.33", got.StringFixed(2))

	// 0.125 x 1 / 1 rounds up to 0.13
	got, err = table.Convert("USD", "USD", decimal.RequireFromString("0.125"))
	require.NoError(t, err)
	assert.Equal(t, "0.13", got.StringFixed(2))
}

func TestConvertUnknownCurrency(t *testing.T) {
	table := NewTable()

	_, err := table.Convert("XXX", "USD", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, util.ErrInvalidCurrency)

	_, err = table.Convert("USD", "XXX", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, util.ErrInvalidCurrency)
}

func TestConvertRoundTrip(t *testing.T) {
	table := NewTable()
	tolerance := decimal.RequireFromString("0.01")

	for _, amount := range []string{"1", "99.99", "123.45", "100000"} {
		x := decimal.RequireFromString(amount)
		there, err := table.Convert("GBP", "USD", x)
		require.NoError(t, err)
		back, err := table.Convert("USD", "GBP", there)
		require.NoError(t, err)
		assert.True(t, back.Sub(x).Abs().LessThanOrEqual(tolerance),
			"round trip of %s drifted to %s", x, back)
	}
}

func TestRegister(t *testing.T) {
	table := NewTable()

	err := table.Register("JPY", decimal.RequireFromString("0.0067"))
	require.NoError(t, err)
	rate, ok := table.Rate("JPY")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.0067")))

	// last write wins
	require.NoError(t, table.Register("JPY", decimal.RequireFromString("0.007")))
	rate, _ = table.Rate("JPY")
	assert.True(t, rate.Equal(decimal.RequireFromString("0.007")))
}

func TestRegisterRejectsNonPositiveRates(t *testing.T) {
	table := NewTable()

	assert.ErrorIs(t, table.Register("EUR", decimal.Zero), util.ErrInvalidRate)
	assert.ErrorIs(t, table.Register("EUR", decimal.RequireFromString("-1")), util.ErrInvalidRate)

	// the seeded rate survives the failed overwrite
	rate, ok := table.Rate("EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.13")))
}

func TestCodes(t *testing.T) {
	table := NewTable()
	assert.Equal(t, []string{"EGP", "EUR", "GBP", "USD"}, table.Codes())
}

func TestNewTableWithRates(t *testing.T) {
	rates := map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"CHF": decimal.RequireFromString("1.10"),
	}
	table, err := NewTableWithRates(rates)
	require.NoError(t, err)
	assert.Equal(t, []string{"CHF", "USD"}, table.Codes())

	_, err = NewTableWithRates(map[string]decimal.Decimal{"USD": decimal.Zero})
	assert.ErrorIs(t, err, util.ErrInvalidRate)
}
