// internal/currency/table.go
package currency

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"prospera/internal/util"
)

// Table holds exchange rates relative to a fixed numeraire (USD).
// Exactly one rate per code; the last write wins. Reads and writes are
// guarded by an RWMutex so a single table can be shared across requests.
type Table struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

// Seed rates are illustrative defaults, not live data. Overridable at
// runtime via Register.
var defaultRates = map[string]string{
	"USD": "1.00",
	"EUR": "1.13",
	"GBP": "1.33",
	"EGP": "0.020",
}

// NewTable returns a Table seeded with the default rates.
func NewTable() *Table {
	t := &Table{rates: make(map[string]decimal.Decimal, len(defaultRates))}
	for code, rate := range defaultRates {
		t.rates[code] = decimal.RequireFromString(rate)
	}
	return t
}

// NewTableWithRates returns a Table seeded from the given rates.
// Non-positive rates are rejected.
func NewTableWithRates(rates map[string]decimal.Decimal) (*Table, error) {
	t := &Table{rates: make(map[string]decimal.Decimal, len(rates))}
	for code, rate := range rates {
		if err := t.Register(code, rate); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Register sets the rate for code, overwriting any existing entry.
// The only validation is positivity.
func (t *Table) Register(code string, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("register %s rate %s: %w", code, rate, util.ErrInvalidRate)
	}
	t.mu.Lock()
	t.rates[code] = rate
	t.mu.Unlock()
	return nil
}

// Rate returns the registered rate for code.
func (t *Table) Rate(code string) (decimal.Decimal, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rate, ok := t.rates[code]
	return rate, ok
}

// Codes returns the registered currency codes in sorted order.
func (t *Table) Codes() []string {
	t.mu.RLock()
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	t.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

// Convert converts amount from one currency to another and rounds the result
// to 2 decimal places, HALF_UP. Identical from/to codes still run through the
// formula so rounding behavior stays uniform. Fails with ErrInvalidCurrency
// when either code has no registered rate.
func (t *Table) Convert(fromCode, toCode string, amount decimal.Decimal) (decimal.Decimal, error) {
	t.mu.RLock()
	fromRate, fromOK := t.rates[fromCode]
	toRate, toOK := t.rates[toCode]
	t.mu.RUnlock()

	if !fromOK || !toOK {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", fromCode, toCode, util.ErrInvalidCurrency)
	}

	// DivRound rounds half away from zero, which is HALF_UP for the
	// non-negative amounts handled here.
	return amount.Mul(fromRate).DivRound(toRate, 2), nil
}
