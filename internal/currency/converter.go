// Package currency converts monetary amounts between currencies using a
// cached exchange-rate table.
package currency

import (
	"fmt"

	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/model"
)

// Converter converts amounts using a read-only rate table snapshot. All
// methods are pure and safe to call concurrently.
type Converter struct {
	table model.RateTable
}

// NewConverter creates a converter over the given rate table snapshot.
func NewConverter(table model.RateTable) *Converter {
	return &Converter{table: table}
}

// Ready reports whether rates have been loaded. Callers that need
// precise conversions should check this before trusting results.
func (c *Converter) Ready() bool {
	return !c.table.IsEmpty()
}

// Convert converts amount from one currency to another. Same-currency
// conversions always succeed without a rate lookup. It fails when rates
// are not loaded or either code has no usable rate.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	if c.table.IsEmpty() {
		return 0, common.ErrRatesUnavailable
	}
	if !c.table.Has(from) {
		return 0, fmt.Errorf("%w: %q", common.ErrUnknownCurrency, from)
	}
	if !c.table.Has(to) {
		return 0, fmt.Errorf("%w: %q", common.ErrUnknownCurrency, to)
	}

	// Both rates are relative to the same base, so the ratio is
	// base-invariant.
	return amount * (c.table.Rate(to) / c.table.Rate(from)), nil
}

// ConvertedAmount returns the expense amount in the display currency. It
// never fails: with no rates loaded it returns the original amount, and
// unknown codes fall back to a rate of 1.0. Both fallbacks are accepted
// approximations, not errors.
func (c *Converter) ConvertedAmount(e model.Expense, to string) float64 {
	return c.ConvertValue(e.Amount, e.Currency, to)
}

// ConvertValue is the never-fail conversion underlying ConvertedAmount.
func (c *Converter) ConvertValue(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	if c.table.IsEmpty() {
		return amount
	}
	return amount * (c.table.Rate(to) / c.table.Rate(from))
}
