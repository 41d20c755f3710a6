package model

import (
	"errors"
	"fmt"
)

// Budget validation errors.
var ErrNegativeBudget = errors.New("monthly budget cannot be negative")

// BudgetSettings is the single per-user budget record. It is replaced
// wholesale on edit.
type BudgetSettings struct {
	Currency      string
	MonthlyBudget float64
}

// DefaultBudgetSettings is the state before the user has set a budget.
func DefaultBudgetSettings() BudgetSettings {
	return BudgetSettings{MonthlyBudget: 0, Currency: BaseCurrency}
}

// Validate checks the budget invariants.
func (b *BudgetSettings) Validate() error {
	if b.MonthlyBudget < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativeBudget, b.MonthlyBudget)
	}
	if !IsSupportedCurrency(b.Currency) {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, b.Currency)
	}
	return nil
}
