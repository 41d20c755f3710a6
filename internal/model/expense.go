// Package model defines the domain types for the expense engine.
package model

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"time"
)

// Expense validation errors.
var (
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrZeroDate            = errors.New("date must be set")
)

// Expense represents a single recorded expense. Expenses are immutable
// after creation; edits are modeled as delete plus recreate.
type Expense struct {
	Date     time.Time
	ID       string
	Category Category
	Currency string
	Note     string
	Amount   float64 // in original currency units
}

// NewExpense validates inputs and builds an Expense with a generated ID.
func NewExpense(amount float64, category Category, currency string, date time.Time, note string) (Expense, error) {
	e := Expense{
		Amount:   amount,
		Category: category,
		Currency: currency,
		Date:     date,
		Note:     note,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	e.ID = e.GenerateID()
	return e, nil
}

// Validate checks the expense invariants: positive amount, known category,
// supported currency, non-zero date.
func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return fmt.Errorf("%w: %.2f", ErrNonPositiveAmount, e.Amount)
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	if !IsSupportedCurrency(e.Currency) {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, e.Currency)
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// GenerateID derives a stable short identifier from the expense contents.
func (e *Expense) GenerateID() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		e.Date.Format(time.RFC3339Nano),
		e.Amount,
		e.Currency,
		e.Category,
		e.Note)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:8])
}
