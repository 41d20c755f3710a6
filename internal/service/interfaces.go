// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/centsible/internal/model"
)

// ExpenseFilter defines filtering options for expense queries.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// Storage defines the contract for the persistence collaborator. The core
// loads state through it at startup and saves after every mutation.
type Storage interface {
	// Expense operations
	SaveExpense(ctx context.Context, expense model.Expense) error
	SaveExpenses(ctx context.Context, expenses []model.Expense) error
	DeleteExpense(ctx context.Context, id string) error
	GetExpenseByID(ctx context.Context, id string) (*model.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)

	// Budget operations
	GetBudgetSettings(ctx context.Context) (model.BudgetSettings, error)
	SaveBudgetSettings(ctx context.Context, settings model.BudgetSettings) error

	// Rate table cache
	GetRateTable(ctx context.Context) (model.RateTable, error)
	SaveRateTable(ctx context.Context, table model.RateTable) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RateSource fetches a fresh exchange-rate table from an external service.
type RateSource interface {
	FetchLatest(ctx context.Context) (model.RateTable, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
