package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/model"
)

// GetBudgetSettings loads the singleton budget record. A missing row is
// reported as common.ErrNotFound; callers fall back to defaults.
func (s *SQLiteStorage) GetBudgetSettings(ctx context.Context) (model.BudgetSettings, error) {
	if err := validateContext(ctx); err != nil {
		return model.BudgetSettings{}, err
	}

	var settings model.BudgetSettings
	err := s.db.QueryRowContext(ctx, `
		SELECT monthly_budget, currency FROM budget_settings WHERE id = 1
	`).Scan(&settings.MonthlyBudget, &settings.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BudgetSettings{}, fmt.Errorf("%w: budget settings", common.ErrNotFound)
	}
	if err != nil {
		return model.BudgetSettings{}, fmt.Errorf("failed to get budget settings: %w", err)
	}
	return settings, nil
}

// SaveBudgetSettings replaces the singleton budget record wholesale.
func (s *SQLiteStorage) SaveBudgetSettings(ctx context.Context, settings model.BudgetSettings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_settings (id, monthly_budget, currency, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			monthly_budget = excluded.monthly_budget,
			currency = excluded.currency,
			updated_at = CURRENT_TIMESTAMP
	`, settings.MonthlyBudget, settings.Currency)
	if err != nil {
		return fmt.Errorf("failed to save budget settings: %w", err)
	}
	return nil
}
