package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/config"
	"github.com/Veraticus/centsible/internal/currency"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/Veraticus/centsible/internal/service"
	"github.com/Veraticus/centsible/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/centsible/centsible.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)
	common.LogDebug("Opening database", common.Fields{"path": dbPath})

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open the expense database at "+dbPath, err)
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, common.NewUserError("could not upgrade the expense database schema", err)
	}

	return store, nil
}

// displayCurrency resolves the display currency from flags/config.
func displayCurrency() string {
	cur := viper.GetString("currency.display")
	if cur == "" {
		return model.BaseCurrency
	}
	if !model.IsSupportedCurrency(cur) {
		slog.Warn("Unsupported display currency, falling back to base",
			"currency", cur, "base", model.BaseCurrency)
		return model.BaseCurrency
	}
	return cur
}

// loadConverter builds a converter from the cached rate table. A missing
// cache yields a not-ready converter; amounts pass through unconverted.
func loadConverter(ctx context.Context, store service.Storage) *currency.Converter {
	table, err := store.GetRateTable(ctx)
	if err != nil {
		common.LogError(err, "Failed to load cached rates, conversions disabled", nil)
		table = model.RateTable{}
	}
	return currency.NewConverter(table)
}

// loadBudget fetches budget settings, defaulting when none are stored.
func loadBudget(ctx context.Context, store service.Storage) model.BudgetSettings {
	settings, err := store.GetBudgetSettings(ctx)
	if err != nil {
		return model.DefaultBudgetSettings()
	}
	return settings
}

// loadExpenses fetches the full expense history.
func loadExpenses(ctx context.Context, store service.Storage) ([]model.Expense, error) {
	expenses, err := store.ListExpenses(ctx, service.ExpenseFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, nil
}

// parseFrameFlag converts the --frame flag value to a TimeFrame.
func parseFrameFlag(value string) (model.TimeFrame, error) {
	frame, err := model.ParseTimeFrame(value)
	if err != nil {
		return "", fmt.Errorf("%w (valid: all, today, week, month, quarter, halfyear, year)", err)
	}
	return frame, nil
}

// parseDateFlag parses a --date flag, defaulting to now when empty.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", value)
}
