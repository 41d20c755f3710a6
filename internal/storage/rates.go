package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/centsible/internal/model"
)

// GetRateTable loads the cached exchange-rate table. An empty table (no
// cache yet) is returned without error; it is the not-yet-loaded state.
func (s *SQLiteStorage) GetRateTable(ctx context.Context) (model.RateTable, error) {
	if err := validateContext(ctx); err != nil {
		return model.RateTable{}, err
	}

	var base string
	var fetchedAt time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT base, fetched_at FROM exchange_rate_meta WHERE id = 1
	`).Scan(&base, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RateTable{}, nil
	}
	if err != nil {
		return model.RateTable{}, fmt.Errorf("failed to get rate metadata: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT code, rate FROM exchange_rates`)
	if err != nil {
		return model.RateTable{}, fmt.Errorf("failed to get rates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	rates := make(map[string]float64)
	for rows.Next() {
		var code string
		var rate float64
		if err := rows.Scan(&code, &rate); err != nil {
			return model.RateTable{}, fmt.Errorf("failed to scan rate: %w", err)
		}
		rates[code] = rate
	}
	if err := rows.Err(); err != nil {
		return model.RateTable{}, fmt.Errorf("failed to iterate rates: %w", err)
	}
	if len(rates) == 0 {
		return model.RateTable{}, nil
	}

	table := model.NewRateTable(rates, fetchedAt)
	table.Base = base
	return table, nil
}

// SaveRateTable replaces the cached rate table wholesale in one
// transaction. Last writer wins.
func (s *SQLiteStorage) SaveRateTable(ctx context.Context, table model.RateTable) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if table.IsEmpty() {
		return fmt.Errorf("%w: rate table", ErrEmptySlice)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM exchange_rates`); err != nil {
		return fmt.Errorf("failed to clear rates: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO exchange_rates (code, rate) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for code, rate := range table.Rates {
		if _, err := stmt.ExecContext(ctx, code, rate); err != nil {
			return fmt.Errorf("failed to save rate %s: %w", code, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO exchange_rate_meta (id, base, fetched_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base = excluded.base,
			fetched_at = excluded.fetched_at
	`, table.Base, table.FetchedAt.UTC()); err != nil {
		return fmt.Errorf("failed to save rate metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rate table: %w", err)
	}
	return nil
}
