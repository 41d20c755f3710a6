package main

import (
	"testing"
	"time"

	"github.com/Veraticus/centsible/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVRow(t *testing.T) {
	e, err := parseCSVRow([]string{"2024-03-10", "42.50", "usd", "Groceries", "weekly shop"})
	require.NoError(t, err)

	assert.Equal(t, 42.50, e.Amount)
	assert.Equal(t, model.CategoryGroceries, e.Category)
	assert.Equal(t, "USD", e.Currency, "currency is uppercased")
	assert.Equal(t, "weekly shop", e.Note)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), e.Date)
	assert.NotEmpty(t, e.ID)
}

func TestParseCSVRow_NoteOptional(t *testing.T) {
	e, err := parseCSVRow([]string{"2024-03-10 14:30", "10", "EUR", "dining"})
	require.NoError(t, err)

	assert.Empty(t, e.Note)
	assert.Equal(t, 14, e.Date.Hour())
}

func TestParseCSVRow_Invalid(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"too few columns", []string{"2024-03-10", "10"}},
		{"bad date", []string{"March 10th", "10", "USD", "dining"}},
		{"bad amount", []string{"2024-03-10", "ten", "USD", "dining"}},
		{"negative amount", []string{"2024-03-10", "-5", "USD", "dining"}},
		{"unknown category", []string{"2024-03-10", "10", "USD", "yachts"}},
		{"unsupported currency", []string{"2024-03-10", "10", "XYZ", "dining"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSVRow(tt.row)
			assert.Error(t, err)
		})
	}
}
