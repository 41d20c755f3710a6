package currency

import (
	"testing"
	"time"

	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() model.RateTable {
	return model.NewRateTable(map[string]float64{
		"EUR": 0.9,
		"GBP": 0.79,
		"JPY": 151.4,
	}, time.Now())
}

func TestConverter_Convert_Identity(t *testing.T) {
	conv := NewConverter(model.RateTable{})

	for _, code := range model.SupportedCurrencies() {
		got, err := conv.Convert(123.45, code, code)
		require.NoError(t, err, "identity conversion never needs rates")
		assert.Equal(t, 123.45, got)
	}
}

func TestConverter_Convert(t *testing.T) {
	conv := NewConverter(testTable())

	got, err := conv.Convert(100, "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 90, got, 1e-9)

	got, err = conv.Convert(90, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-9)
}

func TestConverter_Convert_RoundTrip(t *testing.T) {
	conv := NewConverter(testTable())
	codes := []string{"USD", "EUR", "GBP", "JPY"}

	for _, from := range codes {
		for _, to := range codes {
			there, err := conv.Convert(250.75, from, to)
			require.NoError(t, err)
			back, err := conv.Convert(there, to, from)
			require.NoError(t, err)
			assert.InDelta(t, 250.75, back, 1e-9, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestConverter_Convert_Errors(t *testing.T) {
	empty := NewConverter(model.RateTable{})
	_, err := empty.Convert(10, "USD", "EUR")
	assert.ErrorIs(t, err, common.ErrRatesUnavailable)

	conv := NewConverter(testTable())
	_, err = conv.Convert(10, "USD", "SEK")
	assert.ErrorIs(t, err, common.ErrUnknownCurrency)
	_, err = conv.Convert(10, "SEK", "USD")
	assert.ErrorIs(t, err, common.ErrUnknownCurrency)
}

func TestConverter_ConvertedAmount_NeverFails(t *testing.T) {
	expense := model.Expense{Amount: 100, Currency: "EUR", Category: model.CategoryDining}

	// Rates not loaded: original amount passes through.
	empty := NewConverter(model.RateTable{})
	assert.False(t, empty.Ready())
	assert.Equal(t, 100.0, empty.ConvertedAmount(expense, "USD"))

	// Rates loaded: real conversion.
	conv := NewConverter(testTable())
	assert.True(t, conv.Ready())
	assert.InDelta(t, 100/0.9, conv.ConvertedAmount(expense, "USD"), 1e-9)

	// Unknown code falls back to rate 1.0 rather than failing.
	odd := model.Expense{Amount: 50, Currency: "XXX"}
	assert.InDelta(t, 50*0.9, conv.ConvertedAmount(odd, "EUR"), 1e-9)
}
