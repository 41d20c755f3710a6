package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(url string) *Fetcher {
	f := NewFetcher(url, nil)
	f.retry = service.RetryOptions{MaxAttempts: 1}
	return f
}

func TestFetcher_FetchLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"base": "USD",
			"rates": {"USD": 1, "EUR": 0.9, "JPY": 151.4, "XXX": 42, "SEK": -1}
		}`))
	}))
	defer server.Close()

	table, err := newTestFetcher(server.URL).FetchLatest(context.Background())
	require.NoError(t, err)

	assert.False(t, table.IsEmpty())
	assert.Equal(t, 0.9, table.Rate("EUR"))
	assert.Equal(t, 151.4, table.Rate("JPY"))
	assert.False(t, table.Has("XXX"), "unsupported codes are filtered")
	assert.False(t, table.Has("SEK"), "non-positive rates are dropped")
	assert.False(t, table.FetchedAt.IsZero())
}

func TestFetcher_FetchLatest_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base": "USD", "rates": `))
	}))
	defer server.Close()

	table, err := newTestFetcher(server.URL).FetchLatest(context.Background())
	assert.Error(t, err)
	assert.True(t, table.IsEmpty(), "failed fetch yields no table")
}

func TestFetcher_FetchLatest_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	table, err := newTestFetcher(server.URL).FetchLatest(context.Background())
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.True(t, table.IsEmpty())
}

func TestFetcher_FetchLatest_WrongBase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base": "EUR", "rates": {"USD": 1.1, "EUR": 1}}`))
	}))
	defer server.Close()

	table, err := newTestFetcher(server.URL).FetchLatest(context.Background())
	assert.ErrorIs(t, err, common.ErrRateFetchFailed, "non-USD bases would skew every conversion")
	assert.True(t, table.IsEmpty())
}

func TestFetcher_FetchLatest_NoUsableRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"XXX": 1.5}}`))
	}))
	defer server.Close()

	_, err := newTestFetcher(server.URL).FetchLatest(context.Background())
	assert.ErrorIs(t, err, common.ErrRateFetchFailed)
}
