package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/Veraticus/centsible/internal/service"
)

// DefaultRateURL is the exchange-rate service endpoint used when none is
// configured.
const DefaultRateURL = "https://open.er-api.com/v6/latest/USD"

const maxResponseBytes = 1 << 20

// Fetcher retrieves fresh rate tables over HTTP. Any failure is reported
// to the caller as "no update"; the previously cached table stays in
// effect.
type Fetcher struct {
	client *http.Client
	url    string
	retry  service.RetryOptions
}

// NewFetcher creates a fetcher for the given endpoint. A nil client gets
// a default with a 10 second timeout.
func NewFetcher(url string, client *http.Client) *Fetcher {
	if url == "" {
		url = DefaultRateURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{
		url:    url,
		client: client,
		retry:  service.RetryOptions{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond},
	}
}

// rateResponse is the wire format of the rate service.
type rateResponse struct {
	Rates map[string]float64 `json:"rates"`
	Base  string             `json:"base"`
}

// FetchLatest performs the rate GET with retries and returns a table
// restricted to the supported currency set. Unsupported codes and
// non-positive rates are dropped; a response quoted against a base
// other than USD is rejected outright.
func (f *Fetcher) FetchLatest(ctx context.Context) (model.RateTable, error) {
	var resp rateResponse

	err := common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}

		res, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrRateFetchFailed, err)
		}
		defer func() { _ = res.Body.Close() }()

		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: unexpected status %d", common.ErrRateFetchFailed, res.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrRateFetchFailed, err)
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			// A malformed body will not improve on retry.
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: decode: %v", common.ErrRateFetchFailed, err),
				Retryable: false,
			}
		}
		return nil
	}, f.retry)
	if err != nil {
		return model.RateTable{}, err
	}

	// Rates from a different base would be silently wrong once the
	// table pins USD at 1.0; treat them as "no update".
	if resp.Base != "" && resp.Base != model.BaseCurrency {
		return model.RateTable{}, fmt.Errorf("%w: response base %q, want %s",
			common.ErrRateFetchFailed, resp.Base, model.BaseCurrency)
	}

	rates := make(map[string]float64, len(resp.Rates))
	for code, rate := range resp.Rates {
		if !model.IsSupportedCurrency(code) || rate <= 0 {
			continue
		}
		rates[code] = rate
	}
	if len(rates) == 0 {
		return model.RateTable{}, fmt.Errorf("%w: no usable rates in response", common.ErrRateFetchFailed)
	}

	return model.NewRateTable(rates, time.Now()), nil
}
