package model

import "time"

// BaseCurrency is the fixed base every rate is expressed against.
const BaseCurrency = "USD"

// supportedCurrencies is the closed set of currency codes the engine
// accepts at its boundaries.
var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"AUD": true, "CAD": true, "CHF": true, "CNY": true,
	"HKD": true, "NZD": true, "SGD": true, "INR": true,
	"MXN": true, "BRL": true, "KRW": true, "SEK": true,
}

// SupportedCurrencies returns the supported codes in a stable order.
func SupportedCurrencies() []string {
	return []string{
		"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY",
		"HKD", "NZD", "SGD", "INR", "MXN", "BRL", "KRW", "SEK",
	}
}

// IsSupportedCurrency reports whether code is in the supported set.
func IsSupportedCurrency(code string) bool {
	return supportedCurrencies[code]
}

// RateTable maps currency codes to their rate relative to BaseCurrency.
// An empty table is the not-yet-loaded state; tables are always replaced
// wholesale, never merged.
type RateTable struct {
	FetchedAt time.Time
	Rates     map[string]float64
	Base      string
}

// NewRateTable builds a populated rate table. The base currency is pinned
// at 1.0 regardless of the input map.
func NewRateTable(rates map[string]float64, fetchedAt time.Time) RateTable {
	copied := make(map[string]float64, len(rates)+1)
	for code, rate := range rates {
		copied[code] = rate
	}
	copied[BaseCurrency] = 1.0
	return RateTable{
		Base:      BaseCurrency,
		Rates:     copied,
		FetchedAt: fetchedAt,
	}
}

// IsEmpty reports whether the table has not been loaded yet.
func (t RateTable) IsEmpty() bool {
	return len(t.Rates) == 0
}

// Rate returns the rate for code relative to the base. A missing code or
// a non-positive stored rate yields 1.0 so lookups never blow up; callers
// that need to distinguish use Has.
func (t RateTable) Rate(code string) float64 {
	rate, ok := t.Rates[code]
	if !ok || rate <= 0 {
		return 1.0
	}
	return rate
}

// Has reports whether the table carries a usable rate for code.
func (t RateTable) Has(code string) bool {
	rate, ok := t.Rates[code]
	return ok && rate > 0
}
