package services

import (
	"context"
	"time"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency metadata
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a currency descriptor. Testnet codes resolve to
	// their mainnet descriptor.
	GetCurrencyByCode(code string) (*domain.CurrencyDescriptor, error)

	// ListCurrencies retrieves all known currencies ordered by code.
	ListCurrencies() []domain.CurrencyDescriptor
}

// UnitConverterSvc converts between display amounts and integer base units
type UnitConverterSvc interface {
	// DecimalToInteger scales a display amount to base units. ok is false for an
	// unrecognized currency unless opts.Strict asks for an error.
	DecimalToInteger(amount float64, code string, opts domain.UnitOptions) (int64, bool, error)

	// IntegerToDecimal scales base units back to a display amount.
	IntegerToDecimal(amount int64, code string, opts domain.UnitOptions) (float64, bool, error)
}

// CurrencyFormatterSvc renders amounts for display
type CurrencyFormatterSvc interface {
	// FormatPrice renders a price without locale or symbol.
	FormatPrice(price float64, code string) (string, error)

	// FormatCurrency renders an amount with its symbol for a locale. An
	// unrecognized currency yields an empty string and no error.
	FormatCurrency(amount float64, code string, opts *domain.FormatOptions) (string, error)
}

// RateConverterSvc converts amounts between currencies using cached rates
type RateConverterSvc interface {
	ConvertCurrency(amount float64, fromCode, toCode string) (float64, error)

	// ConvertAndFormatCurrency converts then formats in toCode. Missing rate data
	// falls back to formatting the original amount unless opts say otherwise.
	ConvertAndFormatCurrency(amount float64, fromCode, toCode string, opts *domain.ConvertFormatOptions) (string, error)

	GetCurrencyValidity(code string) (domain.CurrencyValidity, error)

	// PairedCurrency renders "<price> (<converted>)" when both currencies are
	// usable and differ.
	PairedCurrency(price float64, fromCode, toCode string) (string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	UnitConverterSvc
	CurrencyFormatterSvc
	RateConverterSvc
}

// ExchangeRateReaderSvc defines read operations on the exchange rate cache
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns 1 for the server currency and the cached rate otherwise.
	GetExchangeRate(code string) (float64, bool)

	// Snapshot returns a copy of the cache and the time it was last filled.
	Snapshot() domain.ExchangeRateSnapshot

	ServerCurrency() domain.ServerCurrency
}

// ExchangeRateFetcherSvc defines the refresh side of the exchange rate cache
type ExchangeRateFetcherSvc interface {
	// FetchExchangeRates starts an asynchronous fetch. On success the cache is
	// replaced wholesale; on failure it is left as it was.
	FetchExchangeRates(ctx context.Context, opts domain.FetchOptions) *domain.FetchHandle

	// OnFetching registers a listener called with every new fetch handle.
	OnFetching(listener func(*domain.FetchHandle))

	// Run fetches immediately and then every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateFetcherSvc
}
