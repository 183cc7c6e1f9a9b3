package repositories

import (
	"context"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// ExchangeRateSource fetches the node's current exchange rate table.
type ExchangeRateSource interface {
	// FetchExchangeRates retrieves the full table. params are passed through
	// to the endpoint as query parameters.
	FetchExchangeRates(ctx context.Context, params map[string]string) (domain.ExchangeRateTable, error)
}
