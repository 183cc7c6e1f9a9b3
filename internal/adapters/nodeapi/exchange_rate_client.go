package nodeapi

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	"github.com/go-resty/resty/v2"
)

// ExchangeRateClient fetches the rate table from the node's exchange rate endpoint.
type ExchangeRateClient struct {
	client *resty.Client
}

var _ portsrepo.ExchangeRateSource = (*ExchangeRateClient)(nil)

// NewExchangeRateClient creates a client for the node at serverURL.
func NewExchangeRateClient(serverURL string, timeout time.Duration) *ExchangeRateClient {
	return &ExchangeRateClient{client: newRestyClient(serverURL, timeout)}
}

func (c *ExchangeRateClient) FetchExchangeRates(ctx context.Context, params map[string]string) (domain.ExchangeRateTable, error) {
	var table domain.ExchangeRateTable
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&table).
		ForceContentType("application/json").
		Get(exchangeRatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch exchange rates: unexpected status %d", resp.StatusCode())
	}
	if table == nil {
		table = domain.ExchangeRateTable{}
	}
	return table, nil
}
