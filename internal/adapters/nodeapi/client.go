// Package nodeapi holds the HTTP clients for the marketplace node API and for
// federated search providers.
package nodeapi

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const exchangeRatesPath = "ob/exchangerates/"

// newRestyClient builds a JSON client with the shared timeout. baseURL may be
// empty for clients that call absolute URLs.
func newRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		c.SetBaseURL(baseURL)
	}
	return c
}
