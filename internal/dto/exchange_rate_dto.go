package dto

import (
	"time"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// ExchangeRatesResponse is the current content of the rate cache.
type ExchangeRatesResponse struct {
	ServerCurrency domain.ServerCurrency `json:"serverCurrency"`
	Rates          map[string]float64    `json:"rates"`
	FetchedAt      *time.Time            `json:"fetchedAt,omitempty"`
}

// ToExchangeRatesResponse converts a cache snapshot to its DTO.
func ToExchangeRatesResponse(s domain.ExchangeRateSnapshot) ExchangeRatesResponse {
	res := ExchangeRatesResponse{
		ServerCurrency: s.ServerCurrency,
		Rates:          s.Rates,
	}
	if res.Rates == nil {
		res.Rates = map[string]float64{}
	}
	if !s.FetchedAt.IsZero() {
		fetchedAt := s.FetchedAt
		res.FetchedAt = &fetchedAt
	}
	return res
}

// ExchangeRateResponse is the rate of one currency relative to the server currency.
type ExchangeRateResponse struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}
