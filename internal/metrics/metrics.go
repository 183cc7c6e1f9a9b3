// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelResult   = "result"
	labelProvider = "provider"

	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultCanceled = "canceled"
	ResultSkipped  = "skipped"
)

var (
	exchangeRateFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mpc",
		Name:      "exchange_rate_fetches_total",
		Help:      "the number of exchange rate fetches by outcome",
	}, []string{labelResult})

	exchangeRateCurrencies = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "mpc",
		Name:      "exchange_rate_currencies",
		Help:      "the number of currencies in the exchange rate cache",
	})

	exchangeRateFetchSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mpc",
		Name:      "exchange_rate_fetch_seconds",
		Help:      "the duration of exchange rate fetches",
		Buckets:   prometheus.DefBuckets,
	})

	searchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mpc",
		Name:      "search_requests_total",
		Help:      "the number of calls to search providers by provider and outcome",
	}, []string{labelProvider, labelResult})
)

// ExchangeRateFetch records the outcome and duration of a rate fetch.
func ExchangeRateFetch(result string, seconds float64) {
	exchangeRateFetches.WithLabelValues(result).Inc()
	exchangeRateFetchSeconds.Observe(seconds)
}

// ExchangeRateTableSize records the number of cached rates.
func ExchangeRateTableSize(n int) {
	exchangeRateCurrencies.Set(float64(n))
}

// SearchRequest records one call to a search provider.
func SearchRequest(provider, result string) {
	if provider == "" {
		provider = "query"
	}
	searchRequests.WithLabelValues(provider, result).Inc()
}
