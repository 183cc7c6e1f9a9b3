package domain

import (
	"context"
	"sync"
	"time"
)

// ExchangeRateTable maps a currency code to its rate relative to the server currency.
type ExchangeRateTable map[string]float64

// Clone returns an independent copy of the table.
func (t ExchangeRateTable) Clone() ExchangeRateTable {
	out := make(ExchangeRateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// ExchangeRateSnapshot is a point-in-time view of the rate cache.
type ExchangeRateSnapshot struct {
	ServerCurrency ServerCurrency    `json:"serverCurrency"`
	Rates          ExchangeRateTable `json:"rates"`
	FetchedAt      time.Time         `json:"fetchedAt"`
}

// FetchOptions are passed through to the rate endpoint as query parameters.
type FetchOptions struct {
	Params map[string]string
}

// FetchHandle tracks one in-flight exchange rate fetch. It can be observed
// through Done/Wait and aborted with Cancel.
type FetchHandle struct {
	StartedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	rates ExchangeRateTable
	err   error
}

// NewFetchHandle creates a handle whose Cancel calls cancel.
func NewFetchHandle(cancel context.CancelFunc) *FetchHandle {
	return &FetchHandle{
		StartedAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Complete records the outcome and releases waiters. Only the first call has effect.
func (h *FetchHandle) Complete(rates ExchangeRateTable, err error) {
	h.once.Do(func() {
		h.rates = rates
		h.err = err
		close(h.done)
	})
}

// Cancel aborts the fetch. The cache is left untouched.
func (h *FetchHandle) Cancel() {
	if h.cancel != nil {
		h.cancel()
	}
}

// Done is closed once the fetch has finished.
func (h *FetchHandle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the fetch finishes and returns the fetched table.
func (h *FetchHandle) Wait() (ExchangeRateTable, error) {
	<-h.done
	return h.rates, h.err
}

// Err returns the fetch error, or nil while the fetch is still running.
func (h *FetchHandle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
