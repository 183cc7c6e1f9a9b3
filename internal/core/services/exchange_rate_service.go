package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/metrics"
)

// exchangeRateService owns the exchange rate cache. The table is only ever
// replaced as a whole, so readers see either the old or the new table.
type exchangeRateService struct {
	BaseService
	source portsrepo.ExchangeRateSource
	server domain.ServerCurrency

	mu        sync.RWMutex
	rates     domain.ExchangeRateTable
	fetchedAt time.Time

	listenersMu sync.Mutex
	listeners   []func(*domain.FetchHandle)
}

// ExchangeRateServiceOption is a function that configures an exchangeRateService
type ExchangeRateServiceOption func(*exchangeRateService)

// WithInitialRates seeds the cache, e.g. from a previous snapshot.
func WithInitialRates(rates domain.ExchangeRateTable) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.rates = normalizeRates(rates)
		s.fetchedAt = time.Now()
	}
}

// NewExchangeRateService creates the rate cache for a node settling in server.
func NewExchangeRateService(source portsrepo.ExchangeRateSource, server domain.ServerCurrency, options ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	s := &exchangeRateService{
		source: source,
		server: domain.ServerCurrency{
			Code:        strings.ToUpper(server.Code),
			TestnetCode: strings.ToUpper(server.TestnetCode),
		},
		rates: domain.ExchangeRateTable{},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *exchangeRateService) ServerCurrency() domain.ServerCurrency {
	return s.server
}

// GetExchangeRate returns the rate of code relative to the server currency.
func (s *exchangeRateService) GetExchangeRate(code string) (float64, bool) {
	if s.server.Matches(code) {
		return 1, true
	}
	cur := strings.ToUpper(strings.TrimSpace(code))
	if cur == "" {
		return 0, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rate, ok := s.rates[cur]
	return rate, ok
}

func (s *exchangeRateService) Snapshot() domain.ExchangeRateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ExchangeRateSnapshot{
		ServerCurrency: s.server,
		Rates:          s.rates.Clone(),
		FetchedAt:      s.fetchedAt,
	}
}

func (s *exchangeRateService) OnFetching(listener func(*domain.FetchHandle)) {
	if listener == nil {
		return
	}
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// FetchExchangeRates starts a fetch and returns immediately. Listeners are
// notified before the handle is returned. Concurrent fetches are not
// deduplicated; whichever completes last wins.
func (s *exchangeRateService) FetchExchangeRates(ctx context.Context, opts domain.FetchOptions) *domain.FetchHandle {
	fetchCtx, cancel := context.WithCancel(ctx)
	handle := domain.NewFetchHandle(cancel)

	s.listenersMu.Lock()
	listeners := append([]func(*domain.FetchHandle){}, s.listeners...)
	s.listenersMu.Unlock()
	for _, listener := range listeners {
		listener(handle)
	}

	go s.fetch(fetchCtx, handle, opts)
	return handle
}

func (s *exchangeRateService) fetch(ctx context.Context, handle *domain.FetchHandle, opts domain.FetchOptions) {
	defer handle.Cancel()
	start := time.Now()

	if s.source == nil {
		err := apperrors.InvalidArgument("no exchange rate source configured")
		metrics.ExchangeRateFetch(metrics.ResultFailure, time.Since(start).Seconds())
		handle.Complete(nil, err)
		return
	}

	rates, err := s.source.FetchExchangeRates(ctx, opts.Params)
	if err == nil {
		// A cancel that races a successful response still leaves the cache alone.
		err = ctx.Err()
	}
	if err != nil {
		result := metrics.ResultFailure
		if errors.Is(err, context.Canceled) {
			result = metrics.ResultCanceled
			s.LogDebug(ctx, "Exchange rate fetch canceled")
		} else {
			s.LogError(ctx, err, "Failed to fetch exchange rates, keeping cached table")
		}
		metrics.ExchangeRateFetch(result, time.Since(start).Seconds())
		handle.Complete(nil, err)
		return
	}

	table := normalizeRates(rates)
	s.mu.Lock()
	s.rates = table
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	metrics.ExchangeRateFetch(metrics.ResultSuccess, time.Since(start).Seconds())
	metrics.ExchangeRateTableSize(len(table))
	s.LogDebug(ctx, "Exchange rates updated", slog.Int("currencies", len(table)))
	handle.Complete(table.Clone(), nil)
}

// Run fetches immediately and then on every tick until ctx is done.
func (s *exchangeRateService) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return apperrors.InvalidArgument("exchange rate sync interval must be positive, got %s", interval)
	}

	s.LogInfo(ctx, "Exchange rate syncer started", slog.Duration("interval", interval))
	s.sync(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.LogInfo(ctx, "Exchange rate syncer stopped")
			return nil
		case <-ticker.C:
			s.sync(ctx)
		}
	}
}

func (s *exchangeRateService) sync(ctx context.Context) {
	// errors are logged by fetch
	_, _ = s.FetchExchangeRates(ctx, domain.FetchOptions{}).Wait()
}

func normalizeRates(rates domain.ExchangeRateTable) domain.ExchangeRateTable {
	out := make(domain.ExchangeRateTable, len(rates))
	for code, rate := range rates {
		out[strings.ToUpper(code)] = rate
	}
	return out
}
