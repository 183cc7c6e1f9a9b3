package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/metrics"
)

// Query parameters with a fixed meaning. Everything else is a filter.
const (
	paramTerm      = "q"
	paramPage      = "p"
	paramPageSize  = "ps"
	paramSortBy    = "sortBy"
	paramProviderQ = "providerQ"
	paramNetwork   = "network"
)

// componentEscaper turns url.QueryEscape output into encodeURIComponent form,
// which is what providers expect for the term.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

type searchSession struct {
	svc     *searchService
	useTor  bool
	urlType domain.SearchURLType

	mu                sync.Mutex
	provider          domain.SearchProvider
	queryProvider     *domain.SearchProvider
	mustSelectDefault bool
	serverPage        int
	pageSize          int
	term              string
	sortBy            string
	filters           map[string]string
	cancelInFlight    context.CancelFunc
}

// NewSession picks the provider and parameters for a search. A providerQ
// parameter in the query names a provider URL whose own query parameters are
// used instead; an unknown provider URL becomes a temporary query provider.
func (s *searchService) NewSession(ctx context.Context, opts domain.SearchOptions) (portssvc.SearchSession, error) {
	sess := &searchSession{
		svc:     s,
		useTor:  opts.UseTor,
		urlType: domain.ListingsURLType(opts.UseTor),
		filters: map[string]string{},
	}

	def, err := s.DefaultProvider(ctx, opts.UseTor)
	if err != nil {
		return nil, err
	}
	sess.provider = *def

	// a default without a usable URL means the user has to pick one
	if !s.isURL(sess.providerURL()) {
		sess.provider = s.firstBuiltin()
		sess.mustSelectDefault = true
	}

	params, err := url.ParseQuery(strings.TrimPrefix(opts.Query, "?"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid search query: %v", apperrors.ErrValidation, err)
	}

	if providerQ := params.Get(paramProviderQ); providerQ != "" {
		subURL, err := url.Parse(providerQ)
		if err != nil || subURL.Scheme == "" || subURL.Host == "" {
			return nil, fmt.Errorf("%w: providerQ must be an absolute URL", apperrors.ErrValidation)
		}
		params = subURL.Query()
		if err := sess.matchQueryProvider(ctx, originPath(subURL)); err != nil {
			return nil, err
		}
	}

	if sess.serverPage, err = intParam(opts.ServerPage, params, paramPage, 0); err != nil {
		return nil, err
	}
	if sess.pageSize, err = intParam(opts.PageSize, params, paramPageSize, defaultSearchPageSize); err != nil {
		return nil, err
	}
	sess.term = firstNonEmpty(opts.Term, params.Get(paramTerm))
	sess.sortBy = firstNonEmpty(opts.SortBy, params.Get(paramSortBy))

	for key, values := range params {
		switch key {
		case paramTerm, paramPage, paramPageSize, paramSortBy, paramProviderQ:
			continue
		}
		if len(values) > 0 {
			sess.filters[key] = values[0]
		}
	}

	return sess, nil
}

// matchQueryProvider activates the provider whose listings URL equals base.
// A tor URL can match while in clear mode and the other way round; the
// matched provider then uses its URL for the active mode.
func (sess *searchSession) matchQueryProvider(ctx context.Context, base string) error {
	providers, err := sess.svc.ListProviders(ctx)
	if err != nil {
		return err
	}
	for _, p := range providers {
		if base == normalizeProviderURL(p.Listings) || base == normalizeProviderURL(p.TorListings) {
			sess.provider = p
			sess.queryProvider = nil
			return nil
		}
	}

	qp := domain.SearchProvider{}
	qp.SetURL(sess.urlType, base)
	sess.queryProvider = &qp
	return nil
}

// originPath renders u as origin plus path: scheme and host lower case,
// default ports dropped and an empty path written as "/".
func originPath(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path
}

func normalizeProviderURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return originPath(u)
}

func intParam(override int, params url.Values, key string, def int) (int, error) {
	if override != 0 {
		return override, nil
	}
	raw := params.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", apperrors.ErrValidation, key)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (sess *searchSession) providerURL() string {
	if sess.queryProvider != nil {
		return sess.queryProvider.URL(sess.urlType)
	}
	return sess.provider.URL(sess.urlType)
}

func (sess *searchSession) SearchURL() string {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.searchURL()
}

func (sess *searchSession) searchURL() string {
	term := sess.term
	if term == "" {
		term = "*"
	}

	network := "mainnet"
	if sess.svc.testnet {
		network = "testnet"
	}

	var b strings.Builder
	b.WriteString(sess.providerURL())
	b.WriteString("?" + paramTerm + "=" + componentEscaper.Replace(url.QueryEscape(term)))
	b.WriteString("&" + paramNetwork + "=" + network)
	if sess.sortBy != "" {
		b.WriteString("&" + paramSortBy + "=" + componentEscaper.Replace(url.QueryEscape(sess.sortBy)))
	}
	fmt.Fprintf(&b, "&%s=%d&%s=%d", paramPage, sess.serverPage, paramPageSize, sess.pageSize)

	if len(sess.filters) > 0 {
		filters := url.Values{}
		for k, v := range sess.filters {
			filters.Set(k, v)
		}
		b.WriteString("&" + filters.Encode())
	}
	return b.String()
}

func (sess *searchSession) SetTerm(term string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.term = term
	sess.serverPage = 0
}

// Search calls the provider for the current URL. Provider failures are
// reported in the result, not as an error.
func (sess *searchSession) Search(ctx context.Context) (*domain.SearchResult, error) {
	sess.mu.Lock()
	if sess.cancelInFlight != nil {
		sess.cancelInFlight()
	}
	callCtx, cancel := context.WithCancel(ctx)
	sess.cancelInFlight = cancel
	result := &domain.SearchResult{
		SearchURL: sess.searchURL(),
		Selecting: sess.mustSelectDefault,
	}
	providerID := sess.currentProviderID()
	sess.mu.Unlock()
	defer cancel()

	if result.Selecting {
		metrics.SearchRequest(providerID, metrics.ResultSkipped)
		return result, nil
	}

	resp, err := sess.svc.client.Search(callCtx, result.SearchURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			metrics.SearchRequest(providerID, metrics.ResultCanceled)
			return nil, err
		}
		metrics.SearchRequest(providerID, metrics.ResultFailure)
		sess.svc.LogWarn(ctx, "Search provider call failed", slog.String("url", result.SearchURL), slog.String("error", err.Error()))

		var failure *domain.SearchFailure
		if !errors.As(err, &failure) {
			failure = &domain.SearchFailure{Reason: err.Error()}
		}
		result.Failure = failure
		return result, nil
	}

	if resp.Name == "" || resp.Links == nil {
		metrics.SearchRequest(providerID, metrics.ResultFailure)
		result.Failure = &domain.SearchFailure{Reason: "the provider response has no name or links"}
		return result, nil
	}

	sess.applyResponse(ctx, resp)
	metrics.SearchRequest(providerID, metrics.ResultSuccess)
	result.Data = resp
	return result, nil
}

// applyResponse updates the active provider from the response. A query
// provider is only updated in the session.
func (sess *searchSession) applyResponse(ctx context.Context, resp *domain.SearchResponse) {
	sess.mu.Lock()
	if sess.queryProvider != nil {
		sess.svc.applyResponse(sess.queryProvider, resp)
		sess.mu.Unlock()
		return
	}
	sess.svc.applyResponse(&sess.provider, resp)
	updated := sess.provider
	sess.mu.Unlock()

	sess.svc.storeUpdate(ctx, updated)
}

// ActivateProvider switches to a provider from the collection. When the user
// still had to pick a default, the activated provider becomes the default.
func (sess *searchSession) ActivateProvider(ctx context.Context, providerID string) error {
	mustSelect, err := sess.switchProvider(ctx, providerID)
	if err != nil {
		return err
	}
	if mustSelect {
		return sess.MakeDefaultProvider(ctx)
	}
	return nil
}

// SelectProvider switches to a provider for this session only. No default is
// stored.
func (sess *searchSession) SelectProvider(ctx context.Context, providerID string) error {
	_, err := sess.switchProvider(ctx, providerID)
	return err
}

// switchProvider activates providerID and reports whether a default still had
// to be picked.
func (sess *searchSession) switchProvider(ctx context.Context, providerID string) (bool, error) {
	p, err := sess.svc.GetProvider(ctx, providerID)
	if err != nil {
		return false, err
	}
	if !sess.svc.isURL(p.URL(sess.urlType)) {
		return false, fmt.Errorf("%w: provider %s has no %s url", apperrors.ErrValidation, providerID, sess.urlType)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.provider = *p
	sess.queryProvider = nil
	mustSelect := sess.mustSelectDefault
	sess.mustSelectDefault = false
	return mustSelect, nil
}

// DeleteProvider deletes the active provider and activates the first remaining one.
func (sess *searchSession) DeleteProvider(ctx context.Context) error {
	sess.mu.Lock()
	current := sess.provider
	sess.mu.Unlock()

	if current.Locked {
		return fmt.Errorf("%w: provider %s is locked and cannot be deleted", apperrors.ErrValidation, current.ID)
	}
	if err := sess.svc.DeleteProvider(ctx, current.ID); err != nil {
		return err
	}

	providers, err := sess.svc.ListProviders(ctx)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		return nil
	}
	return sess.ActivateProvider(ctx, providers[0].ID)
}

func (sess *searchSession) MakeDefaultProvider(ctx context.Context) error {
	sess.mu.Lock()
	providerID := sess.provider.ID
	sess.mu.Unlock()
	return sess.svc.MakeDefaultProvider(ctx, providerID, sess.useTor)
}

// AddQueryProvider stores the temporary query provider and activates it.
func (sess *searchSession) AddQueryProvider(ctx context.Context) error {
	sess.mu.Lock()
	qp := sess.queryProvider
	sess.mu.Unlock()

	if qp == nil {
		return fmt.Errorf("%w: there is no query provider to add", apperrors.ErrValidation)
	}
	added, err := sess.svc.AddProvider(ctx, *qp)
	if err != nil {
		return err
	}
	return sess.ActivateProvider(ctx, added.ID)
}

func (sess *searchSession) CurrentProviderID() string {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.currentProviderID()
}

func (sess *searchSession) currentProviderID() string {
	if sess.queryProvider != nil || sess.mustSelectDefault {
		return ""
	}
	return sess.provider.ID
}

func (sess *searchSession) Provider() domain.SearchProvider {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.queryProvider != nil {
		return *sess.queryProvider
	}
	return sess.provider
}
