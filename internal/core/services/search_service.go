package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultSearchPageSize = 24

// searchService manages search providers. Built-in providers live in memory
// only; user providers are stored in the repository.
type searchService struct {
	BaseService
	repo     portsrepo.SearchProviderRepositoryFacade
	client   portsrepo.SearchProviderClient
	validate *validator.Validate
	testnet  bool

	mu       sync.RWMutex
	builtins []domain.SearchProvider
}

// SearchServiceOption is a function that configures a searchService
type SearchServiceOption func(*searchService)

// WithTestnet makes search URLs ask providers for testnet listings.
func WithTestnet(testnet bool) SearchServiceOption {
	return func(s *searchService) {
		s.testnet = testnet
	}
}

// WithBuiltinProviders replaces the built-in provider list. The first entry is
// the fallback when no usable default is set.
func WithBuiltinProviders(providers []domain.SearchProvider) SearchServiceOption {
	return func(s *searchService) {
		if len(providers) > 0 {
			s.builtins = append([]domain.SearchProvider(nil), providers...)
		}
	}
}

// NewSearchService creates the search provider service.
func NewSearchService(repo portsrepo.SearchProviderRepositoryFacade, client portsrepo.SearchProviderClient, options ...SearchServiceOption) portssvc.SearchSvcFacade {
	s := &searchService{
		repo:     repo,
		client:   client,
		validate: validator.New(),
		builtins: domain.DefaultSearchProviders(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *searchService) isURL(u string) bool {
	return u != "" && s.validate.Var(u, "url") == nil
}

func (s *searchService) builtin(providerID string) (domain.SearchProvider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.builtins {
		if p.ID == providerID {
			return p, true
		}
	}
	return domain.SearchProvider{}, false
}

func (s *searchService) firstBuiltin() domain.SearchProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builtins[0]
}

func (s *searchService) ListProviders(ctx context.Context) ([]domain.SearchProvider, error) {
	stored, err := s.repo.ListSearchProviders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list search providers")
		return nil, fmt.Errorf("failed to list search providers: %w", err)
	}

	s.mu.RLock()
	providers := make([]domain.SearchProvider, 0, len(s.builtins)+len(stored))
	providers = append(providers, s.builtins...)
	s.mu.RUnlock()

	return append(providers, stored...), nil
}

func (s *searchService) GetProvider(ctx context.Context, providerID string) (*domain.SearchProvider, error) {
	if providerID == "" {
		return nil, fmt.Errorf("%w: provider id is required", apperrors.ErrValidation)
	}
	if p, ok := s.builtin(providerID); ok {
		return &p, nil
	}
	p, err := s.repo.FindSearchProviderByID(ctx, providerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find search provider", slog.String("provider_id", providerID))
		}
		return nil, err
	}
	return p, nil
}

// AddProvider stores a user provider. It needs at least one listings URL and
// every URL it carries must be valid. User providers are never locked.
func (s *searchService) AddProvider(ctx context.Context, provider domain.SearchProvider) (*domain.SearchProvider, error) {
	for _, t := range []domain.SearchURLType{domain.URLTypeSearch, domain.URLTypeListings, domain.URLTypeTorSearch, domain.URLTypeTorListings} {
		if u := provider.URL(t); u != "" && !s.isURL(u) {
			return nil, fmt.Errorf("%w: %s url %q is not valid", apperrors.ErrValidation, t, u)
		}
	}
	if provider.Listings == "" && provider.TorListings == "" {
		return nil, fmt.Errorf("%w: a listings or torlistings url is required", apperrors.ErrValidation)
	}
	if provider.Logo != "" && !s.isURL(provider.Logo) {
		return nil, fmt.Errorf("%w: logo url %q is not valid", apperrors.ErrValidation, provider.Logo)
	}

	if provider.ID == "" {
		provider.ID = uuid.NewString()
	} else if _, ok := s.builtin(provider.ID); ok {
		return nil, fmt.Errorf("%w: provider %s is built in", apperrors.ErrDuplicate, provider.ID)
	}
	if provider.Name == "" {
		provider.Name = providerHost(provider)
	}
	provider.Locked = false
	now := time.Now()
	provider.CreatedAt = now
	provider.LastUpdatedAt = now

	if err := s.repo.SaveSearchProvider(ctx, provider); err != nil {
		s.LogError(ctx, err, "Failed to save search provider", slog.String("provider_id", provider.ID))
		return nil, fmt.Errorf("failed to save search provider: %w", err)
	}

	s.LogInfo(ctx, "Search provider added", slog.String("provider_id", provider.ID))
	return &provider, nil
}

func (s *searchService) DeleteProvider(ctx context.Context, providerID string) error {
	p, err := s.GetProvider(ctx, providerID)
	if err != nil {
		return err
	}
	if p.Locked {
		return fmt.Errorf("%w: provider %s is locked and cannot be deleted", apperrors.ErrValidation, providerID)
	}

	if err := s.repo.DeleteSearchProvider(ctx, providerID); err != nil {
		s.LogError(ctx, err, "Failed to delete search provider", slog.String("provider_id", providerID))
		return fmt.Errorf("failed to delete search provider: %w", err)
	}
	s.LogInfo(ctx, "Search provider deleted", slog.String("provider_id", providerID))
	return nil
}

// DefaultProvider returns the stored default for the mode, falling back to the
// first built-in provider.
func (s *searchService) DefaultProvider(ctx context.Context, useTor bool) (*domain.SearchProvider, error) {
	urlType := domain.ListingsURLType(useTor)

	providerID, err := s.repo.FindDefaultSearchProviderID(ctx, urlType)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find default search provider", slog.String("url_type", string(urlType)))
			return nil, fmt.Errorf("failed to find default search provider: %w", err)
		}
		p := s.firstBuiltin()
		return &p, nil
	}

	p, err := s.GetProvider(ctx, providerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		fallback := s.firstBuiltin()
		return &fallback, nil
	}
	return p, err
}

// MakeDefaultProvider stores the default for the mode. The provider needs a
// valid listings URL for that mode.
func (s *searchService) MakeDefaultProvider(ctx context.Context, providerID string, useTor bool) error {
	p, err := s.GetProvider(ctx, providerID)
	if err != nil {
		return err
	}
	urlType := domain.ListingsURLType(useTor)
	if !s.isURL(p.URL(urlType)) {
		return fmt.Errorf("%w: provider %s has no %s url", apperrors.ErrValidation, providerID, urlType)
	}
	if err := s.repo.SetDefaultSearchProvider(ctx, urlType, providerID); err != nil {
		s.LogError(ctx, err, "Failed to set default search provider", slog.String("provider_id", providerID))
		return fmt.Errorf("failed to set default search provider: %w", err)
	}
	s.LogInfo(ctx, "Default search provider set", slog.String("provider_id", providerID), slog.String("url_type", string(urlType)))
	return nil
}

// applyResponse copies the provider metadata a response advertises. Only valid
// URLs are taken.
func (s *searchService) applyResponse(p *domain.SearchProvider, resp *domain.SearchResponse) {
	p.Name = resp.Name
	if s.isURL(resp.Logo) {
		p.Logo = resp.Logo
	}
	if resp.Links == nil {
		return
	}
	if s.isURL(resp.Links.Search) {
		p.Search = resp.Links.Search
	}
	if s.isURL(resp.Links.Listings) {
		p.Listings = resp.Links.Listings
	}
	if tor := resp.Links.Tor; tor != nil {
		if s.isURL(tor.Search) {
			p.TorSearch = tor.Search
		}
		if s.isURL(tor.Listings) {
			p.TorListings = tor.Listings
		}
	}
}

// storeUpdate keeps provider metadata learned from a response. Built-in
// providers are updated in memory only. A provider deleted while the search
// ran stays deleted.
func (s *searchService) storeUpdate(ctx context.Context, p domain.SearchProvider) {
	s.mu.Lock()
	for i := range s.builtins {
		if s.builtins[i].ID == p.ID {
			s.builtins[i] = p
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	p.LastUpdatedAt = time.Now()
	if err := s.repo.UpdateSearchProviderMetadata(ctx, p); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Search provider removed before its update was stored", slog.String("provider_id", p.ID))
			return
		}
		s.LogError(ctx, err, "Failed to save search provider update", slog.String("provider_id", p.ID))
	}
}

func providerHost(p domain.SearchProvider) string {
	for _, raw := range []string{p.Listings, p.TorListings} {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return strings.TrimSpace(p.ID)
}
