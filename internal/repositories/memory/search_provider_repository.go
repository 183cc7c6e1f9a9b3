// Package memory holds repositories that keep their state in process. They
// back the client when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
)

type SearchProviderRepository struct {
	mu        sync.RWMutex
	providers map[string]domain.SearchProvider
	defaults  map[domain.SearchURLType]string
}

// NewSearchProviderRepository creates an empty in-memory provider store.
func NewSearchProviderRepository() *SearchProviderRepository {
	return &SearchProviderRepository{
		providers: make(map[string]domain.SearchProvider),
		defaults:  make(map[domain.SearchURLType]string),
	}
}

var _ portsrepo.SearchProviderRepositoryFacade = (*SearchProviderRepository)(nil)

func (r *SearchProviderRepository) SaveSearchProvider(_ context.Context, provider domain.SearchProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.providers[provider.ID]; ok {
		provider.CreatedAt = existing.CreatedAt
	}
	r.providers[provider.ID] = provider
	return nil
}

func (r *SearchProviderRepository) UpdateSearchProviderMetadata(_ context.Context, provider domain.SearchProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.providers[provider.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Name = provider.Name
	existing.Logo = provider.Logo
	existing.Search = provider.Search
	existing.Listings = provider.Listings
	existing.TorSearch = provider.TorSearch
	existing.TorListings = provider.TorListings
	existing.LastUpdatedAt = provider.LastUpdatedAt
	r.providers[provider.ID] = existing
	return nil
}

func (r *SearchProviderRepository) ListSearchProviders(_ context.Context) ([]domain.SearchProvider, error) {
	r.mu.RLock()
	out := make([]domain.SearchProvider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *SearchProviderRepository) FindSearchProviderByID(_ context.Context, providerID string) (*domain.SearchProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[providerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *SearchProviderRepository) FindDefaultSearchProviderID(_ context.Context, urlType domain.SearchURLType) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.defaults[urlType]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return id, nil
}

func (r *SearchProviderRepository) DeleteSearchProvider(_ context.Context, providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[providerID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.providers, providerID)
	for t, id := range r.defaults {
		if id == providerID {
			delete(r.defaults, t)
		}
	}
	return nil
}

func (r *SearchProviderRepository) SetDefaultSearchProvider(_ context.Context, urlType domain.SearchURLType, providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[urlType] = providerID
	return nil
}
