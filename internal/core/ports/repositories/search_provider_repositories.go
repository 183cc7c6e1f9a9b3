package repositories

import (
	"context"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// SearchProviderReader defines read operations for stored search providers
type SearchProviderReader interface {
	// ListSearchProviders returns the stored providers ordered by creation time.
	ListSearchProviders(ctx context.Context) ([]domain.SearchProvider, error)

	// FindSearchProviderByID retrieves a provider by its id.
	FindSearchProviderByID(ctx context.Context, providerID string) (*domain.SearchProvider, error)

	// FindDefaultSearchProviderID returns the id of the default provider for
	// the url type, or apperrors.ErrNotFound when none is set.
	FindDefaultSearchProviderID(ctx context.Context, urlType domain.SearchURLType) (string, error)
}

// SearchProviderWriter defines write operations for stored search providers
type SearchProviderWriter interface {
	// SaveSearchProvider inserts the provider or updates it if the id exists.
	SaveSearchProvider(ctx context.Context, provider domain.SearchProvider) error

	// UpdateSearchProviderMetadata overwrites the name, logo and URLs of an
	// existing provider. It returns apperrors.ErrNotFound when the id is unknown
	// and never inserts.
	UpdateSearchProviderMetadata(ctx context.Context, provider domain.SearchProvider) error

	// DeleteSearchProvider removes a provider and any default pointing at it.
	DeleteSearchProvider(ctx context.Context, providerID string) error

	// SetDefaultSearchProvider makes providerID the default for the url type.
	SetDefaultSearchProvider(ctx context.Context, urlType domain.SearchURLType, providerID string) error
}

// SearchProviderRepositoryFacade combines all search provider repository interfaces
type SearchProviderRepositoryFacade interface {
	SearchProviderReader
	SearchProviderWriter
}

// SearchProviderClient calls a provider's listings endpoint.
type SearchProviderClient interface {
	// Search GETs searchURL and decodes the provider response. A failed call
	// or a non-2xx answer is reported as a *domain.SearchFailure.
	Search(ctx context.Context, searchURL string) (*domain.SearchResponse, error)
}
