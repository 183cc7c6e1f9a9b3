package services

import (
	"context"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// SearchProviderSvc manages the collection of search providers
type SearchProviderSvc interface {
	// ListProviders returns the built-in providers followed by the stored ones.
	ListProviders(ctx context.Context) ([]domain.SearchProvider, error)

	GetProvider(ctx context.Context, providerID string) (*domain.SearchProvider, error)

	// AddProvider validates and stores a new provider.
	AddProvider(ctx context.Context, provider domain.SearchProvider) (*domain.SearchProvider, error)

	// DeleteProvider removes a stored provider. Locked providers cannot be deleted.
	DeleteProvider(ctx context.Context, providerID string) error

	// DefaultProvider returns the default for clear or Tor mode.
	DefaultProvider(ctx context.Context, useTor bool) (*domain.SearchProvider, error)

	// MakeDefaultProvider sets the default for clear or Tor mode.
	MakeDefaultProvider(ctx context.Context, providerID string, useTor bool) error
}

// SearchSession is one negotiated search against a provider.
type SearchSession interface {
	// SearchURL builds the listings URL for the current term, page and filters.
	SearchURL() string

	// Search calls the active provider. A previous in-flight call is canceled.
	Search(ctx context.Context) (*domain.SearchResult, error)

	// SetTerm replaces the search term and resets the page.
	SetTerm(term string)

	// ActivateProvider switches provider and stores it as the default when
	// none was usable.
	ActivateProvider(ctx context.Context, providerID string) error

	// SelectProvider switches provider for this session without storing a default.
	SelectProvider(ctx context.Context, providerID string) error

	DeleteProvider(ctx context.Context) error
	MakeDefaultProvider(ctx context.Context) error
	AddQueryProvider(ctx context.Context) error

	// CurrentProviderID is empty while a query provider is active or a default
	// must still be selected.
	CurrentProviderID() string

	// Provider returns the provider whose URL the session queries.
	Provider() domain.SearchProvider
}

// SearchSvcFacade combines provider management and session creation
type SearchSvcFacade interface {
	SearchProviderSvc

	// NewSession negotiates the provider and parameters for a search.
	NewSession(ctx context.Context, opts domain.SearchOptions) (SearchSession, error)
}
