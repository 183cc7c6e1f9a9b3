package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	"github.com/SscSPs/marketplace_client/internal/models"
	"github.com/SscSPs/marketplace_client/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const searchProviderColumns = `provider_id, name, logo, search_url, listings_url, tor_search_url, tor_listings_url, locked, created_at, last_updated_at`

type PgxSearchProviderRepository struct {
	BaseRepository
}

// newPgxSearchProviderRepository creates a new repository for stored search providers.
func newPgxSearchProviderRepository(pool *pgxpool.Pool) portsrepo.SearchProviderRepositoryFacade {
	return &PgxSearchProviderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SearchProviderRepositoryFacade = (*PgxSearchProviderRepository)(nil)

// SaveSearchProvider inserts a provider or updates its metadata.
func (r *PgxSearchProviderRepository) SaveSearchProvider(ctx context.Context, provider domain.SearchProvider) error {
	m := mapping.ToModelSearchProvider(provider)

	query := `
		INSERT INTO search_providers (` + searchProviderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (provider_id) DO UPDATE SET
			name = EXCLUDED.name,
			logo = EXCLUDED.logo,
			search_url = EXCLUDED.search_url,
			listings_url = EXCLUDED.listings_url,
			tor_search_url = EXCLUDED.tor_search_url,
			tor_listings_url = EXCLUDED.tor_listings_url,
			locked = EXCLUDED.locked,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ProviderID,
		m.Name,
		m.Logo,
		m.SearchURL,
		m.ListingsURL,
		m.TorSearchURL,
		m.TorListingsURL,
		m.Locked,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save search provider %s: %w", m.ProviderID, err)
	}
	return nil
}

// UpdateSearchProviderMetadata updates the metadata of an existing provider only.
func (r *PgxSearchProviderRepository) UpdateSearchProviderMetadata(ctx context.Context, provider domain.SearchProvider) error {
	m := mapping.ToModelSearchProvider(provider)

	query := `
		UPDATE search_providers SET
			name = $2,
			logo = $3,
			search_url = $4,
			listings_url = $5,
			tor_search_url = $6,
			tor_listings_url = $7,
			last_updated_at = $8
		WHERE provider_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.ProviderID,
		m.Name,
		m.Logo,
		m.SearchURL,
		m.ListingsURL,
		m.TorSearchURL,
		m.TorListingsURL,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update search provider %s: %w", m.ProviderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListSearchProviders returns every stored provider, oldest first.
func (r *PgxSearchProviderRepository) ListSearchProviders(ctx context.Context) ([]domain.SearchProvider, error) {
	query := `SELECT ` + searchProviderColumns + ` FROM search_providers ORDER BY created_at, provider_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list search providers: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SearchProvider])
	if err != nil {
		return nil, fmt.Errorf("failed to scan search providers: %w", err)
	}
	return mapping.ToDomainSearchProviderSlice(ms), nil
}

// FindSearchProviderByID retrieves a stored provider.
func (r *PgxSearchProviderRepository) FindSearchProviderByID(ctx context.Context, providerID string) (*domain.SearchProvider, error) {
	query := `SELECT ` + searchProviderColumns + ` FROM search_providers WHERE provider_id = $1;`

	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find search provider %s: %w", providerID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SearchProvider])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan search provider %s: %w", providerID, err)
	}
	p := mapping.ToDomainSearchProvider(m)
	return &p, nil
}

// FindDefaultSearchProviderID returns the default provider id for urlType.
func (r *PgxSearchProviderRepository) FindDefaultSearchProviderID(ctx context.Context, urlType domain.SearchURLType) (string, error) {
	query := `SELECT provider_id FROM search_provider_defaults WHERE url_type = $1;`

	var providerID string
	err := r.Pool.QueryRow(ctx, query, string(urlType)).Scan(&providerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find default search provider for %s: %w", urlType, err)
	}
	return providerID, nil
}

// DeleteSearchProvider removes the provider and clears any default pointing at it.
func (r *PgxSearchProviderRepository) DeleteSearchProvider(ctx context.Context, providerID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `DELETE FROM search_providers WHERE provider_id = $1;`, providerID)
	if err != nil {
		return fmt.Errorf("failed to delete search provider %s: %w", providerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM search_provider_defaults WHERE provider_id = $1;`, providerID); err != nil {
		return fmt.Errorf("failed to clear defaults for search provider %s: %w", providerID, err)
	}
	return r.Commit(ctx, tx)
}

// SetDefaultSearchProvider records providerID as the default for urlType.
func (r *PgxSearchProviderRepository) SetDefaultSearchProvider(ctx context.Context, urlType domain.SearchURLType, providerID string) error {
	query := `
		INSERT INTO search_provider_defaults (url_type, provider_id, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (url_type) DO UPDATE SET
			provider_id = EXCLUDED.provider_id,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, string(urlType), providerID); err != nil {
		return fmt.Errorf("failed to set default search provider for %s: %w", urlType, err)
	}
	return nil
}
