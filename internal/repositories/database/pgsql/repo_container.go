package pgsql

import (
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the Postgres backed repositories. The node
// clients are not database backed and are filled in by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SearchProviderRepo: newPgxSearchProviderRepository(dbPool),
	}
}
