package mapping

import (
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	"github.com/SscSPs/marketplace_client/internal/models"
)

// ToModelSearchProvider converts a domain SearchProvider to a model SearchProvider
func ToModelSearchProvider(d domain.SearchProvider) models.SearchProvider {
	return models.SearchProvider{
		ProviderID:     d.ID,
		Name:           d.Name,
		Logo:           d.Logo,
		SearchURL:      d.Search,
		ListingsURL:    d.Listings,
		TorSearchURL:   d.TorSearch,
		TorListingsURL: d.TorListings,
		Locked:         d.Locked,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSearchProvider converts a model SearchProvider to a domain SearchProvider
func ToDomainSearchProvider(m models.SearchProvider) domain.SearchProvider {
	return domain.SearchProvider{
		ID:          m.ProviderID,
		Name:        m.Name,
		Logo:        m.Logo,
		Search:      m.SearchURL,
		Listings:    m.ListingsURL,
		TorSearch:   m.TorSearchURL,
		TorListings: m.TorListingsURL,
		Locked:      m.Locked,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSearchProviderSlice converts a slice of model SearchProviders to domain SearchProviders
func ToDomainSearchProviderSlice(ms []models.SearchProvider) []domain.SearchProvider {
	out := make([]domain.SearchProvider, len(ms))
	for i, m := range ms {
		out[i] = ToDomainSearchProvider(m)
	}
	return out
}
