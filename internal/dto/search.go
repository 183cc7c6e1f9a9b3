package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// CreateSearchProviderRequest defines the data needed to add a search provider.
type CreateSearchProviderRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Logo        string `json:"logo,omitempty" binding:"omitempty,url"`
	Search      string `json:"search,omitempty" binding:"omitempty,url"`
	Listings    string `json:"listings,omitempty" binding:"required_without=TorListings,omitempty,url"`
	TorSearch   string `json:"torsearch,omitempty" binding:"omitempty,url"`
	TorListings string `json:"torlistings,omitempty" binding:"required_without=Listings,omitempty,url"`
}

// ToDomain converts the request to a domain.SearchProvider.
func (r CreateSearchProviderRequest) ToDomain() domain.SearchProvider {
	return domain.SearchProvider{
		ID:          r.ID,
		Name:        r.Name,
		Logo:        r.Logo,
		Search:      r.Search,
		Listings:    r.Listings,
		TorSearch:   r.TorSearch,
		TorListings: r.TorListings,
	}
}

// SearchProviderResponse defines the data returned for a search provider.
type SearchProviderResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo,omitempty"`
	Search        string    `json:"search,omitempty"`
	Listings      string    `json:"listings,omitempty"`
	TorSearch     string    `json:"torsearch,omitempty"`
	TorListings   string    `json:"torlistings,omitempty"`
	Locked        bool      `json:"locked"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt,omitempty"`
}

// ToSearchProviderResponse converts a domain.SearchProvider to its DTO
func ToSearchProviderResponse(p *domain.SearchProvider) SearchProviderResponse {
	return SearchProviderResponse{
		ID:            p.ID,
		Name:          p.Name,
		Logo:          p.Logo,
		Search:        p.Search,
		Listings:      p.Listings,
		TorSearch:     p.TorSearch,
		TorListings:   p.TorListings,
		Locked:        p.Locked,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListSearchProviderResponse converts providers to DTOs
func ToListSearchProviderResponse(ps []domain.SearchProvider) []SearchProviderResponse {
	res := make([]SearchProviderResponse, len(ps))
	for i := range ps {
		res[i] = ToSearchProviderResponse(&ps[i])
	}
	return res
}

// SearchRequest holds the query parameters of a search. Parameters other than
// the named ones are passed to the provider as filters.
type SearchRequest struct {
	Term       string `form:"q"`
	ServerPage int    `form:"p" binding:"omitempty,min=0"`
	PageSize   int    `form:"ps" binding:"omitempty,min=1,max=100"`
	SortBy     string `form:"sortBy"`
	UseTor     bool   `form:"tor"`
}

// SearchResponse is the outcome of a search. Results holds the provider's
// document unchanged.
type SearchResponse struct {
	SearchURL  string                 `json:"searchUrl"`
	ProviderID string                 `json:"providerId,omitempty"`
	Provider   SearchProviderResponse `json:"provider"`
	Selecting  bool                   `json:"selecting"`
	Error      *domain.SearchFailure  `json:"error,omitempty"`
	Results    json.RawMessage        `json:"results,omitempty" swaggertype:"object"`
}
