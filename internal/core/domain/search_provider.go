package domain

import (
	"encoding/json"
	"fmt"
)

// SearchURLType names one of the endpoints a search provider exposes.
type SearchURLType string

const (
	URLTypeSearch      SearchURLType = "search"
	URLTypeListings    SearchURLType = "listings"
	URLTypeTorSearch   SearchURLType = "torsearch"
	URLTypeTorListings SearchURLType = "torlistings"
)

// ListingsURLType picks the listings endpoint for clear or Tor mode.
func ListingsURLType(useTor bool) SearchURLType {
	if useTor {
		return URLTypeTorListings
	}
	return URLTypeListings
}

// SearchProvider is a federated search endpoint the client can query.
type SearchProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Search      string `json:"search,omitempty"`
	Listings    string `json:"listings,omitempty"`
	TorSearch   string `json:"torsearch,omitempty"`
	TorListings string `json:"torlistings,omitempty"`
	Locked      bool   `json:"locked"`
	AuditFields
}

// URL returns the provider's endpoint of the given type.
func (p SearchProvider) URL(t SearchURLType) string {
	switch t {
	case URLTypeSearch:
		return p.Search
	case URLTypeListings:
		return p.Listings
	case URLTypeTorSearch:
		return p.TorSearch
	case URLTypeTorListings:
		return p.TorListings
	}
	return ""
}

// SetURL sets the provider's endpoint of the given type.
func (p *SearchProvider) SetURL(t SearchURLType, u string) {
	switch t {
	case URLTypeSearch:
		p.Search = u
	case URLTypeListings:
		p.Listings = u
	case URLTypeTorSearch:
		p.TorSearch = u
	case URLTypeTorListings:
		p.TorListings = u
	}
}

// DefaultSearchProviders are the built-in providers. They are never persisted;
// metadata updates from their responses live in memory only.
func DefaultSearchProviders() []SearchProvider {
	return []SearchProvider{
		{
			ID:          "ob1",
			Name:        "OB1",
			Logo:        "https://search.ob1.io/images/logo.png",
			Search:      "https://search.ob1.io/search",
			Listings:    "https://search.ob1.io/listings/search",
			TorSearch:   "http://my7nrnmkscxr32zo.onion/search",
			TorListings: "http://my7nrnmkscxr32zo.onion/listings/search",
			Locked:      true,
		},
	}
}

// SearchOptions seed a search session. Non-zero fields override the matching
// parameters found in Query.
type SearchOptions struct {
	// Query is a raw query string, e.g. "q=shoes&p=2" or "providerQ=<url>".
	Query      string
	Term       string
	ServerPage int
	PageSize   int
	SortBy     string
	UseTor     bool
}

// SearchLinks is the "links" object of a provider response.
type SearchLinks struct {
	Search   string          `json:"search"`
	Listings string          `json:"listings"`
	Tor      *SearchTorLinks `json:"tor,omitempty"`
}

// SearchTorLinks holds the onion endpoints of a provider.
type SearchTorLinks struct {
	Search   string `json:"search"`
	Listings string `json:"listings"`
}

// SearchResults is the "results" summary of a provider response.
type SearchResults struct {
	Total     int  `json:"total"`
	MorePages bool `json:"morePages"`
}

// SearchResponse is the decoded body of a provider response. Raw keeps the
// full document for the front end.
type SearchResponse struct {
	Name    string          `json:"name"`
	Logo    string          `json:"logo"`
	Links   *SearchLinks    `json:"links"`
	Results *SearchResults  `json:"results"`
	Raw     json.RawMessage `json:"-"`
}

// SearchFailure describes a provider call that failed or returned unusable data.
type SearchFailure struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func (f *SearchFailure) Error() string {
	if f.Reason != "" {
		return fmt.Sprintf("search provider failed (%d): %s", f.StatusCode, f.Reason)
	}
	return fmt.Sprintf("search provider failed (%d)", f.StatusCode)
}

// SearchResult is the outcome of one search session call.
type SearchResult struct {
	SearchURL string          `json:"searchUrl"`
	Selecting bool            `json:"selecting"`
	Data      *SearchResponse `json:"-"`
	Failure   *SearchFailure  `json:"error,omitempty"`
}
