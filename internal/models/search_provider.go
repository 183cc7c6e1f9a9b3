package models

// SearchProvider is a row of the search_providers table. Missing URLs are
// stored as empty strings.
type SearchProvider struct {
	ProviderID     string `db:"provider_id"`
	Name           string `db:"name"`
	Logo           string `db:"logo"`
	SearchURL      string `db:"search_url"`
	ListingsURL    string `db:"listings_url"`
	TorSearchURL   string `db:"tor_search_url"`
	TorListingsURL string `db:"tor_listings_url"`
	Locked         bool   `db:"locked"`
	AuditFields
}
