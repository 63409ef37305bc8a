// models/filter_models.go
package models

// ═══════════════════════════════════════════════════════════
// Catalog query parameters
// ═══════════════════════════════════════════════════════════

// FilterSpec describes one catalog query. Empty sets and nil bounds impose
// no restriction. All criteria combine with AND; the features set itself
// matches with OR (a product needs at least one requested feature).
type FilterSpec struct {
	Categories []string `json:"categories,omitempty"`
	Brands     []string `json:"brands,omitempty"` // compared case-insensitively
	Features   []string `json:"features,omitempty"`
	PriceMin   *float64 `json:"priceMin,omitempty"`
	PriceMax   *float64 `json:"priceMax,omitempty"`
	MinRating  *float64 `json:"minRating,omitempty"` // inclusive floor
}

// SortKey selects the catalog sort order.
type SortKey string

const (
	SortRelevance SortKey = "relevance" // no reordering, source order preserved
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest" // id descending (no timestamp in the feed)
	SortPopular   SortKey = "popular"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps a query-string value onto a SortKey. Unknown values
// fall back to relevance so the query path never fails on bad input.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest,
		SortPopular, SortNameAsc, SortNameDesc:
		return SortKey(s)
	default:
		return SortRelevance
	}
}

// Page is a 1-based page request.
type Page struct {
	Number int `json:"page" example:"1"`
	Size   int `json:"limit" example:"12"`
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (storefront sidebar)
// ═══════════════════════════════════════════════════════════

// FacetCount pairs a filter value with how many products carry it.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the catalog
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories []FacetCount    `json:"categories"`
	Brands     []FacetCount    `json:"brands"`
	Features   []FacetCount    `json:"features"`
	PriceRange *PriceRangeData `json:"priceRange"`
}
