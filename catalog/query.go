// Package catalog implements the in-memory catalog query engine shared by
// the storefront listing, search, and comparison surfaces: filtering,
// stable sorting, and pagination over the full product collection.
//
// Query is referentially transparent. It holds no state between calls and
// never mutates its input. Empty collections and out-of-range pages produce
// empty results, not errors.
package catalog

import (
	"sort"
	"strings"

	"github.com/Adarshk-afk/Bitehub/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize matches the storefront grid (12 cards per page).
const DefaultPageSize = 12

// Result is one resolved catalog page plus the pre-pagination totals.
type Result struct {
	Items        []models.Product `json:"items"`
	TotalMatches int              `json:"total_matches"`
	TotalPages   int              `json:"total_pages"`
}

// Query applies spec, then a stable sort by sortKey, then pagination.
//
// Filter criteria are conjunctive: a product must pass every populated
// criterion. The features criterion alone uses OR semantics, matching any
// product that carries at least one of the requested feature tags.
// Price bounds are inclusive and compare against the effective price
// (Price.Low). Out-of-range page numbers yield an empty Items slice.
// TotalPages is 0 when nothing matched, so callers can suppress the
// pagination UI entirely.
func Query(products []models.Product, spec models.FilterSpec, sortKey models.SortKey, page models.Page) Result {
	matched := applyFilters(products, spec)
	sortProducts(matched, sortKey)

	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = DefaultPageSize
	}

	total := len(matched)
	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Size - 1) / page.Size
	}

	start := (page.Number - 1) * page.Size
	items := []models.Product{}
	if start < total {
		end := start + page.Size
		if end > total {
			end = total
		}
		items = matched[start:end]
	}

	return Result{Items: items, TotalMatches: total, TotalPages: totalPages}
}

// applyFilters returns the matching products in input order. The result is
// always a fresh slice so the sort stage cannot disturb the caller's data.
func applyFilters(products []models.Product, spec models.FilterSpec) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSpec(p, spec) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesSpec(p models.Product, spec models.FilterSpec) bool {
	if len(spec.Categories) > 0 && !containsString(spec.Categories, p.Category) {
		return false
	}

	if len(spec.Brands) > 0 && !containsFold(spec.Brands, p.Brand) {
		return false
	}

	// OR across the requested features: one shared tag is enough.
	if len(spec.Features) > 0 {
		found := false
		for _, f := range spec.Features {
			if p.Features.Has(f) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if spec.PriceMin != nil || spec.PriceMax != nil {
		price := p.Price.Low()
		if spec.PriceMin != nil && price < *spec.PriceMin {
			return false
		}
		if spec.PriceMax != nil && price > *spec.PriceMax {
			return false
		}
	}

	if spec.MinRating != nil && p.Rating < *spec.MinRating {
		return false
	}

	return true
}

// sortProducts reorders in place. relevance (and any unknown key, which
// ParseSortKey never emits) is a true no-op: input order is the order.
// Every comparison uses SliceStable so equal products keep their relative
// input positions.
func sortProducts(products []models.Product, sortKey models.SortKey) {
	switch sortKey {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Low() < products[j].Price.Low()
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.High() > products[j].Price.High()
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case models.SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	case models.SortNameAsc:
		c := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case models.SortNameDesc:
		c := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) > 0
		})
	default:
		// relevance: preserve source order
	}
}

// newNameCollator builds a locale-aware collator so that "iPhone" and "iPad"
// sort the way a storefront visitor expects rather than by raw byte order.
// A collate.Collator carries per-comparison buffer state and is not safe for
// concurrent use, so each sort gets its own instance.
func newNameCollator() *collate.Collator {
	return collate.New(language.English)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// containsFold matches case-insensitively (brand filters arrive lower-cased
// from the sidebar, product data carries display casing).
func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
