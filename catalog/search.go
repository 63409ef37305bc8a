package catalog

import (
	"sort"
	"strings"

	"github.com/Adarshk-afk/Bitehub/models"
)

// MatchQuery reports whether the product matches a free-text search query:
// case-insensitive substring match over name, brand, description, and
// category. A blank query matches everything.
func MatchQuery(p models.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Search keeps the products matching query, in input order.
func Search(products []models.Product, query string) []models.Product {
	if strings.TrimSpace(query) == "" {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if MatchQuery(p, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Suggestions returns up to limit distinct product names and brands that
// contain the typed query, names first. An empty query yields nothing;
// the search bar only asks once the visitor starts typing.
func Suggestions(products []models.Product, query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit < 1 {
		return []string{}
	}

	seen := make(map[string]bool)
	out := []string{}

	add := func(s string) {
		key := strings.ToLower(s)
		if len(out) < limit && !seen[key] && strings.Contains(key, q) {
			seen[key] = true
			out = append(out, s)
		}
	}

	for _, p := range products {
		add(p.Name)
	}
	for _, p := range products {
		add(p.Brand)
	}
	return out
}

// Similar returns up to limit products from the same category, excluding
// the product itself, best-rated first (stable on the source order).
func Similar(products []models.Product, productID int, limit int) []models.Product {
	var category string
	found := false
	for _, p := range products {
		if p.ID == productID {
			category = p.Category
			found = true
			break
		}
	}
	if !found || limit < 1 {
		return []models.Product{}
	}

	similar := make([]models.Product, 0, limit)
	for _, p := range products {
		if p.ID != productID && p.Category == category {
			similar = append(similar, p)
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Rating > similar[j].Rating
	})
	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}
