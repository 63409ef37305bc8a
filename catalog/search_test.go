package catalog

import (
	"testing"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/stretchr/testify/assert"
)

func searchProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "iPhone 15 Pro Max", Brand: "Apple", Category: "smartphones",
			Description: "Titanium design with A17 Pro chip", Rating: 4.8},
		{ID: 2, Name: "Galaxy S24 Ultra", Brand: "Samsung", Category: "smartphones",
			Description: "Premium Android flagship with S Pen", Rating: 4.7},
		{ID: 3, Name: "MacBook Air M3", Brand: "Apple", Category: "laptops",
			Description: "Ultra-thin laptop", Rating: 4.9},
		{ID: 4, Name: "XPS 13 Plus", Brand: "Dell", Category: "laptops",
			Description: "Premium ultrabook", Rating: 4.6},
	}
}

func TestMatchQuery(t *testing.T) {
	products := searchProducts()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		assert.True(t, MatchQuery(products[0], "iphone"))
	})

	t.Run("matches brand", func(t *testing.T) {
		assert.True(t, MatchQuery(products[1], "samsung"))
	})

	t.Run("matches description", func(t *testing.T) {
		assert.True(t, MatchQuery(products[1], "s pen"))
	})

	t.Run("matches category", func(t *testing.T) {
		assert.True(t, MatchQuery(products[2], "laptops"))
	})

	t.Run("blank query matches everything", func(t *testing.T) {
		assert.True(t, MatchQuery(products[3], "  "))
	})

	t.Run("no field match", func(t *testing.T) {
		assert.False(t, MatchQuery(products[3], "camera"))
	})
}

func TestSearch(t *testing.T) {
	products := searchProducts()

	t.Run("keeps matches in input order", func(t *testing.T) {
		got := Search(products, "apple")
		assert.Equal(t, []int{1, 3}, resultIDsOf(got))
	})

	t.Run("blank query returns all products", func(t *testing.T) {
		got := Search(products, "")
		assert.Equal(t, []int{1, 2, 3, 4}, resultIDsOf(got))
	})

	t.Run("returned slice is independent of the input", func(t *testing.T) {
		got := Search(products, "")
		got[0] = models.Product{ID: 99}
		assert.Equal(t, 1, products[0].ID)
	})
}

func TestSuggestions(t *testing.T) {
	products := searchProducts()

	t.Run("names come before brands, deduplicated", func(t *testing.T) {
		got := Suggestions(products, "a", 10)
		// Every entry contains "a"; brands Apple/Samsung/Dell appear once.
		assert.Contains(t, got, "Apple")
		assert.Contains(t, got, "Galaxy S24 Ultra")
		counts := map[string]int{}
		for _, s := range got {
			counts[s]++
		}
		for s, n := range counts {
			assert.Equal(t, 1, n, "duplicate suggestion %q", s)
		}
	})

	t.Run("respects the limit", func(t *testing.T) {
		got := Suggestions(products, "a", 2)
		assert.Len(t, got, 2)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		assert.Empty(t, Suggestions(products, "", 5))
	})
}

func TestSimilar(t *testing.T) {
	products := searchProducts()

	t.Run("same category, best rated first, excludes self", func(t *testing.T) {
		got := Similar(products, 4, 4)
		assert.Equal(t, []int{3}, resultIDsOf(got))
	})

	t.Run("caps at the limit", func(t *testing.T) {
		got := Similar(products, 1, 0)
		assert.Empty(t, got)
	})

	t.Run("unknown product yields nothing", func(t *testing.T) {
		assert.Empty(t, Similar(products, 99, 4))
	})
}
