package catalog

import (
	"sync"
	"testing"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func testProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "A", Brand: "Acme", Category: "x",
			Price: models.ScalarPrice(100), Rating: 4.5, ReviewCount: 10,
			Features: models.FeatureList{"f1"},
		},
		{
			ID: 2, Name: "B", Brand: "Acme", Category: "x",
			Price: models.ScalarPrice(50), Rating: 4.5, ReviewCount: 50,
			Features: models.FeatureList{"f2"},
		},
		{
			ID: 3, Name: "C", Brand: "Dell", Category: "laptops",
			Price: models.RangePrice(899, 1599), Rating: 4.6, ReviewCount: 892,
			Features: models.FeatureList{"fingerprint", "fast-charging"},
		},
		{
			ID: 4, Name: "D", Brand: "Apple", Category: "laptops",
			Price: models.RangePrice(1099, 1699), Rating: 4.9, ReviewCount: 1456,
			Features: models.FeatureList{"fast-charging"},
		},
	}
}

func page(n, size int) models.Page { return models.Page{Number: n, Size: size} }

func resultIDs(r Result) []int {
	ids := make([]int, 0, len(r.Items))
	for _, p := range r.Items {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestQuery_PriceLowExample(t *testing.T) {
	products := testProducts()[:2]

	result := Query(products, models.FilterSpec{}, models.SortPriceLow, page(1, 10))

	assert.Equal(t, []int{2, 1}, resultIDs(result))
	assert.Equal(t, 2, result.TotalMatches)
	assert.Equal(t, 1, result.TotalPages)
}

func TestQuery_FeatureOrSemantics(t *testing.T) {
	products := testProducts()

	t.Run("single feature keeps only its carriers", func(t *testing.T) {
		result := Query(products, models.FilterSpec{Features: []string{"f2"}}, models.SortRelevance, page(1, 10))
		assert.Equal(t, []int{2}, resultIDs(result))
	})

	t.Run("two features match products carrying either", func(t *testing.T) {
		result := Query(products, models.FilterSpec{Features: []string{"f1", "f2"}}, models.SortRelevance, page(1, 10))
		assert.Equal(t, []int{1, 2}, resultIDs(result))
	})

	t.Run("product matching every other filter is excluded without a feature", func(t *testing.T) {
		spec := models.FilterSpec{
			Categories: []string{"laptops"},
			Features:   []string{"f1", "f2"},
		}
		result := Query(products, spec, models.SortRelevance, page(1, 10))
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.TotalPages)
	})
}

func TestQuery_FilterConjunction(t *testing.T) {
	products := testProducts()

	spec := models.FilterSpec{
		Categories: []string{"laptops"},
		Brands:     []string{"dell"},
	}
	result := Query(products, spec, models.SortRelevance, page(1, 10))

	require.Len(t, result.Items, 1)
	for _, p := range result.Items {
		assert.Equal(t, "laptops", p.Category)
		assert.Equal(t, "Dell", p.Brand)
	}
}

func TestQuery_BrandCaseInsensitive(t *testing.T) {
	products := testProducts()

	result := Query(products, models.FilterSpec{Brands: []string{"ACME"}}, models.SortRelevance, page(1, 10))
	assert.Equal(t, []int{1, 2}, resultIDs(result))
}

func TestQuery_PriceRangeInclusiveBounds(t *testing.T) {
	products := testProducts()

	t.Run("scalar price equal to min is kept", func(t *testing.T) {
		spec := models.FilterSpec{PriceMin: floatPtr(100), PriceMax: floatPtr(100)}
		result := Query(products, spec, models.SortRelevance, page(1, 10))
		assert.Equal(t, []int{1}, resultIDs(result))
	})

	t.Run("range price filters on its minimum", func(t *testing.T) {
		// Product 3 spans 899..1599; effective price is 899.
		spec := models.FilterSpec{PriceMax: floatPtr(899)}
		result := Query(products, spec, models.SortRelevance, page(1, 10))
		assert.Contains(t, resultIDs(result), 3)
		assert.NotContains(t, resultIDs(result), 4)
	})

	t.Run("missing bounds are unbounded", func(t *testing.T) {
		spec := models.FilterSpec{PriceMin: floatPtr(0)}
		result := Query(products, spec, models.SortRelevance, page(1, 10))
		assert.Equal(t, 4, result.TotalMatches)
	})
}

func TestQuery_MinRatingInclusive(t *testing.T) {
	products := testProducts()

	spec := models.FilterSpec{MinRating: floatPtr(4.5)}
	result := Query(products, spec, models.SortRelevance, page(1, 10))
	assert.Equal(t, []int{1, 2, 3, 4}, resultIDs(result))

	spec = models.FilterSpec{MinRating: floatPtr(4.6)}
	result = Query(products, spec, models.SortRelevance, page(1, 10))
	assert.Equal(t, []int{3, 4}, resultIDs(result))
}

func TestQuery_SortStability(t *testing.T) {
	// Products 1 and 2 share rating 4.5; they must keep input order under
	// a rating sort.
	products := testProducts()

	result := Query(products, models.FilterSpec{}, models.SortRating, page(1, 10))
	assert.Equal(t, []int{4, 3, 1, 2}, resultIDs(result))
}

func TestQuery_RelevanceIsNoOp(t *testing.T) {
	// Deliberately unordered input: relevance must preserve it exactly.
	products := []models.Product{
		{ID: 9, Name: "Z", Price: models.ScalarPrice(5)},
		{ID: 1, Name: "A", Price: models.ScalarPrice(500)},
		{ID: 5, Name: "M", Price: models.ScalarPrice(50)},
	}

	result := Query(products, models.FilterSpec{}, models.SortRelevance, page(1, 10))
	assert.Equal(t, []int{9, 1, 5}, resultIDs(result))
}

func TestQuery_SortKeys(t *testing.T) {
	products := testProducts()

	t.Run("price-high uses the range maximum", func(t *testing.T) {
		result := Query(products, models.FilterSpec{}, models.SortPriceHigh, page(1, 10))
		// 4: high 1699, 3: high 1599, 1: 100, 2: 50
		assert.Equal(t, []int{4, 3, 1, 2}, resultIDs(result))
	})

	t.Run("newest is id descending", func(t *testing.T) {
		result := Query(products, models.FilterSpec{}, models.SortNewest, page(1, 10))
		assert.Equal(t, []int{4, 3, 2, 1}, resultIDs(result))
	})

	t.Run("popular is review count descending", func(t *testing.T) {
		result := Query(products, models.FilterSpec{}, models.SortPopular, page(1, 10))
		assert.Equal(t, []int{4, 3, 2, 1}, resultIDs(result))
	})

	t.Run("name ascending and descending", func(t *testing.T) {
		asc := Query(products, models.FilterSpec{}, models.SortNameAsc, page(1, 10))
		assert.Equal(t, []int{1, 2, 3, 4}, resultIDs(asc))

		desc := Query(products, models.FilterSpec{}, models.SortNameDesc, page(1, 10))
		assert.Equal(t, []int{4, 3, 2, 1}, resultIDs(desc))
	})
}

func TestParseSortKey_UnknownFallsBackToRelevance(t *testing.T) {
	assert.Equal(t, models.SortRelevance, models.ParseSortKey("definitely-not-a-key"))
	assert.Equal(t, models.SortRelevance, models.ParseSortKey(""))
	assert.Equal(t, models.SortPriceLow, models.ParseSortKey("price-low"))
}

func TestQuery_PaginationCompleteness(t *testing.T) {
	products := testProducts()

	first := Query(products, models.FilterSpec{}, models.SortNewest, page(1, 3))
	require.Equal(t, 4, first.TotalMatches)
	require.Equal(t, 2, first.TotalPages)

	collected := []int{}
	for n := 1; n <= first.TotalPages; n++ {
		r := Query(products, models.FilterSpec{}, models.SortNewest, page(n, 3))
		collected = append(collected, resultIDs(r)...)
	}

	// No gaps, no duplicates, full ordering reproduced.
	assert.Equal(t, []int{4, 3, 2, 1}, collected)
}

func TestQuery_OutOfRangePage(t *testing.T) {
	products := testProducts()[:2]

	result := Query(products, models.FilterSpec{}, models.SortRelevance, page(3, 10))
	assert.Empty(t, result.Items)
	assert.Equal(t, 2, result.TotalMatches)
	assert.Equal(t, 1, result.TotalPages)
}

func TestQuery_EmptyCatalog(t *testing.T) {
	result := Query(nil, models.FilterSpec{}, models.SortPriceLow, page(1, 10))
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalMatches)
	assert.Equal(t, 0, result.TotalPages)
}

func TestQuery_Idempotent(t *testing.T) {
	products := testProducts()
	spec := models.FilterSpec{Categories: []string{"laptops"}}

	first := Query(products, spec, models.SortPriceLow, page(1, 2))
	second := Query(products, spec, models.SortPriceLow, page(1, 2))

	assert.Equal(t, first, second)
}

// Name sorting builds its collator per call; concurrent queries must not
// share comparison state. Run under -race.
func TestQuery_ConcurrentNameSort(t *testing.T) {
	products := testProducts()
	want := Query(products, models.FilterSpec{}, models.SortNameAsc, page(1, 10))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got := Query(products, models.FilterSpec{}, models.SortNameAsc, page(1, 10))
				assert.Equal(t, resultIDs(want), resultIDs(got))
			}
		}()
	}
	wg.Wait()
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := resultIDsOf(products)

	Query(products, models.FilterSpec{}, models.SortPriceLow, page(1, 10))

	assert.Equal(t, original, resultIDsOf(products))
}

func resultIDsOf(products []models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
