package filter_controller

import (
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"

	metadata_cache "github.com/Adarshk-afk/Bitehub/cache"
	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

var source datasource.Source

// Init injects the catalog source.
func Init(s datasource.Source) {
	source = s
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns category, brand, and feature counts plus the catalog price range for the storefront sidebar
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := metadata_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched (cached)", cached))
		return
	}

	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[store.filters] ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	// The facet scans are independent; run them concurrently.
	var wg sync.WaitGroup
	metadata := &models.FilterMetadata{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.Categories = countFacets(products, func(p models.Product) []string {
			return []string{p.Category}
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.Brands = countFacets(products, func(p models.Product) []string {
			return []string{strings.ToLower(p.Brand)}
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.Features = countFacets(products, func(p models.Product) []string {
			return p.Features
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.PriceRange = priceRange(products)
	}()

	wg.Wait()

	metadata_cache.Set(metadata)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// countFacets tallies how many products carry each value, most frequent
// first (ties alphabetical, so the sidebar is stable between reloads).
func countFacets(products []models.Product, values func(models.Product) []string) []models.FacetCount {
	counts := make(map[string]int)
	for _, p := range products {
		for _, v := range values(p) {
			if v != "" {
				counts[v]++
			}
		}
	}

	facets := make([]models.FacetCount, 0, len(counts))
	for value, count := range counts {
		facets = append(facets, models.FacetCount{Value: value, Count: count})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Value < facets[j].Value
	})
	return facets
}

// priceRange spans from the cheapest effective price to the highest listed
// price in the catalog.
func priceRange(products []models.Product) *models.PriceRangeData {
	if len(products) == 0 {
		return nil
	}
	r := &models.PriceRangeData{
		Min: products[0].Price.Low(),
		Max: products[0].Price.High(),
	}
	for _, p := range products[1:] {
		if low := p.Price.Low(); low < r.Min {
			r.Min = low
		}
		if high := p.Price.High(); high > r.Max {
			r.Max = high
		}
	}
	return r
}
