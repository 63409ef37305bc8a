package product_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/catalog"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Retrieve products with optional search, category, brand, feature, rating, and price filters, sorted and paginated.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name, brand, description, or category)"
// @Param category query []string false "Category tags (repeatable)"
// @Param brand query []string false "Brand tags, case-insensitive (repeatable)"
// @Param feature query []string false "Feature tags, product needs at least one (repeatable)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minRating query number false "Minimum rating (inclusive)"
// @Param sortBy query string false "Sort key (relevance, price-low, price-high, rating, newest, popular, name-asc, name-desc)" default(relevance)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page := parsePagination(c)
	spec := parseFilterSpec(c)
	sortKey := models.ParseSortKey(c.DefaultQuery("sortBy", "relevance"))
	query := c.Query("q")

	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[store.products] ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Free-text search narrows the collection before the sidebar filters.
	if query != "" {
		products = catalog.Search(products, query)
	}

	result := catalog.Query(products, spec, sortKey, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		result.Items,
		&models.Pagination{
			Page:       page.Number,
			Limit:      page.Size,
			Total:      result.TotalMatches,
			TotalPages: result.TotalPages,
		},
	))
}
