package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Adarshk-afk/Bitehub/catalog"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

const defaultSimilarLimit = 4

// GetSimilarProducts godoc
// @Summary Get similar products
// @Description Products from the same category, best-rated first.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Param limit query int false "Max results" default(4)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id}/similar [get]
func GetSimilarProducts(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if limit < 1 || limit > 24 {
		limit = defaultSimilarLimit
	}

	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[store.products] ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch similar products"))
		return
	}

	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	similar := catalog.Similar(products, id, limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Similar products fetched", similar))
}
