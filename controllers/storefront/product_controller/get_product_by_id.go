package product_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[store.products] ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	for _, p := range products {
		if p.ID == id {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", p))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
