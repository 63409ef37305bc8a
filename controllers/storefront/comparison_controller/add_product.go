package comparison_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// AddProduct godoc
// @Summary Add a product to the comparison selection
// @Description No-op when the product is already selected or the selection is full (capacity 4).
// @Tags Storefront - Comparison
// @Produce json
// @Param id path int true "Product ID"
// @Param X-Session-ID header string false "Session identifier"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/comparison/{id} [post]
func AddProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	// Only real catalog products can enter the selection.
	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[store.comparison] ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update comparison selection"))
		return
	}
	exists := false
	for _, p := range products {
		if p.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	m := managerFor(c)
	added := m.Add(c.Request.Context(), id)

	payload, err := buildSelectionPayload(c, m)
	if err != nil {
		log.Printf("[store.comparison] ERROR hydrating comparison selection: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch comparison selection"))
		return
	}

	message := "Product added to comparison"
	if !added {
		message = "Comparison selection unchanged"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, payload))
}
