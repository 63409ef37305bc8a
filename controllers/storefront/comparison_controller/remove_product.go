package comparison_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// RemoveProduct godoc
// @Summary Remove a product from the comparison selection
// @Tags Storefront - Comparison
// @Produce json
// @Param id path int true "Product ID"
// @Param X-Session-ID header string false "Session identifier"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/comparison/{id} [delete]
func RemoveProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	m := managerFor(c)
	removed := m.Remove(c.Request.Context(), id)

	payload, err := buildSelectionPayload(c, m)
	if err != nil {
		log.Printf("[store.comparison] ERROR hydrating comparison selection: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch comparison selection"))
		return
	}

	message := "Product removed from comparison"
	if !removed {
		message = "Comparison selection unchanged"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, payload))
}
