package comparison_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// GetSelection godoc
// @Summary Get the comparison selection
// @Description Current selection for this session, restored from the selection store and hydrated with product snapshots.
// @Tags Storefront - Comparison
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/comparison [get]
func GetSelection(c *gin.Context) {
	m := managerFor(c)

	payload, err := buildSelectionPayload(c, m)
	if err != nil {
		log.Printf("[store.comparison] ERROR hydrating comparison selection: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch comparison selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison selection fetched", payload))
}
