package comparison_controller

import (
	"net/http"

	"github.com/Adarshk-afk/Bitehub/comparison"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// ClearSelection godoc
// @Summary Clear the comparison selection
// @Tags Storefront - Comparison
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Success 200 {object} models.ApiResponse
// @Router /store/comparison [delete]
func ClearSelection(c *gin.Context) {
	m := managerFor(c)
	m.Clear(c.Request.Context())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison selection cleared", selectionPayload{
		IDs:      []int{},
		Products: []models.Product{},
		Capacity: comparison.Capacity,
	}))
}
