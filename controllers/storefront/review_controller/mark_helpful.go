package review_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// MarkReviewHelpful godoc
// @Summary Mark a review as helpful
// @Tags Storefront - Reviews
// @Produce json
// @Param id path string true "Review ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/reviews/{id}/helpful [post]
func MarkReviewHelpful(c *gin.Context) {
	reviewID := c.Param("id")

	count, ok, err := source.MarkHelpful(c.Request.Context(), reviewID)
	if err != nil {
		log.Printf("[store.reviews] ERROR marking review %s helpful: %v", reviewID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update review"))
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Review not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review marked helpful", gin.H{
		"helpful_count": count,
	}))
}
