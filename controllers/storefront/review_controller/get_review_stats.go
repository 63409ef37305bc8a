package review_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/catalog"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// GetReviewStats godoc
// @Summary Get review statistics for a product
// @Description Total, average rating, star distribution, verified and with-photos percentages over the full review list.
// @Tags Storefront - Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.ReviewStats}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/reviews/stats [get]
func GetReviewStats(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	reviews, err := source.FetchReviews(c.Request.Context(), id)
	if err != nil {
		log.Printf("[store.reviews] ERROR fetching reviews for product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch review stats"))
		return
	}

	stats := catalog.ReviewStatsFor(reviews)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review stats fetched", stats))
}
