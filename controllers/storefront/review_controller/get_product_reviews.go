package review_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/catalog"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// GetProductReviews godoc
// @Summary Get reviews for a product
// @Description Reviews filtered by rating/verified/photos/pros-and-cons, sorted, and paginated.
// @Tags Storefront - Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Param minRating query int false "Minimum star rating (inclusive)"
// @Param verified query bool false "Verified purchases only"
// @Param withPhotos query bool false "Reviews with photos only"
// @Param withProsAndCons query bool false "Reviews listing both pros and cons only"
// @Param sortBy query string false "Sort key (newest, oldest, highest, lowest, most-helpful)" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/reviews [get]
func GetProductReviews(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	page := parsePagination(c)
	filter := parseReviewFilter(c)
	sortKey := models.ParseReviewSortKey(c.DefaultQuery("sortBy", "newest"))

	reviews, err := source.FetchReviews(c.Request.Context(), id)
	if err != nil {
		log.Printf("[store.reviews] ERROR fetching reviews for product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}

	result := catalog.QueryReviews(reviews, filter, sortKey, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Reviews fetched successfully",
		result.Items,
		&models.Pagination{
			Page:       page.Number,
			Limit:      page.Size,
			Total:      result.TotalMatches,
			TotalPages: result.TotalPages,
		},
	))
}
