package review_controller

import (
	"log"
	"net/http"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// CreateReview godoc
// @Summary Submit a review for a product
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param review body models.ReviewRequest true "Review payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid review payload: "+err.Error()))
		return
	}

	review := models.Review{
		ProductID:        id,
		UserName:         req.UserName,
		Rating:           req.Rating,
		Title:            req.Title,
		Content:          req.Content,
		Pros:             req.Pros,
		Cons:             req.Cons,
		Images:           req.Images,
		VerifiedPurchase: req.VerifiedPurchase,
	}

	created, err := source.AddReview(c.Request.Context(), review)
	if err != nil {
		log.Printf("[store.reviews] ERROR creating review for product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create review"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created successfully", created))
}
