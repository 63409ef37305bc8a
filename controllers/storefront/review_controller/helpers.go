package review_controller

import (
	"strconv"

	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

var source datasource.Source

// Init injects the review source.
func Init(s datasource.Source) {
	source = s
}

func parsePagination(c *gin.Context) models.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return models.Page{Number: page, Size: limit}
}

func parseReviewFilter(c *gin.Context) models.ReviewFilter {
	filter := models.ReviewFilter{}
	if raw := c.Query("minRating"); raw != "" {
		if minRating, err := strconv.Atoi(raw); err == nil {
			filter.MinRating = minRating
		}
	}
	filter.VerifiedOnly = c.Query("verified") == "true"
	filter.WithPhotos = c.Query("withPhotos") == "true"
	filter.WithProsAndCons = c.Query("withProsAndCons") == "true"
	return filter
}

func parseProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
