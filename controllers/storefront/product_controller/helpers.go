package product_controller

import (
	"strconv"

	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Package wiring
// ─────────────────────────────────────────────────────────────

var source datasource.Source

// Init injects the catalog source. Called once from main before routes
// are served.
func Init(s datasource.Source) {
	source = s
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) models.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return models.Page{Number: page, Size: limit}
}

// parseFilterSpec reads the sidebar filter params. Absent params leave the
// spec unrestricted.
func parseFilterSpec(c *gin.Context) models.FilterSpec {
	spec := models.FilterSpec{
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		Features:   c.QueryArray("feature"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if minPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.PriceMin = &minPrice
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.PriceMax = &maxPrice
		}
	}
	if raw := c.Query("minRating"); raw != "" {
		if minRating, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.MinRating = &minRating
		}
	}

	return spec
}

func parseProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
