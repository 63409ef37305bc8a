package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Adarshk-afk/Bitehub/catalog"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

// GetSearchSuggestions godoc
// @Summary Get search suggestions
// @Description Product names and brands matching the typed query, for the search bar dropdown.
// @Tags Storefront - Search
// @Produce json
// @Param q query string true "Typed query"
// @Param limit query int false "Max suggestions" default(6)
// @Success 200 {object} models.ApiResponse
// @Router /store/search/suggestions [get]
func GetSearchSuggestions(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 20 {
		limit = 6
	}

	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		log.Printf("[store.products] ERROR fetching catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
		return
	}

	suggestions := catalog.Suggestions(products, query, limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched", suggestions))
}
