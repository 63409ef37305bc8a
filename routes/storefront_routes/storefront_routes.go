package storefront_routes

import (
	store_comparison "github.com/Adarshk-afk/Bitehub/controllers/storefront/comparison_controller"
	store_filter "github.com/Adarshk-afk/Bitehub/controllers/storefront/filter_controller"
	store_product "github.com/Adarshk-afk/Bitehub/controllers/storefront/product_controller"
	store_review "github.com/Adarshk-afk/Bitehub/controllers/storefront/review_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with search/filters/sort
		products.GET("/:id", store_product.GetStorefrontProductByID)
		products.GET("/:id/similar", store_product.GetSimilarProducts)

		products.GET("/:id/reviews", store_review.GetProductReviews)
		products.GET("/:id/reviews/stats", store_review.GetReviewStats)
		products.POST("/:id/reviews", store_review.CreateReview)
	}

	// Search
	store.GET("/search/suggestions", store_product.GetSearchSuggestions)

	// Filter metadata for the sidebar
	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// Comparison selection
	comparisonGroup := store.Group("/comparison")
	{
		comparisonGroup.GET("", store_comparison.GetSelection)
		comparisonGroup.POST("/:id", store_comparison.AddProduct)
		comparisonGroup.DELETE("/:id", store_comparison.RemoveProduct)
		comparisonGroup.DELETE("", store_comparison.ClearSelection)
	}

	// Helpful votes address the review directly, not through a product
	store.POST("/reviews/:id/helpful", store_review.MarkReviewHelpful)
}
