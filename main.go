// @title BiteHub Discovery API
// @version 1.0
// @description BiteHub product discovery backend: catalog listing, search, comparison, and reviews over a mock or Postgres-backed product source.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Adarshk-afk/Bitehub/comparison"
	"github.com/Adarshk-afk/Bitehub/config"
	"github.com/Adarshk-afk/Bitehub/controllers/storefront/comparison_controller"
	"github.com/Adarshk-afk/Bitehub/controllers/storefront/filter_controller"
	"github.com/Adarshk-afk/Bitehub/controllers/storefront/product_controller"
	"github.com/Adarshk-afk/Bitehub/controllers/storefront/review_controller"
	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/Adarshk-afk/Bitehub/middleware"
	"github.com/Adarshk-afk/Bitehub/routes/storefront_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

// buildSource picks the catalog backend. Default is the embedded mock
// catalog with simulated upstream latency; CATALOG_SOURCE=postgres switches
// to the database client.
func buildSource() datasource.Source {
	if os.Getenv("CATALOG_SOURCE") == "postgres" {
		config.InitDB()
		log.Println("✅ Catalog source: postgres")
		return datasource.NewPostgresSource(config.CatalogGorm)
	}

	delayMs, _ := strconv.Atoi(config.GetEnv("CATALOG_FETCH_DELAY_MS", "0"))
	log.Printf("✅ Catalog source: mock (simulated latency %dms)", delayMs)
	return datasource.NewMockSource(time.Duration(delayMs) * time.Millisecond)
}

// buildComparisonStore prefers Redis so selections survive restarts; the
// in-memory store keeps the storefront working without it.
func buildComparisonStore() comparison.Store {
	if config.RedisClient != nil {
		log.Println("✅ Comparison store: redis")
		return comparison.NewRedisStore(config.RedisClient)
	}
	log.Println("⚠️  Comparison store: in-memory (selections reset on restart)")
	return comparison.NewMemoryStore()
}

func main() {
	// Redis connection (optional)
	config.ConnectRedis()

	source := buildSource()
	store := buildComparisonStore()

	product_controller.Init(source)
	filter_controller.Init(source)
	review_controller.Init(source)
	comparison_controller.Init(store, source)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	port := config.GetEnv("PORT", "8081")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
