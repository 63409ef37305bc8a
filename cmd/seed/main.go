package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Adarshk-afk/Bitehub/config"
	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the catalog database with the embedded mock dataset so a
// server running with CATALOG_SOURCE=postgres serves the same products as
// the mock source.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("BITEHUB - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to catalog database")

	// The whole seed run shares one deadline, wider than the per-request
	// default.
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	db := config.CatalogGorm.WithContext(ctx)
	if err := db.AutoMigrate(&models.Product{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	// The mock source is the canonical dataset.
	mock := datasource.NewMockSource(0)

	products, err := mock.FetchAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load embedded catalog: %v", err)
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d products", len(products))

	seededReviews := 0
	for _, p := range products {
		reviews, err := mock.FetchReviews(ctx, p.ID)
		if err != nil {
			log.Fatalf("Failed to load embedded reviews: %v", err)
		}
		if len(reviews) == 0 {
			continue
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&reviews).Error; err != nil {
			log.Fatalf("Failed to seed reviews for product %d: %v", p.ID, err)
		}
		seededReviews += len(reviews)
	}
	log.Printf("✓ Seeded %d reviews", seededReviews)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: CATALOG_SOURCE=postgres go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/store/products")
	fmt.Println()
}
