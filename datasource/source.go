// Package datasource supplies the full, unfiltered product catalog and its
// reviews. The catalog query engine never assumes any inherent ordering
// from a source beyond what relevance sorting preserves.
package datasource

import (
	"context"

	"github.com/Adarshk-afk/Bitehub/models"
)

// Source is the product/review backend. The built-in MockSource serves the
// hard-coded catalog with simulated latency; PostgresSource is the real
// database client variant selected via CATALOG_SOURCE=postgres.
type Source interface {
	// FetchAll returns the complete catalog, untrimmed and unordered.
	FetchAll(ctx context.Context) ([]models.Product, error)

	// FetchReviews returns every review for one product.
	FetchReviews(ctx context.Context, productID int) ([]models.Review, error)

	// AddReview stores a new review and returns it with its id assigned.
	AddReview(ctx context.Context, review models.Review) (models.Review, error)

	// MarkHelpful increments a review's helpful count. Returns the new
	// count, or ok=false when the review does not exist.
	MarkHelpful(ctx context.Context, reviewID string) (count int, ok bool, err error)
}
