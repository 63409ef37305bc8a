package datasource

import (
	"context"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostgresSource is the database-backed catalog client, selected with
// CATALOG_SOURCE=postgres. The filter/sort/paginate pipeline still runs
// in-memory through the catalog engine; the source only supplies the full
// collection, in insertion (id) order so relevance matches the seed order.
type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (p *PostgresSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := p.db.WithContext(ctx).
		Raw(`
			SELECT id, name, brand, category, price, original_price, discount,
			       rating, review_count, image, description, badge, features,
			       affiliate_link
			FROM products
			ORDER BY id ASC
		`).
		Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *PostgresSource) FetchReviews(ctx context.Context, productID int) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := p.db.WithContext(ctx).
		Raw(`
			SELECT id, product_id, user_name, rating, title, content, pros,
			       cons, images, is_verified_purchase, helpful_count, created_at
			FROM reviews
			WHERE product_id = ?
			ORDER BY created_at DESC
		`, productID).
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (p *PostgresSource) AddReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := p.db.WithContext(ctx).Create(&review).Error; err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (p *PostgresSource) MarkHelpful(ctx context.Context, reviewID string) (int, bool, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return 0, false, nil
	}

	var count int
	res := p.db.WithContext(ctx).
		Raw(`
			UPDATE reviews
			SET helpful_count = helpful_count + 1
			WHERE id = ?
			RETURNING helpful_count
		`, id).
		Scan(&count)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return count, true, nil
}
