package datasource

import (
	"context"
	"sync"
	"time"

	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/google/uuid"
)

// MockSource serves the hard-coded catalog, simulating a slow upstream with
// a fixed artificial delay. A fetch whose context is cancelled (the caller
// navigated away, a newer query superseded it) returns ctx.Err() instead of
// delivering stale results, so the last query wins.
//
// Reviews are mutable; products are not.
type MockSource struct {
	Delay time.Duration

	mu       sync.RWMutex
	products []models.Product
	reviews  []models.Review
}

// NewMockSource seeds the source with the full catalog. delay of 0 makes
// every fetch immediate (tests).
func NewMockSource(delay time.Duration) *MockSource {
	return &MockSource{
		Delay:    delay,
		products: catalogProducts(),
		reviews:  catalogReviews(),
	}
}

// wait blocks for the simulated latency, bailing out when ctx is done.
func (m *MockSource) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MockSource) FetchReviews(ctx context.Context, productID int) ([]models.Review, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Review, 0)
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockSource) AddReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := ctx.Err(); err != nil {
		return models.Review{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if review.ID == uuid.Nil {
		review.ID = uuid.Must(uuid.NewV7())
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	m.reviews = append(m.reviews, review)
	return review, nil
}

func (m *MockSource) MarkHelpful(ctx context.Context, reviewID string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reviews {
		if m.reviews[i].ID.String() == reviewID {
			m.reviews[i].HelpfulCount++
			return m.reviews[i].HelpfulCount, true, nil
		}
	}
	return 0, false, nil
}
