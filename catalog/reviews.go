package catalog

import (
	"math"
	"sort"

	"github.com/Adarshk-afk/Bitehub/models"
)

// ReviewResult mirrors Result for a product's review list.
type ReviewResult struct {
	Items        []models.Review `json:"items"`
	TotalMatches int             `json:"total_matches"`
	TotalPages   int             `json:"total_pages"`
}

// QueryReviews filters, sorts, and paginates a review list with the same
// rules as Query: conjunctive filters, stable sort, empty page when the
// page number runs past the matches, TotalPages 0 on no matches.
func QueryReviews(reviews []models.Review, filter models.ReviewFilter, sortKey models.ReviewSortKey, page models.Page) ReviewResult {
	matched := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if matchesReviewFilter(r, filter) {
			matched = append(matched, r)
		}
	}

	sortReviews(matched, sortKey)

	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = DefaultPageSize
	}

	total := len(matched)
	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Size - 1) / page.Size
	}

	start := (page.Number - 1) * page.Size
	items := []models.Review{}
	if start < total {
		end := start + page.Size
		if end > total {
			end = total
		}
		items = matched[start:end]
	}

	return ReviewResult{Items: items, TotalMatches: total, TotalPages: totalPages}
}

func matchesReviewFilter(r models.Review, f models.ReviewFilter) bool {
	if f.MinRating > 0 && r.Rating < f.MinRating {
		return false
	}
	if f.VerifiedOnly && !r.VerifiedPurchase {
		return false
	}
	if f.WithPhotos && len(r.Images) == 0 {
		return false
	}
	if f.WithProsAndCons && (len(r.Pros) == 0 || len(r.Cons) == 0) {
		return false
	}
	return true
}

func sortReviews(reviews []models.Review, sortKey models.ReviewSortKey) {
	switch sortKey {
	case models.ReviewSortOldest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		})
	case models.ReviewSortHighest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating > reviews[j].Rating
		})
	case models.ReviewSortLowest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating < reviews[j].Rating
		})
	case models.ReviewSortMostHelpful:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].HelpfulCount > reviews[j].HelpfulCount
		})
	default:
		// newest
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		})
	}
}

// ReviewStatsFor summarizes a product's full (unfiltered) review list.
func ReviewStatsFor(reviews []models.Review) models.ReviewStats {
	stats := models.ReviewStats{
		TotalReviews: len(reviews),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}

	sum := 0
	verified := 0
	withPhotos := 0
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Distribution[r.Rating]++
		}
		if r.VerifiedPurchase {
			verified++
		}
		if len(r.Images) > 0 {
			withPhotos++
		}
	}

	n := float64(len(reviews))
	stats.AverageRating = math.Round(float64(sum)/n*10) / 10
	stats.VerifiedPercent = math.Round(float64(verified)/n*1000) / 10
	stats.WithPhotosPercent = math.Round(float64(withPhotos)/n*1000) / 10
	return stats
}
