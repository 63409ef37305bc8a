package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StringList []string

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// ═══════════════════════════════════════════════════════════
// Review Model
// ═══════════════════════════════════════════════════════════

type Review struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID        int        `json:"product_id" gorm:"not null;index:idx_reviews_product"`
	UserName         string     `json:"user_name" gorm:"not null"`
	Rating           int        `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Title            string     `json:"title" gorm:"not null"`
	Content          string     `json:"content" gorm:"not null"`
	Pros             StringList `json:"pros" gorm:"type:jsonb;not null;default:'[]'"`
	Cons             StringList `json:"cons" gorm:"type:jsonb;not null;default:'[]'"`
	Images           StringList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	VerifiedPurchase bool       `json:"is_verified_purchase" gorm:"default:false"`
	HelpfulCount     int        `json:"helpful_count" gorm:"default:0"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ReviewRequest struct {
	UserName         string   `json:"user_name" binding:"required" example:"Sarah Johnson"`
	Rating           int      `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Title            string   `json:"title" binding:"required" example:"Exceptional camera quality"`
	Content          string   `json:"content" binding:"required"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	Images           []string `json:"images"`
	VerifiedPurchase bool     `json:"is_verified_purchase"`
}

// ═══════════════════════════════════════════════════════════
// Review query parameters
// ═══════════════════════════════════════════════════════════

// ReviewFilter narrows a product's review list. Zero values impose no
// restriction.
type ReviewFilter struct {
	MinRating       int  `json:"minRating,omitempty"` // inclusive
	VerifiedOnly    bool `json:"verifiedOnly,omitempty"`
	WithPhotos      bool `json:"withPhotos,omitempty"`
	WithProsAndCons bool `json:"withProsAndCons,omitempty"`
}

type ReviewSortKey string

const (
	ReviewSortNewest      ReviewSortKey = "newest"
	ReviewSortOldest      ReviewSortKey = "oldest"
	ReviewSortHighest     ReviewSortKey = "highest"
	ReviewSortLowest      ReviewSortKey = "lowest"
	ReviewSortMostHelpful ReviewSortKey = "most-helpful"
)

// ParseReviewSortKey defaults unknown values to newest.
func ParseReviewSortKey(s string) ReviewSortKey {
	switch ReviewSortKey(s) {
	case ReviewSortOldest, ReviewSortHighest, ReviewSortLowest, ReviewSortMostHelpful:
		return ReviewSortKey(s)
	default:
		return ReviewSortNewest
	}
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ReviewStats struct {
	TotalReviews      int         `json:"total_reviews"`
	AverageRating     float64     `json:"average_rating"` // one decimal
	Distribution      map[int]int `json:"distribution"`   // star value -> count
	VerifiedPercent   float64     `json:"verified_percent"`
	WithPhotosPercent float64     `json:"with_photos_percent"`
}
