package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
)

// ═══════════════════════════════════════════════════════════
// Price (tagged variant: scalar amount or {min, max} range)
// ═══════════════════════════════════════════════════════════

// Price holds either a single amount or a min/max range. Configurable
// products (laptops with multiple trims, etc.) carry a range; everything
// else carries a scalar. Every price-dependent operation goes through
// Low/High instead of inspecting the shape directly.
type Price struct {
	Amount  float64 `json:"-"`
	Min     float64 `json:"-"`
	Max     float64 `json:"-"`
	IsRange bool    `json:"-"`
}

func ScalarPrice(amount float64) Price {
	return Price{Amount: amount}
}

func RangePrice(min, max float64) Price {
	return Price{Min: min, Max: max, IsRange: true}
}

// Low returns the effective price: the range minimum, or the scalar amount.
// Used for range filtering and ascending price sort.
func (p Price) Low() float64 {
	if p.IsRange {
		return p.Min
	}
	return p.Amount
}

// High returns the range maximum (falling back to the minimum when the
// maximum is unset), or the scalar amount. Used for descending price sort.
func (p Price) High() float64 {
	if p.IsRange {
		if p.Max > 0 {
			return p.Max
		}
		return p.Min
	}
	return p.Amount
}

type priceRangeJSON struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.IsRange {
		return json.Marshal(priceRangeJSON{Min: p.Min, Max: p.Max})
	}
	return json.Marshal(p.Amount)
}

// UnmarshalJSON accepts a number, a numeric string ("1199", the legacy
// catalog feed quotes scalar prices), or a {min, max} object.
func (p *Price) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		*p = ScalarPrice(amount)
		return nil
	}

	var quoted string
	if err := json.Unmarshal(data, &quoted); err == nil {
		amount, err := strconv.ParseFloat(quoted, 64)
		if err != nil {
			return errors.New("price string is not numeric")
		}
		*p = ScalarPrice(amount)
		return nil
	}

	var r priceRangeJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return errors.New("price must be a number, numeric string, or {min, max} object")
	}
	*p = RangePrice(r.Min, r.Max)
	return nil
}

// JSONB scanner/valuer so Price maps onto a jsonb column.
func (p *Price) Scan(value interface{}) error {
	if value == nil {
		*p = Price{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Price")
	}
	return p.UnmarshalJSON(bytes)
}

func (p Price) Value() (driver.Value, error) {
	return p.MarshalJSON()
}

// ═══════════════════════════════════════════════════════════
// Custom slice types (JSONB-backed)
// ═══════════════════════════════════════════════════════════

type FeatureList []string

func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = make(FeatureList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan FeatureList")
	}
	return json.Unmarshal(bytes, f)
}

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f)
}

// Has reports whether the tag is present.
func (f FeatureList) Has(tag string) bool {
	for _, t := range f {
		if t == tag {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Main Product Model
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            int         `json:"id" gorm:"primaryKey"`
	Name          string      `json:"name" gorm:"not null;index"`
	Brand         string      `json:"brand" gorm:"not null;index"`
	Category      string      `json:"category" gorm:"not null;index"`
	Price         Price       `json:"price" gorm:"type:jsonb;not null"`
	OriginalPrice *float64    `json:"originalPrice,omitempty" gorm:"type:numeric(12,2)"`
	Discount      *int        `json:"discount,omitempty"`
	Rating        float64     `json:"rating" gorm:"type:numeric(2,1);check:rating >= 0 AND rating <= 5"`
	ReviewCount   int         `json:"reviewCount" gorm:"default:0"`
	Image         string      `json:"image"`
	Description   string      `json:"description"`
	Badge         string      `json:"badge,omitempty"`
	Features      FeatureList `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	AffiliateLink string      `json:"affiliateLink,omitempty"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}
