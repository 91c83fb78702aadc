package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pricing tier keys. Exactly one row per key is expected; rows are
// seeded, never created or deleted through the admin surface.
const (
	TierFoundation  = "foundation"
	TierGrowth      = "growth"
	TierPartnership = "partnership"
)

// PricingTier is one commercial package. Only name, description, price
// and target audience are editable; the tier key and feature list are
// fixed once seeded.
type PricingTier struct {
	ID             string   `gorm:"type:uuid;primaryKey" json:"id"`
	Tier           string   `gorm:"uniqueIndex;not null" json:"tier"`
	Name           string   `gorm:"not null" json:"name"`
	Description    string   `gorm:"not null" json:"description"`
	Price          string   `json:"price"`
	Features       []string `gorm:"serializer:json" json:"features"`
	TargetAudience string   `json:"target_audience"`
	IsVisible      bool     `gorm:"default:true" json:"is_visible"`
	DisplayOrder   int      `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *PricingTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (PricingTier) TableName() string {
	return "pricing_tiers"
}
