package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

// PricingUpdate carries the editable fields of a pricing tier. The tier
// key and the feature list are fixed once seeded and cannot be changed
// through this surface.
type PricingUpdate struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Price          *string `json:"price"`
	TargetAudience *string `json:"target_audience"`
	IsVisible      *bool   `json:"is_visible"`
}

// PricingService manages the fixed set of pricing tiers. Rows are
// seeded once per tier key; the admin surface only edits field values.
type PricingService interface {
	// List returns all tiers ordered by display order
	List() ([]models.PricingTier, error)
	// ListVisible returns only publicly visible tiers
	ListVisible() ([]models.PricingTier, error)
	// Update writes the editable fields of one tier
	Update(id string, update PricingUpdate) (*models.PricingTier, error)
}

type pricingService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewPricingService(db *gorm.DB, store cache.Store) PricingService {
	return &pricingService{db: db, cache: store}
}

func (s *pricingService) List() ([]models.PricingTier, error) {
	var tiers []models.PricingTier
	if err := s.db.Order("display_order asc").Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

func (s *pricingService) ListVisible() ([]models.PricingTier, error) {
	var tiers []models.PricingTier
	if err := s.db.Where("is_visible = ?", true).Order("display_order asc").Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

func (s *pricingService) Update(id string, update PricingUpdate) (*models.PricingTier, error) {
	var tier models.PricingTier
	if err := s.db.Where("id = ?", id).First(&tier).Error; err != nil {
		return nil, err
	}

	if update.Name != nil {
		tier.Name = *update.Name
	}
	if update.Description != nil {
		tier.Description = *update.Description
	}
	if update.Price != nil {
		tier.Price = *update.Price
	}
	if update.TargetAudience != nil {
		tier.TargetAudience = *update.TargetAudience
	}
	if update.IsVisible != nil {
		tier.IsVisible = *update.IsVisible
	}

	if err := s.db.Save(&tier).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(context.Background(), cache.KeyPricing); err != nil {
			log.WithError(err).Warn("Failed to invalidate pricing cache")
		}
	}
	return &tier, nil
}
