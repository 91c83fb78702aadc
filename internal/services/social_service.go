package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

// SocialUpdate carries the editable fields of a social link
type SocialUpdate struct {
	Platform     *string `json:"platform"`
	URL          *string `json:"url"`
	Icon         *string `json:"icon"`
	IsVisible    *bool   `json:"is_visible"`
	DisplayOrder *int    `json:"display_order"`
}

// SocialService manages social media links
type SocialService interface {
	// List returns all links ordered by display order
	List() ([]models.SocialLink, error)
	// ListVisible returns only publicly visible links
	ListVisible() ([]models.SocialLink, error)
	// Add inserts a placeholder row ordered after every existing link
	Add() (*models.SocialLink, error)
	// Update writes the given fields of one link
	Update(id string, update SocialUpdate) (*models.SocialLink, error)
	// ToggleVisibility flips the visibility flag of one link
	ToggleVisibility(id string) (*models.SocialLink, error)
	// Delete removes one link
	Delete(id string) error
}

type socialService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewSocialService(db *gorm.DB, store cache.Store) SocialService {
	return &socialService{db: db, cache: store}
}

func (s *socialService) List() ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := s.db.Order("display_order asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *socialService) ListVisible() ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := s.db.Where("is_visible = ?", true).Order("display_order asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *socialService) Add() (*models.SocialLink, error) {
	// Next display order is max existing + 1, or 1 for an empty table
	var maxOrder int
	row := s.db.Model(&models.SocialLink{}).Select("COALESCE(MAX(display_order), 0)").Row()
	if err := row.Scan(&maxOrder); err != nil {
		return nil, err
	}

	link := models.SocialLink{
		Platform:     "New Platform",
		URL:          "https://",
		IsVisible:    true,
		DisplayOrder: maxOrder + 1,
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}
	s.invalidate()
	return &link, nil
}

func (s *socialService) Update(id string, update SocialUpdate) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := s.db.Where("id = ?", id).First(&link).Error; err != nil {
		return nil, err
	}

	if update.Platform != nil {
		link.Platform = *update.Platform
	}
	if update.URL != nil {
		link.URL = *update.URL
	}
	if update.Icon != nil {
		link.Icon = *update.Icon
	}
	if update.IsVisible != nil {
		link.IsVisible = *update.IsVisible
	}
	if update.DisplayOrder != nil {
		link.DisplayOrder = *update.DisplayOrder
	}

	if err := s.db.Save(&link).Error; err != nil {
		return nil, err
	}
	s.invalidate()
	return &link, nil
}

func (s *socialService) ToggleVisibility(id string) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := s.db.Where("id = ?", id).First(&link).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&link).UpdateColumn("is_visible", !link.IsVisible).Error; err != nil {
		return nil, err
	}
	link.IsVisible = !link.IsVisible
	s.invalidate()
	return &link, nil
}

func (s *socialService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.SocialLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.invalidate()
	return nil
}

func (s *socialService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), cache.KeySocialLinks); err != nil {
		log.WithError(err).Warn("Failed to invalidate social links cache")
	}
}
