package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

// ErrSubsidiaryInvalid is returned when an update carries a status
// outside active, upcoming or planned
var ErrSubsidiaryInvalid = errors.New("unknown subsidiary status")

// CatalogUpdate carries the editable fields shared by services and
// subsidiaries
type CatalogUpdate struct {
	Title        *string `json:"title"`       // services only
	Name         *string `json:"name"`        // subsidiaries only
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Status       *string `json:"status"` // subsidiaries only
	IsVisible    *bool   `json:"is_visible"`
	DisplayOrder *int    `json:"display_order"`
}

// CatalogService manages the service and subsidiary listings shown on
// the marketing pages. Rows are seeded; the admin surface edits and
// toggles them.
type CatalogService interface {
	ListServices() ([]models.Service, error)
	ListVisibleServices() ([]models.Service, error)
	UpdateService(id string, update CatalogUpdate) (*models.Service, error)

	ListSubsidiaries() ([]models.Subsidiary, error)
	ListVisibleSubsidiaries() ([]models.Subsidiary, error)
	UpdateSubsidiary(id string, update CatalogUpdate) (*models.Subsidiary, error)
}

type catalogService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewCatalogService(db *gorm.DB, store cache.Store) CatalogService {
	return &catalogService{db: db, cache: store}
}

func (s *catalogService) ListServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("display_order asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *catalogService) ListVisibleServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Where("is_visible = ?", true).Order("display_order asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *catalogService) UpdateService(id string, update CatalogUpdate) (*models.Service, error) {
	var service models.Service
	if err := s.db.Where("id = ?", id).First(&service).Error; err != nil {
		return nil, err
	}

	if update.Title != nil {
		service.Title = *update.Title
	}
	if update.Description != nil {
		service.Description = *update.Description
	}
	if update.Icon != nil {
		service.Icon = *update.Icon
	}
	if update.IsVisible != nil {
		service.IsVisible = *update.IsVisible
	}
	if update.DisplayOrder != nil {
		service.DisplayOrder = *update.DisplayOrder
	}

	if err := s.db.Save(&service).Error; err != nil {
		return nil, err
	}
	s.invalidate(cache.KeyServices)
	return &service, nil
}

func (s *catalogService) ListSubsidiaries() ([]models.Subsidiary, error) {
	var subsidiaries []models.Subsidiary
	if err := s.db.Order("display_order asc").Find(&subsidiaries).Error; err != nil {
		return nil, err
	}
	return subsidiaries, nil
}

func (s *catalogService) ListVisibleSubsidiaries() ([]models.Subsidiary, error) {
	var subsidiaries []models.Subsidiary
	if err := s.db.Where("is_visible = ?", true).Order("display_order asc").Find(&subsidiaries).Error; err != nil {
		return nil, err
	}
	return subsidiaries, nil
}

func (s *catalogService) UpdateSubsidiary(id string, update CatalogUpdate) (*models.Subsidiary, error) {
	var subsidiary models.Subsidiary
	if err := s.db.Where("id = ?", id).First(&subsidiary).Error; err != nil {
		return nil, err
	}

	if update.Name != nil {
		subsidiary.Name = *update.Name
	}
	if update.Description != nil {
		subsidiary.Description = *update.Description
	}
	if update.Icon != nil {
		subsidiary.Icon = *update.Icon
	}
	if update.Status != nil {
		if !models.ValidSubsidiaryStatus(*update.Status) {
			return nil, ErrSubsidiaryInvalid
		}
		subsidiary.Status = *update.Status
	}
	if update.IsVisible != nil {
		subsidiary.IsVisible = *update.IsVisible
	}
	if update.DisplayOrder != nil {
		subsidiary.DisplayOrder = *update.DisplayOrder
	}

	if err := s.db.Save(&subsidiary).Error; err != nil {
		return nil, err
	}
	s.invalidate(cache.KeySubsidiaries)
	return &subsidiary, nil
}

func (s *catalogService) invalidate(key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), key); err != nil {
		log.WithError(err).Warn("Failed to invalidate catalog cache")
	}
}
