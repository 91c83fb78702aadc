package services

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

// ErrProjectInvalid is returned when a project is missing one of the
// required fields (client name, industry, description)
var ErrProjectInvalid = errors.New("client name, industry and description are required")

// PortfolioUpdate is a partial field set applied to one project. Nil
// pointers leave the stored value untouched.
type PortfolioUpdate struct {
	ClientName         *string `json:"client_name"`
	Industry           *string `json:"industry"`
	Description        *string `json:"description"`
	ImageURL           *string `json:"image_url"`
	BeforeMetrics      *string `json:"before_metrics"`
	AfterMetrics       *string `json:"after_metrics"`
	Testimonial        *string `json:"testimonial"`
	TestimonialAuthor  *string `json:"testimonial_author"`
	TestimonialCompany *string `json:"testimonial_company"`
	Status             *string `json:"status"`
	IsVisible          *bool   `json:"is_visible"`
	DisplayOrder       *int    `json:"display_order"`
}

// PortfolioService manages portfolio projects. Every mutation drops the
// public cache entry so public pages reflect changes immediately.
type PortfolioService interface {
	// List returns all projects ordered by display order
	List() ([]models.PortfolioProject, error)
	// ListVisible returns only publicly visible projects
	ListVisible() ([]models.PortfolioProject, error)
	// Create validates and persists a new project. Display order
	// defaults to the current count + 1 when unset.
	Create(project *models.PortfolioProject) error
	// Update applies a partial field set to one project
	Update(id string, update PortfolioUpdate) (*models.PortfolioProject, error)
	// Delete removes one project
	Delete(id string) error
	// ToggleVisibility flips the visibility flag and nothing else
	ToggleVisibility(id string) (*models.PortfolioProject, error)
}

type portfolioService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewPortfolioService(db *gorm.DB, store cache.Store) PortfolioService {
	return &portfolioService{db: db, cache: store}
}

func (s *portfolioService) List() ([]models.PortfolioProject, error) {
	var projects []models.PortfolioProject
	if err := s.db.Order("display_order asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *portfolioService) ListVisible() ([]models.PortfolioProject, error) {
	var projects []models.PortfolioProject
	if err := s.db.Where("is_visible = ?", true).Order("display_order asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *portfolioService) Create(project *models.PortfolioProject) error {
	if strings.TrimSpace(project.ClientName) == "" ||
		strings.TrimSpace(project.Industry) == "" ||
		strings.TrimSpace(project.Description) == "" {
		return ErrProjectInvalid
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	if !models.ValidProjectStatus(project.Status) {
		return ErrProjectInvalid
	}
	if project.IsVisible == nil {
		visible := true
		project.IsVisible = &visible
	}

	if project.DisplayOrder == 0 {
		var count int64
		if err := s.db.Model(&models.PortfolioProject{}).Count(&count).Error; err != nil {
			return err
		}
		project.DisplayOrder = int(count) + 1
	}

	if err := s.db.Create(project).Error; err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *portfolioService) Update(id string, update PortfolioUpdate) (*models.PortfolioProject, error) {
	var project models.PortfolioProject
	if err := s.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}

	if update.ClientName != nil {
		project.ClientName = *update.ClientName
	}
	if update.Industry != nil {
		project.Industry = *update.Industry
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.ImageURL != nil {
		project.ImageURL = *update.ImageURL
	}
	if update.BeforeMetrics != nil {
		project.BeforeMetrics = *update.BeforeMetrics
	}
	if update.AfterMetrics != nil {
		project.AfterMetrics = *update.AfterMetrics
	}
	if update.Testimonial != nil {
		project.Testimonial = *update.Testimonial
	}
	if update.TestimonialAuthor != nil {
		project.TestimonialAuthor = *update.TestimonialAuthor
	}
	if update.TestimonialCompany != nil {
		project.TestimonialCompany = *update.TestimonialCompany
	}
	if update.Status != nil {
		if !models.ValidProjectStatus(*update.Status) {
			return nil, ErrProjectInvalid
		}
		project.Status = *update.Status
	}
	if update.IsVisible != nil {
		project.IsVisible = update.IsVisible
	}
	if update.DisplayOrder != nil {
		project.DisplayOrder = *update.DisplayOrder
	}

	if strings.TrimSpace(project.ClientName) == "" ||
		strings.TrimSpace(project.Industry) == "" ||
		strings.TrimSpace(project.Description) == "" {
		return nil, ErrProjectInvalid
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}
	s.invalidate()
	return &project, nil
}

func (s *portfolioService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.PortfolioProject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.invalidate()
	return nil
}

func (s *portfolioService) ToggleVisibility(id string) (*models.PortfolioProject, error) {
	var project models.PortfolioProject
	if err := s.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}

	next := project.IsVisible == nil || !*project.IsVisible

	// Single-column update so every other field stays byte-identical,
	// including updated_at
	if err := s.db.Model(&project).UpdateColumn("is_visible", next).Error; err != nil {
		return nil, err
	}
	project.IsVisible = &next
	s.invalidate()
	return &project, nil
}

func (s *portfolioService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), cache.KeyPortfolio); err != nil {
		log.WithError(err).Warn("Failed to invalidate portfolio cache")
	}
}
