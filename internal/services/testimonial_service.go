package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

// TestimonialService manages client testimonials. The admin view lists
// every row; only approved rows are ever served publicly.
type TestimonialService interface {
	// List returns all testimonials, newest first, including unapproved
	List() ([]models.Testimonial, error)
	// ListApproved returns approved testimonials ordered by display order
	ListApproved() ([]models.Testimonial, error)
	// ToggleApproval flips the approval flag of one testimonial
	ToggleApproval(id string) (*models.Testimonial, error)
	// Delete removes one testimonial
	Delete(id string) error
}

type testimonialService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewTestimonialService(db *gorm.DB, store cache.Store) TestimonialService {
	return &testimonialService{db: db, cache: store}
}

func (s *testimonialService) List() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.Order("created_at desc").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (s *testimonialService) ListApproved() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.Where("is_approved = ?", true).Order("display_order asc").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (s *testimonialService) ToggleApproval(id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := s.db.Where("id = ?", id).First(&testimonial).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&testimonial).UpdateColumn("is_approved", !testimonial.IsApproved).Error; err != nil {
		return nil, err
	}
	testimonial.IsApproved = !testimonial.IsApproved
	s.invalidate()
	return &testimonial, nil
}

func (s *testimonialService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Testimonial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.invalidate()
	return nil
}

func (s *testimonialService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), cache.KeyTestimonials); err != nil {
		log.WithError(err).Warn("Failed to invalidate testimonials cache")
	}
}
