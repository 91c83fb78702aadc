package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

// ErrInvalidBusinessType is returned when a submission carries an
// unknown business type
var ErrInvalidBusinessType = errors.New("invalid business type")

// ContactService manages public contact-form submissions. Rows are
// immutable after insert except for the read flag.
type ContactService interface {
	// Submit validates and persists a new submission
	Submit(submission *models.ContactSubmission) error
	// List returns all submissions, newest first
	List() ([]models.ContactSubmission, error)
	// MarkRead sets the read flag on one submission
	MarkRead(id string) error
	// Delete removes one submission
	Delete(id string) error
}

type contactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) ContactService {
	return &contactService{db: db}
}

func (s *contactService) Submit(submission *models.ContactSubmission) error {
	if !models.ValidContactType(submission.BusinessType) {
		return ErrInvalidBusinessType
	}
	return s.db.Create(submission).Error
}

func (s *contactService) List() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	if err := s.db.Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *contactService) MarkRead(id string) error {
	result := s.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *contactService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.ContactSubmission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
