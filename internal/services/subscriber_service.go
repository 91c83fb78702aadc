package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

// ErrAlreadySubscribed signals a duplicate email. It is a benign
// outcome, not a failure: exactly one row exists for the address.
var ErrAlreadySubscribed = errors.New("already subscribed")

// SubscriberService manages the newsletter mailing list
type SubscriberService interface {
	// Subscribe inserts a new subscriber. A duplicate email returns
	// ErrAlreadySubscribed and leaves the existing row untouched.
	Subscribe(email string) error
	// List returns all subscribers, newest first
	List() ([]models.EmailSubscriber, error)
	// Delete removes one subscriber
	Delete(id string) error
	// ExportCSV renders the given subscribers as a CSV document with
	// header Email,Subscribed Date,Status. It projects already-loaded
	// rows and never re-fetches, so the export matches what the caller
	// last listed.
	ExportCSV(subscribers []models.EmailSubscriber) []byte
	// ExportFilename returns the download filename for an export taken
	// on the given day
	ExportFilename(now time.Time) string
}

type subscriberService struct {
	db *gorm.DB
}

func NewSubscriberService(db *gorm.DB) SubscriberService {
	return &subscriberService{db: db}
}

func (s *subscriberService) Subscribe(email string) error {
	subscriber := models.EmailSubscriber{Email: email, IsActive: true}
	err := s.db.Create(&subscriber).Error
	if err == nil {
		return nil
	}
	if isDuplicateKeyError(err) {
		return ErrAlreadySubscribed
	}
	return err
}

func (s *subscriberService) List() ([]models.EmailSubscriber, error) {
	var subscribers []models.EmailSubscriber
	if err := s.db.Order("subscribed_at desc").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (s *subscriberService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.EmailSubscriber{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Plain comma join, no quoting: the export contract specifies raw
// comma-delimited rows, and none of the three columns can legally
// contain a comma.
func (s *subscriberService) ExportCSV(subscribers []models.EmailSubscriber) []byte {
	var b strings.Builder
	b.WriteString("Email,Subscribed Date,Status\n")
	for _, sub := range subscribers {
		status := "Inactive"
		if sub.IsActive {
			status = "Active"
		}
		b.WriteString(fmt.Sprintf("%s,%s,%s\n", sub.Email, sub.SubscribedAt.Format("2006-01-02"), status))
	}
	return []byte(b.String())
}

func (s *subscriberService) ExportFilename(now time.Time) string {
	return fmt.Sprintf("subscribers-%s.csv", now.Format("2006-01-02"))
}

// isDuplicateKeyError recognizes unique-constraint violations from both
// supported drivers. GORM's TranslateError covers the common path; the
// string checks catch driver versions that predate it.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}
