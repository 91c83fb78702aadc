package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailSubscriber is a newsletter list entry. Email uniqueness is
// enforced by the store; a duplicate insert is a benign outcome, not
// an error.
type EmailSubscriber struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

func (s *EmailSubscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (EmailSubscriber) TableName() string {
	return "email_subscribers"
}
