package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business type values accepted on contact submissions
const (
	ContactTypeStartup     = "startup"
	ContactTypeEstablished = "established"
	ContactTypeIdea        = "idea"
)

// ValidContactType reports whether t is one of the accepted business types
func ValidContactType(t string) bool {
	switch t {
	case ContactTypeStartup, ContactTypeEstablished, ContactTypeIdea:
		return true
	}
	return false
}

// ContactSubmission is a public contact-form entry. Immutable after
// insert except for the read flag.
type ContactSubmission struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Company      string    `json:"company"`
	Email        string    `gorm:"not null" json:"email"`
	BusinessType string    `gorm:"not null" json:"business_type"`
	Goals        string    `json:"goals"`
	BudgetRange  string    `json:"budget_range"`
	Timeline     string    `json:"timeline"`
	IsRead       bool      `gorm:"default:false" json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
