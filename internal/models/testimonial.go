package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a client quote. Rows start unapproved; only approved
// rows are ever served publicly.
type Testimonial struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName   string    `gorm:"not null" json:"client_name"`
	Company      string    `gorm:"not null" json:"company"`
	Country      string    `json:"country"`
	Content      string    `gorm:"not null" json:"content"`
	IsApproved   bool      `gorm:"default:false" json:"is_approved"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (Testimonial) TableName() string {
	return "testimonials"
}
