package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subsidiary status values
const (
	SubsidiaryStatusActive   = "active"
	SubsidiaryStatusUpcoming = "upcoming"
	SubsidiaryStatusPlanned  = "planned"
)

// ValidSubsidiaryStatus reports whether s is a known subsidiary status
func ValidSubsidiaryStatus(s string) bool {
	switch s {
	case SubsidiaryStatusActive, SubsidiaryStatusUpcoming, SubsidiaryStatusPlanned:
		return true
	}
	return false
}

// Service is one offering shown on the Digital services page.
type Service struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Icon         string    `json:"icon"`
	IsVisible    bool      `gorm:"default:true" json:"is_visible"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// Subsidiary is one holding-company subsidiary shown on the home page.
type Subsidiary struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"not null" json:"description"`
	Icon         string    `json:"icon"`
	Status       string    `gorm:"default:'active'" json:"status"`
	IsVisible    bool      `gorm:"default:true" json:"is_visible"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Subsidiary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (Subsidiary) TableName() string {
	return "subsidiaries"
}
