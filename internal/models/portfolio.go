package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project status values
const (
	ProjectStatusActive    = "active"
	ProjectStatusUpcoming  = "upcoming"
	ProjectStatusCompleted = "completed"
)

// ValidProjectStatus reports whether s is a known project status
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusUpcoming, ProjectStatusCompleted:
		return true
	}
	return false
}

// PortfolioProject is a showcased client engagement. The visibility
// flag gates the public read; display_order drives manual sorting.
type PortfolioProject struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName         string    `gorm:"not null" json:"client_name"`
	Industry           string    `gorm:"not null" json:"industry"`
	Description        string    `gorm:"not null" json:"description"`
	ImageURL           string    `json:"image_url"`
	BeforeMetrics      string    `json:"before_metrics"`
	AfterMetrics       string    `json:"after_metrics"`
	Testimonial        string    `json:"testimonial"`
	TestimonialAuthor  string    `json:"testimonial_author"`
	TestimonialCompany string    `json:"testimonial_company"`
	Status             string    `gorm:"default:'active'" json:"status"`
	// Pointer so an explicit false on create is distinguishable from an
	// omitted field; a gorm default tag drops zero values on insert.
	IsVisible    *bool     `json:"is_visible"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *PortfolioProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (PortfolioProject) TableName() string {
	return "portfolio_projects"
}
