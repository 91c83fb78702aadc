package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is a footer/profile link. Public readers only see visible
// rows, ordered by display_order.
type SocialLink struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Platform     string `gorm:"not null" json:"platform"`
	URL          string `gorm:"not null" json:"url"`
	Icon         string `json:"icon"`
	IsVisible    bool   `gorm:"default:true" json:"is_visible"`
	DisplayOrder int    `json:"display_order"`
}

func (l *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

func (SocialLink) TableName() string {
	return "social_links"
}
