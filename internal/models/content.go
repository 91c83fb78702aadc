package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteContentEntry is an editable content string looked up by key.
// Category groups entries for the admin editor ("contact", "home", ...).
type SiteContentEntry struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Key      string `gorm:"uniqueIndex;not null" json:"key"`
	Content  string `json:"content"`
	Label    string `json:"label"`
	Category string `gorm:"index" json:"category"`
}

func (e *SiteContentEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

func (SiteContentEntry) TableName() string {
	return "site_content"
}
