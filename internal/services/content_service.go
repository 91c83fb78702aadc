package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

// ContentService manages editable site content strings, keyed by a
// unique lookup key and grouped by category for the admin editor.
type ContentService interface {
	// List returns all entries ordered by category, then key
	List() ([]models.SiteContentEntry, error)
	// ByCategory returns the entries of a single category
	ByCategory(category string) ([]models.SiteContentEntry, error)
	// ContentMap flattens all entries into a key -> content map for
	// public page rendering
	ContentMap() (map[string]string, error)
	// Upsert writes content for a key. An existing entry keeps its
	// label and category; a new key creates a fresh entry.
	Upsert(key, content string) (*models.SiteContentEntry, error)
}

type contentService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewContentService(db *gorm.DB, store cache.Store) ContentService {
	return &contentService{db: db, cache: store}
}

func (s *contentService) List() ([]models.SiteContentEntry, error) {
	var entries []models.SiteContentEntry
	if err := s.db.Order("category asc, key asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *contentService) ByCategory(category string) ([]models.SiteContentEntry, error) {
	var entries []models.SiteContentEntry
	if err := s.db.Where("category = ?", category).Order("key asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *contentService) ContentMap() (map[string]string, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	contentMap := make(map[string]string, len(entries))
	for _, entry := range entries {
		contentMap[entry.Key] = entry.Content
	}
	return contentMap, nil
}

func (s *contentService) Upsert(key, content string) (*models.SiteContentEntry, error) {
	var entry models.SiteContentEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	switch {
	case err == nil:
		// Content only; label and category are preserved
		if err := s.db.Model(&entry).Update("content", content).Error; err != nil {
			return nil, err
		}
		entry.Content = content
	case err == gorm.ErrRecordNotFound:
		entry = models.SiteContentEntry{Key: key, Content: content, Label: key, Category: "general"}
		if err := s.db.Create(&entry).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(context.Background(), cache.KeySiteContent); err != nil {
			log.WithError(err).Warn("Failed to invalidate site content cache")
		}
	}
	return &entry, nil
}
