package services

import (
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

// DashboardStats are the counters shown on the admin dashboard landing
// page
type DashboardStats struct {
	Contacts       int64 `json:"contacts"`
	UnreadContacts int64 `json:"unread_contacts"`
	Subscribers    int64 `json:"subscribers"`
}

// StatsService aggregates counts across the content tables
type StatsService interface {
	Overview() (*DashboardStats, error)
}

type statsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

func (s *statsService) Overview() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.ContactSubmission{}).Count(&stats.Contacts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ContactSubmission{}).Where("is_read = ?", false).Count(&stats.UnreadContacts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.EmailSubscriber{}).Count(&stats.Subscribers).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
