package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.ContactSubmission{},
		&models.EmailSubscriber{},
		&models.PortfolioProject{},
		&models.PricingTier{},
		&models.SiteContentEntry{},
		&models.SocialLink{},
		&models.Testimonial{},
		&models.Service{},
		&models.Subsidiary{},
	)
	require.NoError(t, err)

	return db
}
