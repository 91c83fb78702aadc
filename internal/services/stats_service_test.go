package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/models"
)

func TestStatsOverviewCounts(t *testing.T) {
	db := setupTestDB(t)
	stats := NewStatsService(db)

	for _, s := range []models.ContactSubmission{
		{Name: "A", Email: "a@example.com", BusinessType: models.ContactTypeStartup},
		{Name: "B", Email: "b@example.com", BusinessType: models.ContactTypeStartup},
		{Name: "C", Email: "c@example.com", BusinessType: models.ContactTypeStartup, IsRead: true},
	} {
		row := s
		require.NoError(t, db.Create(&row).Error)
	}
	for _, email := range []string{"x@example.com", "y@example.com"} {
		require.NoError(t, db.Create(&models.EmailSubscriber{Email: email}).Error)
	}

	overview, err := stats.Overview()
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.Contacts)
	assert.Equal(t, int64(2), overview.UnreadContacts)
	assert.Equal(t, int64(2), overview.Subscribers)
}

func TestStatsOverviewEmptyTables(t *testing.T) {
	db := setupTestDB(t)
	stats := NewStatsService(db)

	overview, err := stats.Overview()
	require.NoError(t, err)
	assert.Zero(t, overview.Contacts)
	assert.Zero(t, overview.UnreadContacts)
	assert.Zero(t, overview.Subscribers)
}
