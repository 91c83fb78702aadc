package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/models"
)

func TestSubscribeDuplicateIsBenign(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubscriberService(db)

	require.NoError(t, service.Subscribe("reader@example.com"))

	err := service.Subscribe("reader@example.com")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	// Exactly one row for the address, the original one untouched
	var count int64
	db.Model(&models.EmailSubscriber{}).Where("email = ?", "reader@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubscriberDeleteMissingRow(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubscriberService(db)

	err := service.Delete("no-such-id")
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubscriberService(db)

	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	subscribers := []models.EmailSubscriber{
		{Email: "active@example.com", IsActive: true, SubscribedAt: when},
		{Email: "inactive@example.com", IsActive: false, SubscribedAt: when},
	}

	csv := string(service.ExportCSV(subscribers))
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Email,Subscribed Date,Status", lines[0])
	assert.Equal(t, "active@example.com,2025-03-14,Active", lines[1])
	assert.Equal(t, "inactive@example.com,2025-03-14,Inactive", lines[2])

	// Raw comma-delimited rows, never quoted
	assert.NotContains(t, csv, `"`)
}

func TestExportCSVEmptyList(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubscriberService(db)

	csv := string(service.ExportCSV(nil))
	assert.Equal(t, "Email,Subscribed Date,Status\n", csv)
}

func TestExportFilename(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubscriberService(db)

	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "subscribers-2025-03-14.csv", service.ExportFilename(when))
}
