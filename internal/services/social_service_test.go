package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

func TestSocialAddAppendsAfterHighestOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, cache.NewMemory())

	// Existing orders with a gap
	require.NoError(t, db.Create(&models.SocialLink{Platform: "LinkedIn", URL: "https://linkedin.com/x", DisplayOrder: 1}).Error)
	require.NoError(t, db.Create(&models.SocialLink{Platform: "Instagram", URL: "https://instagram.com/x", DisplayOrder: 3}).Error)

	link, err := service.Add()
	require.NoError(t, err)
	assert.Equal(t, 4, link.DisplayOrder)
	assert.Equal(t, "New Platform", link.Platform)
	assert.Equal(t, "https://", link.URL)
	assert.True(t, link.IsVisible)
}

func TestSocialAddOnEmptyTable(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, cache.NewMemory())

	link, err := service.Add()
	require.NoError(t, err)
	assert.Equal(t, 1, link.DisplayOrder)
}

func TestSocialUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, cache.NewMemory())

	link, err := service.Add()
	require.NoError(t, err)

	platform := "YouTube"
	url := "https://youtube.com/@fortera"
	updated, err := service.Update(link.ID, SocialUpdate{Platform: &platform, URL: &url})
	require.NoError(t, err)

	assert.Equal(t, "YouTube", updated.Platform)
	assert.Equal(t, "https://youtube.com/@fortera", updated.URL)
	assert.Equal(t, link.DisplayOrder, updated.DisplayOrder)
}

func TestSocialToggleVisibility(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, cache.NewMemory())

	link, err := service.Add()
	require.NoError(t, err)
	require.True(t, link.IsVisible)

	toggled, err := service.ToggleVisibility(link.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsVisible)

	visible, err := service.ListVisible()
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestSocialDeleteMissingRow(t *testing.T) {
	db := setupTestDB(t)
	service := NewSocialService(db, cache.NewMemory())

	assert.Error(t, service.Delete("no-such-id"))
}
