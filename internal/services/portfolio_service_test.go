package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

func validProject() *models.PortfolioProject {
	return &models.PortfolioProject{
		ClientName:  "Acme Corp",
		Industry:    "Manufacturing",
		Description: "Full site rebuild",
	}
}

func TestPortfolioCreateRequiresCoreFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	cases := []models.PortfolioProject{
		{Industry: "Tech", Description: "desc"},
		{ClientName: "Acme", Description: "desc"},
		{ClientName: "Acme", Industry: "Tech"},
		{ClientName: "   ", Industry: "Tech", Description: "desc"},
	}
	for _, invalid := range cases {
		p := invalid
		err := service.Create(&p)
		assert.ErrorIs(t, err, ErrProjectInvalid)
	}

	// Nothing was written
	var count int64
	db.Model(&models.PortfolioProject{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPortfolioCreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	first := validProject()
	require.NoError(t, service.Create(first))
	assert.Equal(t, models.ProjectStatusActive, first.Status)
	assert.Equal(t, 1, first.DisplayOrder)

	second := validProject()
	second.ClientName = "Beta Ltd"
	require.NoError(t, service.Create(second))
	assert.Equal(t, 2, second.DisplayOrder)
}

func TestPortfolioCreateRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	p := validProject()
	p.Status = "archived"
	assert.ErrorIs(t, service.Create(p), ErrProjectInvalid)
}

func TestPortfolioPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	p := validProject()
	require.NoError(t, service.Create(p))

	newIndustry := "Retail"
	updated, err := service.Update(p.ID, PortfolioUpdate{Industry: &newIndustry})
	require.NoError(t, err)

	assert.Equal(t, "Retail", updated.Industry)
	assert.Equal(t, p.ClientName, updated.ClientName)
	assert.Equal(t, p.Description, updated.Description)
}

func TestPortfolioUpdateCannotBlankRequiredField(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	p := validProject()
	require.NoError(t, service.Create(p))

	empty := ""
	_, err := service.Update(p.ID, PortfolioUpdate{ClientName: &empty})
	assert.ErrorIs(t, err, ErrProjectInvalid)
}

func TestPortfolioToggleVisibilityFlipsOnlyFlag(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	p := validProject()
	require.NoError(t, service.Create(p))

	var before models.PortfolioProject
	require.NoError(t, db.Where("id = ?", p.ID).First(&before).Error)
	require.True(t, *before.IsVisible)

	toggled, err := service.ToggleVisibility(p.ID)
	require.NoError(t, err)
	assert.False(t, *toggled.IsVisible)

	var after models.PortfolioProject
	require.NoError(t, db.Where("id = ?", p.ID).First(&after).Error)
	assert.False(t, *after.IsVisible)
	assert.Equal(t, before.ClientName, after.ClientName)
	assert.Equal(t, before.DisplayOrder, after.DisplayOrder)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)

	// Toggling back restores the original state
	toggled, err = service.ToggleVisibility(p.ID)
	require.NoError(t, err)
	assert.True(t, *toggled.IsVisible)
}

func TestPortfolioCreateVisibilityDefaultsAndExplicitFalse(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	shown := validProject()
	require.NoError(t, service.Create(shown))

	hidden := validProject()
	hidden.ClientName = "Quiet Co"
	visible := false
	hidden.IsVisible = &visible
	require.NoError(t, service.Create(hidden))

	var stored models.PortfolioProject
	require.NoError(t, db.Where("id = ?", hidden.ID).First(&stored).Error)
	require.NotNil(t, stored.IsVisible)
	assert.False(t, *stored.IsVisible)

	listed, err := service.ListVisible()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, shown.ID, listed[0].ID)
	assert.True(t, *listed[0].IsVisible)
}

func TestPortfolioListVisibleFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewPortfolioService(db, cache.NewMemory())

	shown := validProject()
	require.NoError(t, service.Create(shown))
	hidden := validProject()
	hidden.ClientName = "Hidden Inc"
	require.NoError(t, service.Create(hidden))
	_, err := service.ToggleVisibility(hidden.ID)
	require.NoError(t, err)

	all, err := service.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := service.ListVisible()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, shown.ID, visible[0].ID)
}
