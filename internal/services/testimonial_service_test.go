package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

func TestTestimonialsStartUnapproved(t *testing.T) {
	db := setupTestDB(t)
	service := NewTestimonialService(db, cache.NewMemory())

	testimonial := models.Testimonial{
		ClientName: "Sam Rivera",
		Company:    "Rivera & Co",
		Content:    "Outstanding partner.",
	}
	require.NoError(t, db.Create(&testimonial).Error)

	all, err := service.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	approved, err := service.ListApproved()
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestTestimonialToggleApprovalFlipsOnlyFlag(t *testing.T) {
	db := setupTestDB(t)
	service := NewTestimonialService(db, cache.NewMemory())

	testimonial := models.Testimonial{
		ClientName:   "Sam Rivera",
		Company:      "Rivera & Co",
		Content:      "Outstanding partner.",
		DisplayOrder: 5,
	}
	require.NoError(t, db.Create(&testimonial).Error)

	toggled, err := service.ToggleApproval(testimonial.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsApproved)

	var stored models.Testimonial
	require.NoError(t, db.Where("id = ?", testimonial.ID).First(&stored).Error)
	assert.True(t, stored.IsApproved)
	assert.Equal(t, "Sam Rivera", stored.ClientName)
	assert.Equal(t, 5, stored.DisplayOrder)

	approved, err := service.ListApproved()
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	// Second toggle takes it back off the public page
	toggled, err = service.ToggleApproval(testimonial.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsApproved)
}

func TestTestimonialDeleteMissingRow(t *testing.T) {
	db := setupTestDB(t)
	service := NewTestimonialService(db, cache.NewMemory())

	assert.Error(t, service.Delete("no-such-id"))
}
