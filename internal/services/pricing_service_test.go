package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
)

func seedTier(t *testing.T, service *pricingService) models.PricingTier {
	t.Helper()
	tier := models.PricingTier{
		Tier:         models.TierGrowth,
		Name:         "Growth",
		Description:  "For scaling businesses",
		Price:        "$2,500",
		Features:     []string{"Everything in Foundation", "SEO strategy"},
		DisplayOrder: 2,
	}
	require.NoError(t, service.db.Create(&tier).Error)
	return tier
}

func TestPricingUpdateEditableFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewPricingService(db, cache.NewMemory()).(*pricingService)
	tier := seedTier(t, service)

	price := "$3,000"
	audience := "Growing teams"
	updated, err := service.Update(tier.ID, PricingUpdate{Price: &price, TargetAudience: &audience})
	require.NoError(t, err)

	assert.Equal(t, "$3,000", updated.Price)
	assert.Equal(t, "Growing teams", updated.TargetAudience)

	// Tier key and features survive every update
	assert.Equal(t, models.TierGrowth, updated.Tier)
	assert.Equal(t, tier.Features, updated.Features)
}

func TestPricingListVisibleFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewPricingService(db, cache.NewMemory()).(*pricingService)
	tier := seedTier(t, service)

	hidden := false
	_, err := service.Update(tier.ID, PricingUpdate{IsVisible: &hidden})
	require.NoError(t, err)

	all, err := service.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	visible, err := service.ListVisible()
	require.NoError(t, err)
	assert.Empty(t, visible)
}
