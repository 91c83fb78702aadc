package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// PricingController handles HTTP requests for pricing tiers
type PricingController interface {
	// ListTiers retrieves all pricing tiers including hidden ones
	ListTiers(c *gin.Context)
	// UpdateTier updates editable fields of a tier
	UpdateTier(c *gin.Context)
}

type pricingController struct {
	service services.PricingService
}

// NewPricingController creates a new instance of PricingController
func NewPricingController(service services.PricingService) *pricingController {
	return &pricingController{service: service}
}

// ListTiers godoc
// @Summary List pricing tiers
// @Description Get all pricing tiers in display order, hidden ones included
// @Tags Pricing
// @Produce json
// @Success 200 {array} models.PricingTier
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/pricing [get]
func (pc *pricingController) ListTiers(ctx *gin.Context) {
	tiers, err := pc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pricing tiers"})
		return
	}
	ctx.JSON(http.StatusOK, tiers)
}

// UpdateTier godoc
// @Summary Update a pricing tier
// @Description Update the editable fields of a pricing tier. The tier key and feature list are fixed.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Tier ID"
// @Param tier body services.PricingUpdate true "Fields to change"
// @Success 200 {object} models.PricingTier
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/pricing/{id} [put]
func (pc *pricingController) UpdateTier(ctx *gin.Context) {
	id := ctx.Param("id")

	var update services.PricingUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tier, err := pc.service.Update(id, update)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "tier_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, tier)
}
