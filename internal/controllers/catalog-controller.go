package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// CatalogController handles HTTP requests for the service and
// subsidiary listings shown on the marketing pages
type CatalogController interface {
	// ListServices retrieves all service entries including hidden ones
	ListServices(c *gin.Context)
	// UpdateService updates fields of a service entry
	UpdateService(c *gin.Context)
	// ListSubsidiaries retrieves all subsidiary entries including hidden ones
	ListSubsidiaries(c *gin.Context)
	// UpdateSubsidiary updates fields of a subsidiary entry
	UpdateSubsidiary(c *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) *catalogController {
	return &catalogController{service: service}
}

// ListServices godoc
// @Summary List service offerings
// @Description Get all service entries in display order, hidden ones included
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/services [get]
func (cc *catalogController) ListServices(ctx *gin.Context) {
	entries, err := cc.service.ListServices()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// UpdateService godoc
// @Summary Update a service offering
// @Description Update fields of a service entry. Omitted fields keep their values.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body services.CatalogUpdate true "Fields to change"
// @Success 200 {object} models.Service
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/services/{id} [put]
func (cc *catalogController) UpdateService(ctx *gin.Context) {
	id := ctx.Param("id")

	var update services.CatalogUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := cc.service.UpdateService(id, update)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// ListSubsidiaries godoc
// @Summary List subsidiaries
// @Description Get all subsidiary entries in display order, hidden ones included
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Subsidiary
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/subsidiaries [get]
func (cc *catalogController) ListSubsidiaries(ctx *gin.Context) {
	entries, err := cc.service.ListSubsidiaries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subsidiaries"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// UpdateSubsidiary godoc
// @Summary Update a subsidiary
// @Description Update fields of a subsidiary entry. Omitted fields keep their values.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Subsidiary ID"
// @Param subsidiary body services.CatalogUpdate true "Fields to change"
// @Success 200 {object} models.Subsidiary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/subsidiaries/{id} [put]
func (cc *catalogController) UpdateSubsidiary(ctx *gin.Context) {
	id := ctx.Param("id")

	var update services.CatalogUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := cc.service.UpdateSubsidiary(id, update)
	if err != nil {
		if errors.Is(err, services.ErrSubsidiaryInvalid) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "subsidiary_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, entry)
}
