package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// SocialController handles HTTP requests for social media links
type SocialController interface {
	// ListLinks retrieves all links including hidden ones
	ListLinks(c *gin.Context)
	// AddLink appends a placeholder link at the end of the display order
	AddLink(c *gin.Context)
	// UpdateLink updates fields of an existing link
	UpdateLink(c *gin.Context)
	// ToggleVisibility flips the visibility flag of a link
	ToggleVisibility(c *gin.Context)
	// DeleteLink deletes a link by its ID
	DeleteLink(c *gin.Context)
}

type socialController struct {
	service services.SocialService
}

// NewSocialController creates a new instance of SocialController
func NewSocialController(service services.SocialService) *socialController {
	return &socialController{service: service}
}

// ListLinks godoc
// @Summary List social links
// @Description Get all social media links in display order, hidden ones included
// @Tags Social
// @Produce json
// @Success 200 {array} models.SocialLink
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/social-links [get]
func (sc *socialController) ListLinks(ctx *gin.Context) {
	links, err := sc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve links"})
		return
	}
	ctx.JSON(http.StatusOK, links)
}

// AddLink godoc
// @Summary Add a social link
// @Description Create a placeholder link at the end of the display order for subsequent editing
// @Tags Social
// @Produce json
// @Success 201 {object} models.SocialLink
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/social-links [post]
func (sc *socialController) AddLink(ctx *gin.Context) {
	link, err := sc.service.Add()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add link"})
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// UpdateLink godoc
// @Summary Update a social link
// @Description Update fields of an existing link. Omitted fields keep their values.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param link body services.SocialUpdate true "Fields to change"
// @Success 200 {object} models.SocialLink
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/social-links/{id} [put]
func (sc *socialController) UpdateLink(ctx *gin.Context) {
	id := ctx.Param("id")

	var update services.SocialUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	link, err := sc.service.Update(id, update)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "link_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, link)
}

// ToggleVisibility godoc
// @Summary Toggle link visibility
// @Description Flip the visibility flag of a link without touching other fields
// @Tags Social
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} models.SocialLink
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/social-links/{id}/visibility [patch]
func (sc *socialController) ToggleVisibility(ctx *gin.Context) {
	id := ctx.Param("id")
	link, err := sc.service.ToggleVisibility(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "link_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, link)
}

// DeleteLink godoc
// @Summary Delete a social link
// @Description Delete a link by its ID
// @Tags Social
// @Produce json
// @Param id path string true "Link ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/social-links/{id} [delete]
func (sc *socialController) DeleteLink(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := sc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "link_not_found"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
