package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// TestimonialController handles HTTP requests for client testimonials
type TestimonialController interface {
	// ListTestimonials retrieves all testimonials, newest first
	ListTestimonials(c *gin.Context)
	// ToggleApproval flips the approval flag of a testimonial
	ToggleApproval(c *gin.Context)
	// DeleteTestimonial deletes a testimonial by its ID
	DeleteTestimonial(c *gin.Context)
}

type testimonialController struct {
	service services.TestimonialService
}

// NewTestimonialController creates a new instance of TestimonialController
func NewTestimonialController(service services.TestimonialService) *testimonialController {
	return &testimonialController{service: service}
}

// ListTestimonials godoc
// @Summary List testimonials
// @Description Get all testimonials newest first, unapproved ones included
// @Tags Testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/testimonials [get]
func (tc *testimonialController) ListTestimonials(ctx *gin.Context) {
	testimonials, err := tc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonials"})
		return
	}
	ctx.JSON(http.StatusOK, testimonials)
}

// ToggleApproval godoc
// @Summary Toggle testimonial approval
// @Description Flip the approval flag of a testimonial without touching other fields
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/testimonials/{id}/approval [patch]
func (tc *testimonialController) ToggleApproval(ctx *gin.Context) {
	id := ctx.Param("id")
	testimonial, err := tc.service.ToggleApproval(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "testimonial_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Description Delete a testimonial by its ID
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/testimonials/{id} [delete]
func (tc *testimonialController) DeleteTestimonial(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := tc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "testimonial_not_found"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
