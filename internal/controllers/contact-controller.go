package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/models"
	"github.com/forteraglobal/fortera-api/internal/notify"
	"github.com/forteraglobal/fortera-api/internal/services"
)

// ContactController handles HTTP requests for contact-form submissions
type ContactController interface {
	// Submit accepts a public contact-form submission
	Submit(c *gin.Context)
	// ListSubmissions retrieves all submissions, newest first
	ListSubmissions(c *gin.Context)
	// MarkRead flags a submission as read
	MarkRead(c *gin.Context)
	// DeleteSubmission deletes a submission by its ID
	DeleteSubmission(c *gin.Context)
}

type contactController struct {
	service    services.ContactService
	dispatcher *notify.Dispatcher
}

// NewContactController creates a new instance of ContactController
func NewContactController(service services.ContactService, dispatcher *notify.Dispatcher) *contactController {
	return &contactController{service: service, dispatcher: dispatcher}
}

// Submit godoc
// @Summary Submit a contact inquiry
// @Description Record a contact-form submission and notify by email in the background
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body notify.ContactNotification true "Submission"
// @Success 201 {object} models.ContactSubmission
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/contact [post]
func (cc *contactController) Submit(ctx *gin.Context) {
	var req notify.ContactNotification
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission := &models.ContactSubmission{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		BusinessType: req.BusinessType,
		Goals:        req.Goals,
		BudgetRange:  req.BudgetRange,
		Timeline:     req.Timeline,
	}

	if err := cc.service.Submit(submission); err != nil {
		if errors.Is(err, services.ErrInvalidBusinessType) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid_business_type"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record submission"})
		return
	}

	// Email notification must never block or fail the submission
	cc.dispatcher.DispatchAsync(req)

	ctx.JSON(http.StatusCreated, submission)
}

// ListSubmissions godoc
// @Summary List contact submissions
// @Description Get all contact-form submissions, newest first
// @Tags Contact
// @Produce json
// @Success 200 {array} models.ContactSubmission
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/contact-submissions [get]
func (cc *contactController) ListSubmissions(ctx *gin.Context) {
	submissions, err := cc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve submissions"})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// MarkRead godoc
// @Summary Mark a submission as read
// @Description Flag a contact submission as read. No other field changes.
// @Tags Contact
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/contact-submissions/{id}/read [patch]
func (cc *contactController) MarkRead(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := cc.service.MarkRead(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "submission_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "marked_read"})
}

// DeleteSubmission godoc
// @Summary Delete a submission
// @Description Delete a contact-form submission by its ID
// @Tags Contact
// @Produce json
// @Param id path string true "Submission ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/contact-submissions/{id} [delete]
func (cc *contactController) DeleteSubmission(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := cc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "submission_not_found"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
