package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// SubscriberController handles HTTP requests for the newsletter list
type SubscriberController interface {
	// Subscribe adds an email address to the list
	Subscribe(c *gin.Context)
	// ListSubscribers retrieves all subscribers, newest first
	ListSubscribers(c *gin.Context)
	// DeleteSubscriber removes a subscriber by its ID
	DeleteSubscriber(c *gin.Context)
	// ExportSubscribers downloads the list as a CSV attachment
	ExportSubscribers(c *gin.Context)
}

type subscriberController struct {
	service services.SubscriberService
}

// NewSubscriberController creates a new instance of SubscriberController
func NewSubscriberController(service services.SubscriberService) *subscriberController {
	return &subscriberController{service: service}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Add an email address to the subscriber list. Re-subscribing an existing address succeeds without creating a duplicate.
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param subscriber body object{email=string} true "Email address"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/subscribers [post]
func (sc *subscriberController) Subscribe(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.service.Subscribe(req.Email); err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			// Duplicate signups are a benign outcome
			ctx.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}

// ListSubscribers godoc
// @Summary List subscribers
// @Description Get all newsletter subscribers, newest first
// @Tags Subscribers
// @Produce json
// @Success 200 {array} models.EmailSubscriber
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/subscribers [get]
func (sc *subscriberController) ListSubscribers(ctx *gin.Context) {
	subscribers, err := sc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscribers"})
		return
	}
	ctx.JSON(http.StatusOK, subscribers)
}

// DeleteSubscriber godoc
// @Summary Delete a subscriber
// @Description Remove a subscriber from the list by its ID
// @Tags Subscribers
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/subscribers/{id} [delete]
func (sc *subscriberController) DeleteSubscriber(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := sc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "subscriber_not_found"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ExportSubscribers godoc
// @Summary Export subscribers as CSV
// @Description Download the full subscriber list as a dated CSV file
// @Tags Subscribers
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/subscribers/export [get]
func (sc *subscriberController) ExportSubscribers(ctx *gin.Context) {
	subscribers, err := sc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscribers"})
		return
	}

	csv := sc.service.ExportCSV(subscribers)
	filename := sc.service.ExportFilename(time.Now())

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "text/csv", csv)
}
