package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/forteraglobal/fortera-api/internal/notify"
)

// NotificationController exposes the contact notification dispatch as
// its own endpoint for callers that want synchronous delivery.
type NotificationController interface {
	// SendContactNotification sends both contact-form emails and returns
	// the provider responses
	SendContactNotification(c *gin.Context)
}

type notificationController struct {
	dispatcher *notify.Dispatcher
}

// NewNotificationController creates a new instance of NotificationController
func NewNotificationController(dispatcher *notify.Dispatcher) *notificationController {
	return &notificationController{dispatcher: dispatcher}
}

// SendContactNotification godoc
// @Summary Send contact notification emails
// @Description Send the admin alert and the submitter acknowledgment for a contact inquiry
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body notify.ContactNotification true "Inquiry details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/notifications/contact [post]
func (nc *notificationController) SendContactNotification(ctx *gin.Context) {
	var req notify.ContactNotification
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := nc.dispatcher.Dispatch(ctx.Request.Context(), req)
	if err != nil {
		log.WithFields(log.Fields{
			"email": req.Email,
			"error": err.Error(),
		}).Error("Contact notification dispatch failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"adminEmail": result.AdminEmail,
		"userEmail":  result.UserEmail,
	})
}
