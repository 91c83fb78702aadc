package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// RosterController handles HTTP requests for the administrator roster
type RosterController interface {
	// ListAdmins retrieves every admin role grant with identity details
	ListAdmins(c *gin.Context)
	// AddAdmin creates an account and grants it the admin role
	AddAdmin(c *gin.Context)
	// RemoveAdmin revokes a grant, never the caller's own
	RemoveAdmin(c *gin.Context)
}

type rosterController struct {
	service services.RosterService
}

// NewRosterController creates a new instance of RosterController
func NewRosterController(service services.RosterService) *rosterController {
	return &rosterController{service: service}
}

// ListAdmins godoc
// @Summary List administrators
// @Description Get all admin role grants joined with account details
// @Tags Admins
// @Produce json
// @Success 200 {array} services.AdminEntry
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/admins [get]
func (rc *rosterController) ListAdmins(ctx *gin.Context) {
	admins, err := rc.service.ListAdmins()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve admins"})
		return
	}
	ctx.JSON(http.StatusOK, admins)
}

// AddAdmin godoc
// @Summary Add an administrator
// @Description Create a new account and grant it the admin role
// @Tags Admins
// @Accept json
// @Produce json
// @Param admin body object{email=string,password=string} true "New admin credentials"
// @Success 201 {object} services.AdminEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/admins [post]
func (rc *rosterController) AddAdmin(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := rc.service.AddAdmin(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountCreate):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "account_creation_failed"})
		case errors.Is(err, services.ErrRoleAssign):
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "role_assignment_failed"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add admin"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// RemoveAdmin godoc
// @Summary Remove an administrator
// @Description Revoke an admin role grant. Removing your own access is rejected.
// @Tags Admins
// @Produce json
// @Param id path string true "Target user ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/admins/{id} [delete]
func (rc *rosterController) RemoveAdmin(ctx *gin.Context) {
	targetID := ctx.Param("id")
	callerID := ctx.GetString("userID")

	if err := rc.service.RemoveAdmin(callerID, targetID); err != nil {
		if errors.Is(err, services.ErrSelfRemoval) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "cannot_remove_self"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove admin"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
