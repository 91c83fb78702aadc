package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// StatsController handles HTTP requests for the admin dashboard counters
type StatsController interface {
	// GetStats retrieves the dashboard overview counts
	GetStats(c *gin.Context)
}

type statsController struct {
	service services.StatsService
}

// NewStatsController creates a new instance of StatsController
func NewStatsController(service services.StatsService) *statsController {
	return &statsController{service: service}
}

// GetStats godoc
// @Summary Dashboard overview counts
// @Description Get total contact submissions, unread submissions and subscriber count
// @Tags Stats
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/stats [get]
func (sc *statsController) GetStats(ctx *gin.Context) {
	stats, err := sc.service.Overview()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
