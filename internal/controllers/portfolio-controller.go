package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/models"
	"github.com/forteraglobal/fortera-api/internal/services"
)

// PortfolioController handles HTTP requests for portfolio projects
type PortfolioController interface {
	// ListProjects retrieves all projects including hidden ones
	ListProjects(c *gin.Context)
	// CreateProject creates a new portfolio project
	CreateProject(c *gin.Context)
	// UpdateProject updates fields of an existing project
	UpdateProject(c *gin.Context)
	// ToggleVisibility flips the visibility flag of a project
	ToggleVisibility(c *gin.Context)
	// DeleteProject deletes a project by its ID
	DeleteProject(c *gin.Context)
}

type portfolioController struct {
	service services.PortfolioService
}

// NewPortfolioController creates a new instance of PortfolioController
func NewPortfolioController(service services.PortfolioService) *portfolioController {
	return &portfolioController{service: service}
}

// ListProjects godoc
// @Summary List portfolio projects
// @Description Get all portfolio projects ordered for display, hidden ones included
// @Tags Portfolio
// @Produce json
// @Success 200 {array} models.PortfolioProject
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/portfolio [get]
func (pc *portfolioController) ListProjects(ctx *gin.Context) {
	projects, err := pc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a portfolio project
// @Description Create a new portfolio project. Client name, industry and description are required.
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param project body models.PortfolioProject true "Project"
// @Success 201 {object} models.PortfolioProject
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/portfolio [post]
func (pc *portfolioController) CreateProject(ctx *gin.Context) {
	var project models.PortfolioProject
	if err := ctx.ShouldBindJSON(&project); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := pc.service.Create(&project); err != nil {
		if errors.Is(err, services.ErrProjectInvalid) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	ctx.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Update a portfolio project
// @Description Update fields of an existing project. Omitted fields keep their values.
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body services.PortfolioUpdate true "Fields to change"
// @Success 200 {object} models.PortfolioProject
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/portfolio/{id} [put]
func (pc *portfolioController) UpdateProject(ctx *gin.Context) {
	id := ctx.Param("id")

	var update services.PortfolioUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := pc.service.Update(id, update)
	if err != nil {
		if errors.Is(err, services.ErrProjectInvalid) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// ToggleVisibility godoc
// @Summary Toggle project visibility
// @Description Flip the visibility flag of a project without touching other fields
// @Tags Portfolio
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.PortfolioProject
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/portfolio/{id}/visibility [patch]
func (pc *portfolioController) ToggleVisibility(ctx *gin.Context) {
	id := ctx.Param("id")
	project, err := pc.service.ToggleVisibility(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a portfolio project
// @Description Delete a project by its ID
// @Tags Portfolio
// @Produce json
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/portfolio/{id} [delete]
func (pc *portfolioController) DeleteProject(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := pc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
