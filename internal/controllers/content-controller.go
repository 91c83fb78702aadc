package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forteraglobal/fortera-api/internal/services"
)

// ContentController handles HTTP requests for editable site content
type ContentController interface {
	// ListContent retrieves all content entries grouped by category
	ListContent(c *gin.Context)
	// UpsertContent writes a content value by key
	UpsertContent(c *gin.Context)
}

type contentController struct {
	service services.ContentService
}

// NewContentController creates a new instance of ContentController
func NewContentController(service services.ContentService) *contentController {
	return &contentController{service: service}
}

// ListContent godoc
// @Summary List site content entries
// @Description Get all editable text entries ordered by category and key
// @Tags Content
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.SiteContentEntry
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/content [get]
func (cc *contentController) ListContent(ctx *gin.Context) {
	category := ctx.Query("category")

	var entries interface{}
	var err error
	if category != "" {
		entries, err = cc.service.ByCategory(category)
	} else {
		entries, err = cc.service.List()
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve content"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// UpsertContent godoc
// @Summary Write a content entry
// @Description Update the text for a key, or create the entry if the key is new
// @Tags Content
// @Accept json
// @Produce json
// @Param entry body object{key=string,content=string} true "Key and new content"
// @Success 200 {object} models.SiteContentEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/content [put]
func (cc *contentController) UpsertContent(ctx *gin.Context) {
	var req struct {
		Key     string `json:"key" binding:"required"`
		Content string `json:"content"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := cc.service.Upsert(req.Key, req.Content)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
		return
	}
	ctx.JSON(http.StatusOK, entry)
}
