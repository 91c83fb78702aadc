package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/services"
)

// PublicController serves the read-only marketing endpoints. Responses
// are cached; admin mutations invalidate the affected keys.
type PublicController interface {
	// GetPortfolio retrieves visible portfolio projects
	GetPortfolio(c *gin.Context)
	// GetPricing retrieves visible pricing tiers
	GetPricing(c *gin.Context)
	// GetTestimonials retrieves approved testimonials
	GetTestimonials(c *gin.Context)
	// GetSocialLinks retrieves visible social links
	GetSocialLinks(c *gin.Context)
	// GetServices retrieves visible service offerings
	GetServices(c *gin.Context)
	// GetSubsidiaries retrieves visible subsidiaries
	GetSubsidiaries(c *gin.Context)
	// GetContent retrieves the full site content key/value map
	GetContent(c *gin.Context)
}

type publicController struct {
	portfolio    services.PortfolioService
	pricing      services.PricingService
	testimonials services.TestimonialService
	social       services.SocialService
	catalog      services.CatalogService
	content      services.ContentService
	store        cache.Store
	ttl          time.Duration
}

// NewPublicController creates a new instance of PublicController
func NewPublicController(
	portfolio services.PortfolioService,
	pricing services.PricingService,
	testimonials services.TestimonialService,
	social services.SocialService,
	catalog services.CatalogService,
	content services.ContentService,
	store cache.Store,
	ttl time.Duration,
) *publicController {
	return &publicController{
		portfolio:    portfolio,
		pricing:      pricing,
		testimonials: testimonials,
		social:       social,
		catalog:      catalog,
		content:      content,
		store:        store,
		ttl:          ttl,
	}
}

// serveCached answers from the cache when possible, otherwise loads
// from the database and fills the cache. Cache failures degrade to a
// direct read, never an error response.
func (pc *publicController) serveCached(ctx *gin.Context, key string, load func() (interface{}, error)) {
	if cached, err := pc.store.Get(ctx.Request.Context(), key); err == nil {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	value, err := load()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve content"})
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode content"})
		return
	}

	if err := pc.store.Set(context.Background(), key, payload, pc.ttl); err != nil {
		log.WithError(err).WithField("key", key).Warn("Cache write failed")
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetPortfolio godoc
// @Summary Public portfolio
// @Description Get visible portfolio projects in display order
// @Tags Public
// @Produce json
// @Success 200 {array} models.PortfolioProject
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/portfolio [get]
func (pc *publicController) GetPortfolio(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeyPortfolio, func() (interface{}, error) {
		return pc.portfolio.ListVisible()
	})
}

// GetPricing godoc
// @Summary Public pricing
// @Description Get visible pricing tiers in display order
// @Tags Public
// @Produce json
// @Success 200 {array} models.PricingTier
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/pricing [get]
func (pc *publicController) GetPricing(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeyPricing, func() (interface{}, error) {
		return pc.pricing.ListVisible()
	})
}

// GetTestimonials godoc
// @Summary Public testimonials
// @Description Get approved testimonials in display order
// @Tags Public
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/testimonials [get]
func (pc *publicController) GetTestimonials(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeyTestimonials, func() (interface{}, error) {
		return pc.testimonials.ListApproved()
	})
}

// GetSocialLinks godoc
// @Summary Public social links
// @Description Get visible social media links in display order
// @Tags Public
// @Produce json
// @Success 200 {array} models.SocialLink
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/social-links [get]
func (pc *publicController) GetSocialLinks(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeySocialLinks, func() (interface{}, error) {
		return pc.social.ListVisible()
	})
}

// GetServices godoc
// @Summary Public services
// @Description Get visible service offerings in display order
// @Tags Public
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/services [get]
func (pc *publicController) GetServices(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeyServices, func() (interface{}, error) {
		return pc.catalog.ListVisibleServices()
	})
}

// GetSubsidiaries godoc
// @Summary Public subsidiaries
// @Description Get visible subsidiaries in display order
// @Tags Public
// @Produce json
// @Success 200 {array} models.Subsidiary
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/subsidiaries [get]
func (pc *publicController) GetSubsidiaries(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeySubsidiaries, func() (interface{}, error) {
		return pc.catalog.ListVisibleSubsidiaries()
	})
}

// GetContent godoc
// @Summary Public site content
// @Description Get all editable site text as a key/value map
// @Tags Public
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/content [get]
func (pc *publicController) GetContent(ctx *gin.Context) {
	pc.serveCached(ctx, cache.KeySiteContent, func() (interface{}, error) {
		return pc.content.ContentMap()
	})
}
