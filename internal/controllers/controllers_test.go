package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/models"
	"github.com/forteraglobal/fortera-api/internal/notify"
	"github.com/forteraglobal/fortera-api/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.ContactSubmission{},
		&models.EmailSubscriber{},
		&models.PortfolioProject{},
		&models.PricingTier{},
		&models.SiteContentEntry{},
		&models.SocialLink{},
		&models.Testimonial{},
		&models.Service{},
		&models.Subsidiary{},
	)
	require.NoError(t, err)

	return db
}

// recordingSender captures dispatched emails instead of calling the
// provider
type recordingSender struct {
	mu   sync.Mutex
	sent []notify.Email
	fail bool
}

func (r *recordingSender) Send(ctx context.Context, email notify.Email) (map[string]interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, assert.AnError
	}
	r.sent = append(r.sent, email)
	return map[string]interface{}{"id": "email-123"}, nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestContactSubmitEndpoint(t *testing.T) {
	db := setupTestDB(t)
	sender := &recordingSender{}
	dispatcher := notify.NewDispatcher(sender, "hello@fortera.test", "webadmin@fortera.test")
	controller := NewContactController(services.NewContactService(db), dispatcher)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", controller.Submit)

	req := jsonRequest("POST", "/contact", map[string]string{
		"name":         "Jordan",
		"email":        "jordan@example.com",
		"businessType": "startup",
		"goals":        "Launch a site",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.ContactSubmission{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// Both notification emails go out in the background
	assert.Eventually(t, func() bool { return sender.count() == 2 }, time.Second, 10*time.Millisecond)
}

func TestContactSubmitRejectsBadPayload(t *testing.T) {
	db := setupTestDB(t)
	dispatcher := notify.NewDispatcher(&recordingSender{}, "hello@fortera.test", "webadmin@fortera.test")
	controller := NewContactController(services.NewContactService(db), dispatcher)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", controller.Submit)

	// Missing required email
	req := jsonRequest("POST", "/contact", map[string]string{"name": "Jordan", "businessType": "startup"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown business type
	req = jsonRequest("POST", "/contact", map[string]string{
		"name":         "Jordan",
		"email":        "jordan@example.com",
		"businessType": "enterprise",
	})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.ContactSubmission{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubscribeEndpointDuplicateStillSucceeds(t *testing.T) {
	db := setupTestDB(t)
	controller := NewSubscriberController(services.NewSubscriberService(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/subscribe", controller.Subscribe)

	for i := 0; i < 2; i++ {
		req := jsonRequest("POST", "/subscribe", map[string]string{"email": "reader@example.com"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	db.Model(&models.EmailSubscriber{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubscriberExportHeaders(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewSubscriberService(db)
	require.NoError(t, service.Subscribe("reader@example.com"))
	controller := NewSubscriberController(service)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export", controller.ExportSubscribers)

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=subscribers-")
	assert.Contains(t, w.Body.String(), "Email,Subscribed Date,Status")
	assert.Contains(t, w.Body.String(), "reader@example.com")
}

func TestNotificationEndpointContract(t *testing.T) {
	sender := &recordingSender{}
	dispatcher := notify.NewDispatcher(sender, "hello@fortera.test", "webadmin@fortera.test")
	controller := NewNotificationController(dispatcher)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/notifications/contact", controller.SendContactNotification)

	req := jsonRequest("POST", "/notifications/contact", map[string]string{
		"name":         "Jordan",
		"email":        "jordan@example.com",
		"businessType": "idea",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Contains(t, response, "adminEmail")
	assert.Contains(t, response, "userEmail")
}

func TestNotificationEndpointProviderFailure(t *testing.T) {
	sender := &recordingSender{fail: true}
	dispatcher := notify.NewDispatcher(sender, "hello@fortera.test", "webadmin@fortera.test")
	controller := NewNotificationController(dispatcher)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/notifications/contact", controller.SendContactNotification)

	req := jsonRequest("POST", "/notifications/contact", map[string]string{
		"name":         "Jordan",
		"email":        "jordan@example.com",
		"businessType": "idea",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestPublicEndpointsServeCachedContent(t *testing.T) {
	db := setupTestDB(t)
	store := cache.NewMemory()

	portfolio := services.NewPortfolioService(db, store)
	pricing := services.NewPricingService(db, store)
	testimonials := services.NewTestimonialService(db, store)
	social := services.NewSocialService(db, store)
	catalog := services.NewCatalogService(db, store)
	content := services.NewContentService(db, store)

	require.NoError(t, portfolio.Create(&models.PortfolioProject{
		ClientName:  "Acme",
		Industry:    "Tech",
		Description: "Rebuild",
	}))
	hidden := &models.PortfolioProject{
		ClientName:  "Hidden",
		Industry:    "Tech",
		Description: "Not public",
	}
	require.NoError(t, portfolio.Create(hidden))
	_, err := portfolio.ToggleVisibility(hidden.ID)
	require.NoError(t, err)

	controller := NewPublicController(portfolio, pricing, testimonials, social, catalog, content, store, time.Minute)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/portfolio", controller.GetPortfolio)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/portfolio", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.PortfolioProject
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Acme", projects[0].ClientName)

	// Second request is served from the now-filled cache
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/portfolio", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// A mutation invalidates the cached payload
	_, err = portfolio.ToggleVisibility(hidden.ID)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/portfolio", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)
}

func TestRosterEndpointsRejectSelfRemoval(t *testing.T) {
	db := setupTestDB(t)
	users := services.NewUserService(db)
	roster := services.NewRosterService(db, users)
	controller := NewRosterController(roster)

	entry, err := roster.AddAdmin("admin@example.com", "password123")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/admins/:id", func(c *gin.Context) {
		c.Set("userID", entry.UserID)
		controller.RemoveAdmin(c)
	})

	req := httptest.NewRequest("DELETE", "/admins/"+entry.UserID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot_remove_self")
	assert.True(t, roster.IsAdmin(entry.UserID))
}

func TestAddAdminEndpointRejectsShortPassword(t *testing.T) {
	db := setupTestDB(t)
	users := services.NewUserService(db)
	roster := services.NewRosterService(db, users)
	controller := NewRosterController(roster)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admins", controller.AddAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/admins", gin.H{
		"email":    "new@example.com",
		"password": "abc123",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Neither identity nor grant was created
	var userCount, roleCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.UserRole{}).Count(&roleCount)
	assert.Equal(t, int64(0), userCount)
	assert.Equal(t, int64(0), roleCount)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/admins", gin.H{
		"email":    "new@example.com",
		"password": "abcd1234",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPasswordChangeEndpoint(t *testing.T) {
	db := setupTestDB(t)
	users := services.NewUserService(db)
	roster := services.NewRosterService(db, users)
	controller := NewAuthController(users, roster, "test-secret")

	entry, err := roster.AddAdmin("admin@example.com", "password123")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/password", func(c *gin.Context) {
		c.Set("userID", entry.UserID)
		controller.UpdatePassword(c)
	})

	// Confirmation mismatch
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/password", gin.H{
		"current_password": "password123",
		"new_password":     "newpassword123",
		"confirm_password": "different123",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "passwords_do_not_match")

	// New password below the minimum length
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/password", gin.H{
		"current_password": "password123",
		"new_password":     "short12",
		"confirm_password": "short12",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong current password
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/password", gin.H{
		"current_password": "wrongpassword",
		"new_password":     "newpassword123",
		"confirm_password": "newpassword123",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_current_password")

	// Valid rotation
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/password", gin.H{
		"current_password": "password123",
		"new_password":     "newpassword123",
		"confirm_password": "newpassword123",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	user, err := users.GetUserByID(entry.UserID)
	require.NoError(t, err)
	assert.False(t, user.CheckPassword("password123"))
	assert.True(t, user.CheckPassword("newpassword123"))
}

func TestStatsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	controller := NewStatsController(services.NewStatsService(db))

	require.NoError(t, db.Create(&models.ContactSubmission{
		Name: "A", Email: "a@example.com", BusinessType: models.ContactTypeStartup,
	}).Error)
	require.NoError(t, db.Create(&models.EmailSubscriber{Email: "x@example.com"}).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/stats", controller.GetStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats services.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Contacts)
	assert.Equal(t, int64(1), stats.UnreadContacts)
	assert.Equal(t, int64(1), stats.Subscribers)
}
