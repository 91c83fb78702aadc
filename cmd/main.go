package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/auth"
	"github.com/forteraglobal/fortera-api/internal/cache"
	"github.com/forteraglobal/fortera-api/internal/config"
	"github.com/forteraglobal/fortera-api/internal/controllers"
	"github.com/forteraglobal/fortera-api/internal/database"
	"github.com/forteraglobal/fortera-api/internal/middleware"
	"github.com/forteraglobal/fortera-api/internal/notify"
	"github.com/forteraglobal/fortera-api/internal/services"
)

var (
	db            *gorm.DB
	configuration *config.Config

	rosterService services.RosterService

	authController         *controllers.AuthController
	rosterController       controllers.RosterController
	contactController      controllers.ContactController
	subscriberController   controllers.SubscriberController
	portfolioController    controllers.PortfolioController
	pricingController      controllers.PricingController
	contentController      controllers.ContentController
	socialController       controllers.SocialController
	testimonialController  controllers.TestimonialController
	catalogController      controllers.CatalogController
	statsController        controllers.StatsController
	publicController       controllers.PublicController
	notificationController controllers.NotificationController
	clientController       *controllers.ClientController
	oauthService           *auth.OAuthService
)

// @title Fortera Content API
// @version 1.0
// @description Content administration API for the Fortera Global Group marketing site
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize cache store
	store := setupCache(configuration)
	defer store.Close()

	// Initialize services
	userService := services.NewUserService(db)
	rosterService = services.NewRosterService(db, userService)
	contactService := services.NewContactService(db)
	subscriberService := services.NewSubscriberService(db)
	portfolioService := services.NewPortfolioService(db, store)
	pricingService := services.NewPricingService(db, store)
	contentService := services.NewContentService(db, store)
	socialService := services.NewSocialService(db, store)
	testimonialService := services.NewTestimonialService(db, store)
	catalogService := services.NewCatalogService(db, store)
	clientService := services.NewClientService(db)
	statsService := services.NewStatsService(db)

	dispatcher := notify.NewDispatcher(
		notify.NewResendClient(configuration.ResendAPIKey),
		configuration.NotifyFrom,
		configuration.NotifyAdminEmail,
	)

	// Initialize controllers
	authController = controllers.NewAuthController(userService, rosterService, configuration.JWTSecret)
	rosterController = controllers.NewRosterController(rosterService)
	contactController = controllers.NewContactController(contactService, dispatcher)
	subscriberController = controllers.NewSubscriberController(subscriberService)
	portfolioController = controllers.NewPortfolioController(portfolioService)
	pricingController = controllers.NewPricingController(pricingService)
	contentController = controllers.NewContentController(contentService)
	socialController = controllers.NewSocialController(socialService)
	testimonialController = controllers.NewTestimonialController(testimonialService)
	catalogController = controllers.NewCatalogController(catalogService)
	statsController = controllers.NewStatsController(statsService)
	publicController = controllers.NewPublicController(
		portfolioService, pricingService, testimonialService,
		socialService, catalogService, contentService,
		store, time.Duration(configuration.CacheTTL)*time.Second,
	)
	notificationController = controllers.NewNotificationController(dispatcher)
	clientController = controllers.NewClientController(clientService)
	oauthService = auth.NewOAuthService(db, configuration.JWTSecret)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %v", conf)
	return conf
}

// setupDatabase initializes the database connection, runs migrations and
// seeds the fixed content rows plus the bootstrap admin account
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedContent(db))

	if conf.AdminEmail != "" && conf.AdminPassword != "" {
		checkPanicErr(database.SeedAdmin(db, conf.AdminEmail, conf.AdminPassword))
	} else {
		log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping bootstrap admin")
	}
	return db
}

// setupCache builds the configured cache store
func setupCache(conf *config.Config) cache.Store {
	store, err := cache.New(conf.CacheBackend, conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
	checkPanicErr(err)
	log.Infof("Cache backend: %s", conf.CacheBackend)
	return store
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Browser clients call the public endpoints cross-origin from the
	// marketing site
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// OAuth2 endpoints for machine clients
	router.POST("/oauth/token", oauthService.HandleToken)
	router.GET("/oauth/authorize", oauthService.HandleAuthorize)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/portfolio", publicController.GetPortfolio)
			publicApi.GET("/pricing", publicController.GetPricing)
			publicApi.GET("/testimonials", publicController.GetTestimonials)
			publicApi.GET("/social-links", publicController.GetSocialLinks)
			publicApi.GET("/services", publicController.GetServices)
			publicApi.GET("/subsidiaries", publicController.GetSubsidiaries)
			publicApi.GET("/content", publicController.GetContent)
			publicApi.POST("/contact", contactController.Submit)
			publicApi.POST("/subscribers", subscriberController.Subscribe)
		}

		// Notification dispatch for callers wanting synchronous delivery
		v1.POST("/notifications/contact", notificationController.SendContactNotification)

		// Authentication routes
		authApi := v1.Group("/auth")
		{
			authApi.POST("/login", authController.Login)
			authApi.GET("/me", middleware.JWTAuth([]byte(configuration.JWTSecret)), authController.Me)
		}

		// Admin routes require a valid token and a current admin role
		// grant; the grant is re-checked against the database on every
		// request
		adminApi := v1.Group("/admin")
		adminApi.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		adminApi.Use(middleware.RequireAdmin(rosterService))
		{
			adminApi.GET("/stats", statsController.GetStats)
			adminApi.PUT("/password", authController.UpdatePassword)

			adminApi.GET("/admins", rosterController.ListAdmins)
			adminApi.POST("/admins", rosterController.AddAdmin)
			adminApi.DELETE("/admins/:id", rosterController.RemoveAdmin)

			adminApi.GET("/contact-submissions", contactController.ListSubmissions)
			adminApi.PATCH("/contact-submissions/:id/read", contactController.MarkRead)
			adminApi.DELETE("/contact-submissions/:id", contactController.DeleteSubmission)

			adminApi.GET("/subscribers", subscriberController.ListSubscribers)
			adminApi.GET("/subscribers/export", subscriberController.ExportSubscribers)
			adminApi.DELETE("/subscribers/:id", subscriberController.DeleteSubscriber)

			adminApi.GET("/portfolio", portfolioController.ListProjects)
			adminApi.POST("/portfolio", portfolioController.CreateProject)
			adminApi.PUT("/portfolio/:id", portfolioController.UpdateProject)
			adminApi.PATCH("/portfolio/:id/visibility", portfolioController.ToggleVisibility)
			adminApi.DELETE("/portfolio/:id", portfolioController.DeleteProject)

			adminApi.GET("/pricing", pricingController.ListTiers)
			adminApi.PUT("/pricing/:id", pricingController.UpdateTier)

			adminApi.GET("/content", contentController.ListContent)
			adminApi.PUT("/content", contentController.UpsertContent)

			adminApi.GET("/social-links", socialController.ListLinks)
			adminApi.POST("/social-links", socialController.AddLink)
			adminApi.PUT("/social-links/:id", socialController.UpdateLink)
			adminApi.PATCH("/social-links/:id/visibility", socialController.ToggleVisibility)
			adminApi.DELETE("/social-links/:id", socialController.DeleteLink)

			adminApi.GET("/testimonials", testimonialController.ListTestimonials)
			adminApi.PATCH("/testimonials/:id/approval", testimonialController.ToggleApproval)
			adminApi.DELETE("/testimonials/:id", testimonialController.DeleteTestimonial)

			adminApi.GET("/services", catalogController.ListServices)
			adminApi.PUT("/services/:id", catalogController.UpdateService)
			adminApi.GET("/subsidiaries", catalogController.ListSubsidiaries)
			adminApi.PUT("/subsidiaries/:id", catalogController.UpdateSubsidiary)

			adminApi.GET("/clients", clientController.ListClients)
			adminApi.POST("/clients", clientController.CreateClient)
			adminApi.DELETE("/clients/:id", clientController.DeleteClient)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "fortera-api",
	})
}
