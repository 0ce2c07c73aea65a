package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"PatientBilling/cache"
	"PatientBilling/config"
	"PatientBilling/controllers"
	"PatientBilling/handlers"
	"PatientBilling/middlewares"
	"PatientBilling/repositories"
	"PatientBilling/services"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, redisClient *redis.Client) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(db, cache)
	invoiceRepo := repositories.NewInvoiceRepository(db, cache, redisClient)

	patientService := services.NewPatientService(patientRepo, invoiceRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, patientRepo)

	patientHandler := handlers.NewPatientHandler(patientService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	// Register routes
	controllers.SetupBillingRoutes(router, patientHandler, invoiceHandler)
	controllers.SetupRootRoute(router)

	return router
}
