package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/featherworks/aviary_backend/cmd/docs"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/middleware"
	"github.com/featherworks/aviary_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Photo files are written by the upload pipeline outside this service;
	// serve them read-only.
	r.Static("/uploads", cfg.UploadDir)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitPeriod)
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter))

	// Delegate route registration to specific handlers, passing required services
	registerAnimalRoutes(v1, service.Animal, service.Timeline, service.Photo)
	registerPairingRoutes(v1, service.Pairing, service.Animal)
	RegisterSalesRoutes(v1, service.Sales, service.Photo)
	registerFollowUpRoutes(v1, service.FollowUp)
	registerIncubationRoutes(v1, service.Incubation)
	registerStatisticsRoutes(v1, service.Statistics)
	RegisterShareRoutes(v1, service.Share, cfg.ShareBaseURL)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
