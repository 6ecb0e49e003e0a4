package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/petcarehq/petcare-backend/cmd/docs"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/middleware"
	"github.com/petcarehq/petcare-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs *services.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Auth endpoints stay outside the JWT guard.
	public := r.Group("/api/v1")
	registerAuthRoutes(public, svcs.User, svcs.GoogleOAuth, cfg)

	setupAPIV1Routes(r, cfg, svcs)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, svcs *services.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerLocationRoutes(v1, svcs.Location)
	registerClientRoutes(v1, svcs.Client, svcs.Pet)
	registerPetRoutes(v1, svcs.Pet)
	registerCatalogRoutes(v1, svcs.Catalog)
	registerRateRoutes(v1, svcs.Rate)
	registerReservationRoutes(v1, svcs.Reservation)
	registerFinanceRoutes(v1, svcs.Finance)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
