package handlers

import (
	"github.com/SscSPs/marketplace_client/cmd/docs"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/middleware"
	"github.com/SscSPs/marketplace_client/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// searchLimiter may be nil to leave the search proxy unlimited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	searchLimiter *limiter.Limiter,
) {
	r.GET("/health", getHealth(services.ExchangeRate))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, searchLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	searchLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	registerCurrencyRoutes(v1, service.Currency)
	registerExchangeRateRoutes(v1, service.ExchangeRate)

	var searchMiddleware []gin.HandlerFunc
	if searchLimiter != nil {
		searchMiddleware = append(searchMiddleware, middleware.RateLimit(searchLimiter))
	}
	registerSearchRoutes(v1, service.Search, searchMiddleware...)
	registerSearchProviderRoutes(v1, service.Search, middleware.AuthMiddleware(cfg.JWTSecret))
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
