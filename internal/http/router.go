package http

import (
	nethttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/talhanuhuymaz/Renart-Case/internal/domain/dto"
	"github.com/talhanuhuymaz/Renart-Case/internal/metrics"
	"github.com/talhanuhuymaz/Renart-Case/internal/middleware"
)

// NewRouter creates and configures the Gin router for the catalog service.
//
// CORS is open to all origins: the catalog is public, read-only data with
// no credentials or mutation behind it.
func NewRouter(handler *Handler, healthHandler *HealthHandler) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router)
	registerInfrastructureRoutes(router, healthHandler)
	registerCatalogRoutes(router, handler)

	router.NoRoute(func(c *gin.Context) {
		status := nethttp.StatusNotFound
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), "Route not found").
			WithRequestID(middleware.GetRequestID(c)))
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine) {
	corsConfig := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          24 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health and metrics routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerCatalogRoutes registers the catalog API routes.
func registerCatalogRoutes(router *gin.Engine, handler *Handler) {
	if handler == nil {
		return
	}
	router.GET("/", handler.Info)
	router.GET("/products", handler.Products)
}
