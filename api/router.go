package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kedai-ramen/site-backend/internal/platform/config"
	"github.com/kedai-ramen/site-backend/internal/platform/health"
	"github.com/kedai-ramen/site-backend/internal/platform/logging"
	"github.com/kedai-ramen/site-backend/internal/platform/metrics"
	"github.com/kedai-ramen/site-backend/internal/platform/web"
	"github.com/kedai-ramen/site-backend/internal/settings"
)

// Deps are the constructed collaborators the routes are wired to.
type Deps struct {
	Logger   *zap.Logger
	Store    settings.Store
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Checkers []health.Checker
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg config.ServerConfig, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(web.RequestID())
	r.Use(logging.GinMiddleware(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.GinMiddleware())
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", web.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupRoutes(r, cfg, deps)
	return r
}

// SetupRoutes registers every route of the service.
func SetupRoutes(router *gin.Engine, cfg config.ServerConfig, deps Deps) {
	health.NewHandler(deps.Logger, deps.Checkers...).RegisterRoutes(router)
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	api := router.Group("/api")
	{
		resolver := settings.NewResolver(deps.Store, deps.Logger, deps.Metrics)
		settings.NewHandler(resolver).RegisterRoutes(api)

		if cfg.AdminToken != "" {
			settings.NewAdminHandler(deps.Store, deps.Logger).RegisterRoutes(api, cfg.AdminToken)
		} else {
			deps.Logger.Info("admin settings API disabled: server.adminToken is empty")
		}
	}
}
