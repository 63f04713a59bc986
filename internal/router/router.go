package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "flyerscan/docs" // registers the OpenAPI document
	"flyerscan/internal/config"
	"flyerscan/internal/handler"
	"flyerscan/internal/metrics"
	"flyerscan/internal/middleware"
)

// Handlers bundles the HTTP handlers mounted by Setup.
type Handlers struct {
	Flyer  *handler.FlyerHandler
	Venue  *handler.VenueHandler
	Health *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
// gatherer may be nil when metrics are disabled.
func Setup(cfg *config.Config, h Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(m))

	r.GET("/health", h.Health.Liveness)

	r.POST("/analyze-flyer", h.Flyer.Analyze)
	r.POST("/search-venues", h.Venue.Search)

	if cfg.Metrics.Enabled && gatherer != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
