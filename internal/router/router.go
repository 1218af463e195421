package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deedcheck/internal/config"
	"deedcheck/internal/handler"
	"deedcheck/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware. A nil
// metricsHandler leaves the metrics endpoint unmounted.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	checkH *handler.CheckHandler,
	healthH *handler.HealthHandler,
	metricsHandler http.Handler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if metricsHandler != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(metricsHandler))
	}

	v1 := r.Group("/api/v1")

	checks := v1.Group("/checks")
	checks.POST("/posthumous", checkH.Posthumous)
	checks.POST("/registration", checkH.Registration)

	deeds := v1.Group("/deeds")
	deeds.POST("/validate", checkH.ValidateDeed)

	rules := v1.Group("/rules")
	rules.GET("/registration-types", checkH.RegistrationTypes)

	return r
}
