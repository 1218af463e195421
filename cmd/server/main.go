package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"deedcheck/internal/config"
	"deedcheck/internal/handler"
	"deedcheck/internal/logger"
	"deedcheck/internal/metrics"
	"deedcheck/internal/router"
	"deedcheck/internal/service"
	"deedcheck/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize metrics
	var m *metrics.Metrics
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	// Initialize validation engine and services
	engine := validator.NewEngine(validator.NewDefaultRegistry())
	checkSvc := service.NewCheckService(engine, cfg.Rules.GracePeriodDays, m, zlog)

	// Initialize handlers
	checkH := handler.NewCheckHandler(checkSvc, zlog)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, zlog, checkH, healthH, metricsHandler)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	zlog.Info("server starting",
		zap.String("addr", cfg.Server.Port),
		zap.String("environment", cfg.Server.Environment),
		zap.Int("default_grace_period_days", cfg.Rules.GracePeriodDays),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
