package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Rules   RulesConfig
	Metrics MetricsConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsDevelopment reports whether the server runs in the development environment.
func (s *ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RulesConfig holds defaults applied when a request leaves them out.
type RulesConfig struct {
	GracePeriodDays int `mapstructure:"grace_period_days"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the DEEDCHECK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEEDCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Rule defaults
	v.SetDefault("rules.grace_period_days", 7)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	envBindings := map[string]string{
		"server.port":             "DEEDCHECK_SERVER_PORT",
		"server.read_timeout":     "DEEDCHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "DEEDCHECK_SERVER_WRITE_TIMEOUT",
		"server.environment":      "DEEDCHECK_SERVER_ENVIRONMENT",
		"log.level":               "DEEDCHECK_LOG_LEVEL",
		"log.format":              "DEEDCHECK_LOG_FORMAT",
		"rules.grace_period_days": "DEEDCHECK_RULES_GRACE_PERIOD_DAYS",
		"metrics.enabled":         "DEEDCHECK_METRICS_ENABLED",
		"metrics.path":            "DEEDCHECK_METRICS_PATH",
		"cors.allowed_origins":    "DEEDCHECK_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT; honour it unless DEEDCHECK_SERVER_PORT is explicit.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DEEDCHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	readTimeout, err := cast.ToDurationE(v.Get("server.read_timeout"))
	if err != nil {
		return nil, fmt.Errorf("server.read_timeout must be a duration: %w", err)
	}
	writeTimeout, err := cast.ToDurationE(v.Get("server.write_timeout"))
	if err != nil {
		return nil, fmt.Errorf("server.write_timeout must be a duration: %w", err)
	}
	gracePeriodDays, err := cast.ToIntE(v.Get("rules.grace_period_days"))
	if err != nil {
		return nil, fmt.Errorf("rules.grace_period_days must be an integer: %w", err)
	}
	metricsEnabled, err := cast.ToBoolE(v.Get("metrics.enabled"))
	if err != nil {
		return nil, fmt.Errorf("metrics.enabled must be a boolean: %w", err)
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  strings.ToLower(v.GetString("log.level")),
		Format: v.GetString("log.format"),
	}
	cfg.Rules = RulesConfig{
		GracePeriodDays: gracePeriodDays,
	}
	cfg.Metrics = MetricsConfig{
		Enabled: metricsEnabled,
		Path:    v.GetString("metrics.path"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	if cfg.Rules.GracePeriodDays < 0 {
		return nil, fmt.Errorf("rules.grace_period_days must be >= 0, got %d", cfg.Rules.GracePeriodDays)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "console" {
		return nil, fmt.Errorf("log.format must be json or console, got %q", cfg.Log.Format)
	}

	return cfg, nil
}
