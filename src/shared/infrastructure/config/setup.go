package config

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/shared/infrastructure/middleware"
)

// SharedConfig holds settings for the shared middleware stack
type SharedConfig struct {
	EnableMetrics  bool
	AllowedOrigins []string
}

// DefaultSharedConfig returns the default configuration
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableMetrics: true,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
	}
}

// GetEnv returns an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// SetupSharedMiddleware wires the shared middlewares
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	router.Use(middleware.RequestID())

	if config.EnableMetrics {
		middleware.InitMetrics()
		router.Use(middleware.PrometheusMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))
}
