package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig holds the API module configuration (health and version)
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig returns the default configuration
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registers the health check endpoints
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(c *gin.Context) {
		dbStatus := "not_configured"
		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err != nil {
				dbStatus = "down"
			} else {
				dbStatus = "up"
			}
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":   "ok",
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
