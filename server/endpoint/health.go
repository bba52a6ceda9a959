package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/hofkit/observability"
	"github.com/kbukum/hofkit/version"
)

// Health returns a handler that reports service health including the
// status of each checker. A down component answers 503.
func Health(serviceName string, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := observability.NewServiceHealth(serviceName, version.Version)
		for _, checker := range checkers {
			health.AddComponent(checker.CheckHealth(c.Request.Context()))
		}

		httpStatus := http.StatusOK
		if health.Status == observability.HealthStatusDown {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     health.Status,
			"service":    health.Service,
			"version":    health.Version,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": health.Components,
		})
	}
}
