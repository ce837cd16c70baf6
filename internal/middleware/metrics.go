package middleware

import (
	"time"

	"github.com/SscSPs/digital_khata_client/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.FullPath() == "/metrics" {
			return
		}
		metrics.RecordShellRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
