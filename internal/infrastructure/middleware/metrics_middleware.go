package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"metahub/internal/infrastructure/monitoring"
)

// MetricsMiddleware records request counts and latency per route. The
// templated route path is used so path parameters do not explode the
// label set.
func MetricsMiddleware(collector *monitoring.PrometheusCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
