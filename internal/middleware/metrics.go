package middleware

import (
	"time"

	"github.com/genx-realty/console/api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics creates a middleware that records request counts and latency.
// Routes are labeled by their registered pattern, not the raw URL, so
// /api/v1/master-data/:id stays one series regardless of the id.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
