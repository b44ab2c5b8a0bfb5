package middleware

import (
	"strconv"
	"time"

	"studyrecs/internal/observability"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests and records their latency by route.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		m.InflightInc()
		defer m.InflightDec()
		start := time.Now()
		c.Next()

		m.ObserveRequest(c.Request.Method, routeOf(c), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
