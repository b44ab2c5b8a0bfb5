package middleware

import (
	"time"

	"studyrecs/internal/logger"

	"github.com/gin-gonic/gin"
)

const LoggerKey = "logger"

// RequestLogger stores a logger carrying the request id on the context and
// writes one line per request once the handlers are done.
func RequestLogger(base *logger.Logger) gin.HandlerFunc {
	if base == nil {
		base = logger.NewNop()
	}
	return func(c *gin.Context) {
		log := base.With("request_id", RequestID(c))
		c.Set(LoggerKey, log)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", routeOf(c),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if status >= 500 {
			log.Error("request", fields...)
		} else if status >= 400 {
			log.Warn("request", fields...)
		} else {
			log.Info("request", fields...)
		}
	}
}

// Logger returns the request logger set by RequestLogger, or fallback when
// the middleware did not run.
func Logger(c *gin.Context, fallback *logger.Logger) *logger.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if log, ok := v.(*logger.Logger); ok {
			return log
		}
	}
	return fallback
}

// routeOf prefers the registered pattern so ids do not explode label sets.
func routeOf(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
