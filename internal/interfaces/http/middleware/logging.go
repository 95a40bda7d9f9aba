package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/shared/logger"
)

// RequestLogger logs one line per request, leveled by response status.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	accessLog := log.Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if query != "" {
			path = path + "?" + query
		}

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			accessLog.Errorw("request failed", fields...)
		case status >= 400:
			accessLog.Warnw("request rejected", fields...)
		default:
			accessLog.Infow("request handled", fields...)
		}
	}
}
