package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/logger"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", c.GetString(response.RequestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
			attrs = append(attrs, "user_id", userID)
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Log.Error("request.complete", attrs...)
		case status >= http.StatusBadRequest:
			logger.Log.Warn("request.complete", attrs...)
		default:
			logger.Log.Info("request.complete", attrs...)
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered",
			"request_id", c.GetString(response.RequestIDKey),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		c.Abort()
	})
}
