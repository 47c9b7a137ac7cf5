package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/pkg/apperror"
	"lifemate-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"request_id", c.GetString(response.RequestIDKey),
					"path", c.Request.URL.Path,
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("unhandled error",
			"request_id", c.GetString(response.RequestIDKey),
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
