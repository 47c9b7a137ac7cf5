package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lifemate-backend/internal/delivery/http/response"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches a request ID to the context and the response header.
// A client-supplied id is kept when it is short enough to be sane.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
