package response

import (
	"github.com/gin-gonic/gin"

	"lifemate-backend/pkg/apperror"
)

// RequestIDKey is where the request id middleware stores the id on the gin context.
const RequestIDKey = "RequestID"

// Response standardizes the API JSON response
type Response struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message"`
	Data      interface{}           `json:"data,omitempty"`
	Errors    []apperror.FieldError `json:"errors,omitempty"`
	RequestID string                `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response, optionally listing offending fields
func Error(c *gin.Context, code int, message string, fields []apperror.FieldError) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    fields,
		RequestID: requestID(c),
	})
}
