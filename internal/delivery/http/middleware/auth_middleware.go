package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/apperror"
	"lifemate-backend/pkg/auth"
	"lifemate-backend/pkg/logger"
)

// AuthMiddleware verifies the session token and loads the user so the stored
// role, not a token claim, drives authorization.
func AuthMiddleware(verifier *auth.Verifier, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
			// 2. Try to get token from Cookie
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Log.Warn("token validation failed",
				"request_id", c.GetString(response.RequestIDKey), "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code >= http.StatusInternalServerError {
				_ = c.Error(err)
				c.Abort()
				return
			}
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		email := claims.Email
		if email == "" {
			email = user.Email
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRole rejects authenticated users whose role is not one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
		c.Abort()
	}
}
