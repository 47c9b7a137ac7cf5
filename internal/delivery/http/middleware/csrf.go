package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lifemate-backend/internal/delivery/http/response"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the name of the header that must contain the CSRF token
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern for requests that
// authenticate with the auth_token cookie. Requests carrying an Authorization
// header are not exposed to cross-site forgery and pass through.
//
// The frontend reads the csrf_token cookie and echoes it in X-CSRF-Token on
// every POST, PUT, PATCH and DELETE.
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Next()
			return
		}

		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",           // Domain (empty = current domain)
				secureCookie, // Secure (HTTPS only)
				false,        // HttpOnly = false so JS can read it
			)
			csrfCookie = newToken
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		// Without a session cookie there is nothing to forge; auth rejects the request.
		if session, err := c.Cookie("auth_token"); err != nil || session == "" {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)
		if headerToken == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(headerToken), []byte(csrfCookie)) != 1 {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
