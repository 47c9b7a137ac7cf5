package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lifemate-backend/config"
	"lifemate-backend/internal/delivery/http/middleware"
	"lifemate-backend/pkg/auth"
)

type stubHealth struct {
	healthy bool
}

func (s stubHealth) Check(ctx context.Context) (map[string]string, bool) {
	if s.healthy {
		return map[string]string{"status": "ok"}, true
	}
	return map[string]string{"status": "degraded", "database": "down"}, false
}

func testRouter(healthy bool) *gin.Engine {
	return NewRouter(RouterDeps{
		AuthUC:        stubAuthUsecase{},
		ResumeUC:      new(MockResumeUsecase),
		HealthUC:      stubHealth{healthy: healthy},
		TokenVerifier: auth.NewVerifier("secret", nil),
		RateLimiter:   middleware.NewRateLimiter(nil),
		Config:        &config.Config{FrontendURL: "http://localhost:3000", RateLimitRenderThreshold: 5, RateLimitWindowSeconds: 60},
	})
}

func TestRouter_Health(t *testing.T) {
	assert.Equal(t, http.StatusOK, do(testRouter(true), http.MethodGet, "/v1/health", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(testRouter(false), http.MethodGet, "/v1/health", "").Code)
}

func TestRouter_ResumeRoutesRequireAuth(t *testing.T) {
	r := testRouter(true)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/v1/resume/list", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/v1/auth/me", "").Code)
}
