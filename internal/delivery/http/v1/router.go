package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lifemate-backend/config"
	"lifemate-backend/internal/delivery/http/middleware"
	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
	"lifemate-backend/internal/usecase"
	"lifemate-backend/pkg/auth"
	"lifemate-backend/pkg/storage"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ResumeUC      domain.ResumeUsecase
	HealthUC      usecase.HealthUsecase
	TokenVerifier *auth.Verifier
	RateLimiter   *middleware.RateLimiter
	Config        *config.Config
	// FilesDir is served under /files when artifacts are stored on local disk.
	FilesDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins())) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	if deps.FilesDir != "" {
		r.Static(storage.LocalPathPrefix, deps.FilesDir)
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Success:   false,
				Message:   "System degraded",
				Data:      status,
				RequestID: c.GetString(response.RequestIDKey),
			})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var renderLimit gin.HandlerFunc
	if deps.RateLimiter != nil {
		renderLimit = deps.RateLimiter.Middleware(middleware.RenderRateLimitConfig(
			deps.Config.RateLimitRenderThreshold,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		))
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.CSRFMiddleware(strings.HasPrefix(deps.Config.PublicBaseURL, "https://")))
	protected.Use(middleware.AuthMiddleware(deps.TokenVerifier, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)

		jobSeekers := protected.Group("")
		jobSeekers.Use(middleware.RequireRole(domain.RoleJobSeeker))
		NewResumeHandler(jobSeekers, deps.ResumeUC, renderLimit)
	}

	return r
}
