package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"lifemate-backend/config"
	_ "lifemate-backend/docs" // Important for Swagger
	"lifemate-backend/internal/delivery/http/middleware"
	v1 "lifemate-backend/internal/delivery/http/v1"
	"lifemate-backend/internal/domain"
	"lifemate-backend/internal/renderer"
	"lifemate-backend/internal/repository/postgres"
	"lifemate-backend/internal/usecase"
	"lifemate-backend/pkg/auth"
	"lifemate-backend/pkg/database"
	"lifemate-backend/pkg/logger"
	"lifemate-backend/pkg/redis"
	"lifemate-backend/pkg/storage"
	"lifemate-backend/pkg/validation"
)

// @title           LifeMate Resume API
// @version         1.0
// @description     Resume builder for LifeMate job seekers: structured resumes rendered to PDF.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting lifemate backend", "port", cfg.Port, "storage_driver", cfg.StorageDriver)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Database migrations applied")
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.NewClient(ctx, redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	})
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Artifact Store
	store, filesDir, err := newArtifactStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to configure artifact storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	// 7. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	resumeUC := usecase.NewResumeUsecase(
		resumeRepo,
		jobSeekerRepo,
		renderer.New(),
		store,
		validate,
		time.Duration(cfg.RenderTimeoutSeconds)*time.Second,
	)

	pingers := map[string]usecase.Pinger{"database": dbPool}
	if redisClient != nil {
		pingers["redis"] = usecase.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	healthUC := usecase.NewHealthUsecase(pingers)

	// 8. Setup Token Verifier (JWKS is optional)
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}
	verifier := auth.NewVerifier(cfg.JWTSecret, jwksProvider)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ResumeUC:      resumeUC,
		HealthUC:      healthUC,
		TokenVerifier: verifier,
		RateLimiter:   middleware.NewRateLimiter(redisClient),
		Config:        cfg,
		FilesDir:      filesDir,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newArtifactStore returns the configured store and, for the local driver,
// the directory the router should serve.
func newArtifactStore(ctx context.Context, cfg *config.Config) (domain.ArtifactStore, string, error) {
	if cfg.StorageDriver != "s3" {
		local := storage.NewLocalStore(cfg.LocalStorageDir, cfg.PublicBaseURL)
		return local, local.Dir(), nil
	}

	s3Cfg := storage.S3Config{
		Provider:        storage.S3Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Prefix:          cfg.S3Prefix,
		Endpoint:        cfg.S3Endpoint,
		PublicURL:       cfg.S3PublicURL,
	}
	client, err := storage.NewS3Client(ctx, s3Cfg)
	if err != nil {
		return nil, "", err
	}
	logger.Log.Info("S3 artifact storage configured", "provider", s3Cfg.Provider, "bucket", s3Cfg.Bucket)
	return storage.NewS3Store(client, s3Cfg), "", nil
}
