package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	AutoMigrate bool
	JWTSecret   string
	// JWKSURL enables RS256 tokens from the identity provider when set
	JWKSURL     string
	FrontendURL string
	// Extra origins allowed by CORS, comma separated
	CORSAllowedOrigins []string
	LogLevel           string
	// Artifact storage
	StorageDriver   string // "local" or "s3"
	LocalStorageDir string
	PublicBaseURL   string
	S3Provider      string // "aws", "wasabi" or "r2"
	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3Endpoint      string
	S3AccessKeyID   string
	S3SecretKey     string
	S3PublicURL     string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitRenderThreshold int
	// Rendering
	RenderTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBUrl:              getEnv("DATABASE_URL", ""),
		AutoMigrate:        getEnvBool("AUTO_MIGRATE", false),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWKSURL:            getEnv("JWKS_URL", ""),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		// Storage
		StorageDriver:   normalizeDriver(getEnv("STORAGE_DRIVER", "local")),
		LocalStorageDir: getEnv("LOCAL_STORAGE_DIR", "./uploads"),
		PublicBaseURL:   strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		S3Provider:      strings.ToLower(getEnv("S3_PROVIDER", "aws")),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", "resumes"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PublicURL:     strings.TrimRight(getEnv("S3_PUBLIC_URL", ""), "/"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitRenderThreshold: getEnvInt("RATE_LIMIT_RENDER_THRESHOLD", 20), // 20 renders per window
		RenderTimeoutSeconds:     getEnvInt("RENDER_TIMEOUT_SECONDS", 30),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Println("WARNING: JWT_SECRET is missing. Every authenticated request will be rejected.")
	}
	if cfg.StorageDriver == "s3" && cfg.S3Bucket == "" {
		log.Println("WARNING: STORAGE_DRIVER=s3 without S3_BUCKET. PDF uploads will fail.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// AllowedOrigins returns the frontend URL plus any extra CORS origins.
func (c *Config) AllowedOrigins() []string {
	origins := []string{}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return append(origins, c.CORSAllowedOrigins...)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimRight(strings.TrimSpace(p), "/"); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
