package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/logger"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key extractor; the default is the client IP
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// RenderRateLimitConfig limits PDF generation and download per authenticated user.
func RenderRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:render:",
		KeyFunc: func(c *gin.Context) string {
			if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
				return userID
			}
			return c.ClientIP()
		},
	}
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter counts requests in Redis and falls back to process memory when
// Redis is not configured or fails.
type RateLimiter struct {
	client *goredis.Client

	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
}

// NewRateLimiter accepts a nil client, in which case only the in-memory store is used.
func NewRateLimiter(client *goredis.Client) *RateLimiter {
	return &RateLimiter{client: client, entries: map[string]*rateLimitEntry{}}
}

// Middleware creates a rate limiting middleware with the given config
func (l *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time
		var err error

		if l.client != nil {
			count, resetAt, err = l.checkRedis(c.Request.Context(), fullKey, config)
			if err != nil {
				logger.Log.Warn("rate limit redis error",
					"request_id", c.GetString(response.RequestIDKey), "error", err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = l.checkInMemory(fullKey, config, now)
			}
		} else {
			count, resetAt = l.checkInMemory(fullKey, config, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit triggered",
				"request_id", c.GetString(response.RequestIDKey),
				"key", fullKey,
				"path", c.FullPath(),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRedis checks rate limit using Redis with atomic Lua script
func (l *RateLimiter) checkRedis(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := l.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// checkInMemory checks rate limit using the in-memory store, pruning expired keys
// at most once per window.
func (l *RateLimiter) checkInMemory(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.nextSweep) {
		for k, e := range l.entries {
			if now.After(e.resetAt) {
				delete(l.entries, k)
			}
		}
		l.nextSweep = now.Add(config.Window)
	}

	entry, ok := l.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(config.Window)}
		l.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt
}
