package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mkulima/livestock-market/internal/config"
)

// RateLimiter throttles login attempts using Redis
type RateLimiter interface {
	// Allow reports whether another attempt is permitted for key
	Allow(ctx context.Context, key string) (bool, error)

	// Close closes the Redis connection
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewRateLimiter creates a new Redis-based rate limiter
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisRateLimiter{
		client: client,
		limit:  cfg.LoginRateLimit,
		window: time.Duration(cfg.LoginRateWindow) * time.Second,
		logger: logger,
	}, nil
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("rate:login:%s", key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to count attempt", "error", err, "key", key)
		// On Redis errors, allow the request but log it
		return true, err
	}

	// Arm the TTL only on the first attempt of the window; re-arming on
	// every attempt would keep a steady trickle of logins counted forever
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			r.logger.Error("❌ [RateLimiter] Failed to set window expiry", "error", err, "key", key)
		}
	}

	return count <= r.limit, nil
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// NewRateLimiterForTesting wraps an existing client, for tests
func NewRateLimiterForTesting(client *redis.Client, limit int64, window time.Duration, logger *slog.Logger) RateLimiter {
	return &redisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// noOpRateLimiter allows everything; used when Redis is unavailable
type noOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a limiter that never throttles
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	return &noOpRateLimiter{logger: logger}
}

func (n *noOpRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func (n *noOpRateLimiter) Close() error {
	return nil
}

// LoginRateLimit throttles repeated login attempts per client IP
func LoginRateLimit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, _ := limiter.Allow(c.Request.Context(), c.ClientIP())
		if !allowed {
			logger.Warn("⚠️ [RateLimiter] Too many login attempts", "ip", c.ClientIP())
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
