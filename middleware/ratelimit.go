package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/util"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	// Rate limiting defaults
	defaultRateLimit  = 5                // 5 attempts
	defaultRateWindow = 15 * time.Minute // per 15 minutes
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// localLimiters backs the limiter when Redis is not configured. Entries
// expire after a window of inactivity.
var localLimiters = cache.New(defaultRateWindow, 2*defaultRateWindow)

// RateLimiter creates a rate limiting middleware
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit == 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window == 0 {
		cfg.Window = defaultRateWindow
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		endpoint := c.Request.URL.Path
		key := rateLimitKey(clientIP, endpoint)

		allowed, err := checkRateLimit(c.Request.Context(), key, cfg.Limit, cfg.Window)
		if err != nil {
			// Fail open when Redis is unreachable.
			util.LogSecurityEvent(util.SecurityEvent{
				EventType: util.EventSuspiciousActivity,
				IP:        clientIP,
				Message:   fmt.Sprintf("Rate limit check failed: %v", err),
			})
			c.Next()
			return
		}

		if !allowed {
			util.LogRateLimitExceeded("", clientIP, endpoint)
			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: "Too many requests. Please try again later.",
				Err: fmt.Errorf("rate limit exceeded"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func rateLimitKey(clientIP, endpoint string) string {
	return fmt.Sprintf("ratelimit:%s:%s", endpoint, clientIP)
}

// checkRateLimit returns true if the request is within limits.
func checkRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return localLimiter(key, limit, window).Allow(), nil
	}

	pipe := rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return incrCmd.Val() <= int64(limit), nil
}

// localLimiter returns the token bucket for key: limit tokens refilled evenly
// over window.
func localLimiter(key string, limit int, window time.Duration) *rate.Limiter {
	if v, ok := localLimiters.Get(key); ok {
		localLimiters.Set(key, v, window)
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)
	if err := localLimiters.Add(key, l, window); err != nil {
		if v, ok := localLimiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return l
}

// ResetRateLimit resets the rate limit for a client and endpoint.
func ResetRateLimit(clientIP, endpoint string) error {
	key := rateLimitKey(clientIP, endpoint)
	localLimiters.Delete(key)

	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	return rdb.Del(context.Background(), key).Err()
}
