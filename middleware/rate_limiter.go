package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/config"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Counter counts hits on a key within a fixed window.
type Counter interface {
	// Hit increments key and returns the new count and the time left in the window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type RedisCounter struct {
	client redis.Cmdable
}

func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}

// RateLimiter allows cfg.Requests per cfg.Window for each client IP, method
// and route. When the counter is unavailable requests are let through.
func RateLimiter(counter Counter, cfg config.RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Key is per-IP, per-method, per-route
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, ttl, err := counter.Hit(c.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if ttl < 0 {
			ttl = cfg.Window
		}

		remaining := cfg.Requests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetAt := time.Now().Add(ttl)

		rate := &models.RateLimiter{
			Limit:          cfg.Requests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: int(ttl.Seconds()),
		}
		c.Set(models.RateLimiterKey, rate)

		if int(count) > cfg.Requests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Code:    "RATE_LIMITED",
				Rate:    rate,
			})
			return
		}

		c.Next()
	}
}
