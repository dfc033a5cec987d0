package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window limiter keyed per IP, method and route.
// Redis errors let the request through.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("⚠️ Rate limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := client.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Printf("⚠️ Rate limiter window not persisted: %v", err)
			}
		}

		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		rate := newRateSnapshot(maxRequests, count, time.Unix(resetAtUnix, 0))

		c.Set(models.RateLimiterKey, rate)

		if int(count) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(rate.ResetInSeconds))
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// newRateSnapshot clamps remaining and reset seconds at zero.
func newRateSnapshot(maxRequests int, count int64, resetAt time.Time) *models.RateLimiter {
	remaining := maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetInSeconds := int(time.Until(resetAt).Seconds())
	if resetInSeconds < 0 {
		resetInSeconds = 0
	}
	return &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetInSeconds,
	}
}
