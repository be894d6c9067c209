package middleware

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// RateLimit counts requests per client IP and scope in a fixed Redis window.
// The window starts with the first request and is not extended by later ones.
// A nil client disables limiting. Redis failures let the request through.
func RateLimit(client redis.Cmdable, scope string, maxRequests int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	if client == nil || maxRequests <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:" + scope + ":" + c.ClientIP()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.WithError(err).WithField("scope", scope).Error("RateLimit: Redis increment failed")
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				log.WithError(err).WithField("scope", scope).Error("RateLimit: failed to start window")
			}
		}

		remaining := int64(maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(maxRequests) {
			log.WithFields(map[string]interface{}{
				"scope":     scope,
				"client_ip": c.ClientIP(),
				"count":     count,
			}).Warn("Rate limit exceeded")
			c.Header("Retry-After", strconv.Itoa(retryAfter(ctx, client, key, window)))
			utils.TooManyRequestsResponse(c, "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}

// retryAfter returns the seconds left in the window, restarting it when the key lost its expiry
func retryAfter(ctx context.Context, client redis.Cmdable, key string, window time.Duration) int {
	ttl, err := client.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		client.Expire(ctx, key, window)
		ttl = window
	}
	return int(math.Ceil(ttl.Seconds()))
}
