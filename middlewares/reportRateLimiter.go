package middlewares

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ReportRateLimiter caps how many issues one client may submit per day.
// Keys are per client IP since citizens share a single coarse role. A nil
// client disables the limiter (memory store backend, tests).
func ReportRateLimiter(client *redis.Client, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		queuePrefix := os.Getenv("REDIS_QUEUE_FOR_REPORT_LIMIT")
		if queuePrefix == "" {
			queuePrefix = "report_limit"
		}

		ctx := c.Request.Context()
		userKey := queuePrefix + ":" + c.ClientIP()

		count, err := client.Incr(ctx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			if err := client.Expire(ctx, userKey, 24*time.Hour).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := client.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
