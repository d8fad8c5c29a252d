package middleware

import (
	"fmt"
	"time"

	redispkg "github.com/engisim/core/internal/pkg/redis"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit limits each client IP to maxRequests per window using a Redis counter.
func RateLimit(rdb *redispkg.Client, logger *zap.Logger, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())
		ctx := c.Request.Context()

		count, err := rdb.Raw().Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit counter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rdb.Raw().Expire(ctx, key, window)
		}
		if count > int64(maxRequests) {
			response.Error(c, 429, "Too many requests, slow down")
			return
		}
		c.Next()
	}
}
