package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimitMiddleware: janela fixa por IP sobre INCR/EXPIRE no redis.
// Redis fora do ar → fail-open (disponibilidade vale mais que o limite).
func RateLimitMiddleware(rdb *redis.Client, limitPerMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limitPerMin <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Println("rate limiter error:", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, time.Minute)
		}

		if count > int64(limitPerMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limited",
			})
			return
		}

		c.Next()
	}
}
