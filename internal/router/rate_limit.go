package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/souq-next/internal/cache"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/logger"
)

// 固定窗口计数：INCR 后首次设置过期，原子执行
var rateLimitScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware 按客户端IP限流。Redis 不可用时放行。
func RateLimitMiddleware(name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := cache.Client()
		if client == nil {
			c.Next()
			return
		}
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())
		count, err := rateLimitScript.Run(
			c.Request.Context(), client,
			[]string{key}, int(window.Seconds()),
		).Int64()
		if err != nil {
			logger.Warnw("rate_limit_check_failed", "name", name, "error", err)
			c.Next()
			return
		}
		if count > int64(limit) {
			response.RateLimited(c, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
