package middleware

import (
	"net/http"
	"sync"
	"time"

	"keep-app/src/logger"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimitMiddleware メモリベースの固定ウィンドウレート制限
func RateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rateWindow)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		mu.Lock()
		b, ok := buckets[clientIP]
		if !ok || now.After(b.resetAt) {
			b = &rateWindow{resetAt: now.Add(window)}
			buckets[clientIP] = b
		}
		b.count++
		count := b.count
		mu.Unlock()

		if count > limit {
			logger.WithField("client_ip", clientIP).Warn("レート制限に達しました")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too Many Requests",
				"retry_after": int(window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
