package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Limiter interface {
	IsAllowed(key string) bool
	GetRemainingRequests(key string) int
}

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.IsAllowed(ip) {
			logger.Warn("rate limit exceeded", zap.String("client_ip", ip), zap.String("path", c.Request.URL.Path))
			c.Header("X-RateLimit-Remaining", "0")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, try again later",
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemainingRequests(ip)))
		c.Next()
	}
}
