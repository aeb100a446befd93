package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"inventory-service/pkg/response"
)

// LoginRateLimit throttles requests per client IP. It is a no-op when disabled.
func (m Middleware) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.loginLimiter == nil {
			c.Next()
			return
		}
		if !m.loginLimiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.LoginRateLimit: rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

const (
	maxTrackedClients = 1000
	clientIdleTTL     = 5 * time.Minute
)

// rateLimiter keeps one token bucket per key, evicting idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
