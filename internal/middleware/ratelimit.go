package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"butler-assistant/pkg/response"
)

const limiterTTL = 5 * time.Minute

// rateLimiter keeps one token bucket per client; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst, maxClients int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	if maxClients <= 0 {
		maxClients = 1000
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed their per-IP budget with 429.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.limiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %s over limit on %s", ip, c.FullPath())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
