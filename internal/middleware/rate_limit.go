package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"taskbuddy/pkg/response"
)

// limiterCacheSize bounds the number of tracked client IPs. Evicted
// clients start over with a full burst, which is acceptable for a
// single-bot deployment.
const limiterCacheSize = 1024

type limiterCache struct {
	limiters *lru.Cache[string, *rate.Limiter]
}

func newLimiterCache() *limiterCache {
	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &limiterCache{limiters: limiters}
}

func (c *limiterCache) get(clientIP string, perMinute int) *rate.Limiter {
	if limiter, ok := c.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	c.limiters.Add(clientIP, limiter)
	return limiter
}

// RateLimit throttles requests per client IP. Requests over the limit get
// 429 without reaching the handler.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMinute <= 0 {
			c.Next()
			return
		}

		limiter := m.clientLimiters.get(c.ClientIP(), m.ratePerMinute)
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				response.Resp{ErrorCode: http.StatusTooManyRequests, Message: errTooManyRequests.Error()})
			return
		}

		c.Next()
	}
}

var errTooManyRequests = errors.New("too many requests")
