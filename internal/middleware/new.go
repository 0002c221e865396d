package middleware

import (
	"taskbuddy/pkg/log"
)

// Middleware bundles the HTTP middlewares with their shared dependencies.
type Middleware struct {
	l              log.Logger
	ratePerMinute  int
	clientLimiters *limiterCache
}

// New creates the middleware set. ratePerMinute caps webhook requests per
// client IP.
func New(l log.Logger, ratePerMinute int) Middleware {
	return Middleware{
		l:              l,
		ratePerMinute:  ratePerMinute,
		clientLimiters: newLimiterCache(),
	}
}
