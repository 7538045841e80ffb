package middleware

import (
	"preference-service/pkg/log"
)

// Config configures the shared middleware set.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A non-positive rate disables rate limiting.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
