package middleware

import (
	"proof-timeline/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	AllowedOrigins  []string // empty allows any origin
	RateLimitPerMin int      // 0 disables rate limiting
	RateLimitBurst  int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	}
	return m
}
