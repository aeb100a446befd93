package middleware

import (
	"inventory-service/pkg/log"
	"inventory-service/pkg/scope"
)

// Middleware bundles the gin middlewares of the service.
type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	loginLimiter *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	// JWTManager verifies bearer tokens. Auth() rejects every request when nil.
	JWTManager scope.Manager
	// LoginRateLimitPerMin throttles login attempts per client IP. 0 disables it.
	LoginRateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: cfg.JWTManager,
	}
	if cfg.LoginRateLimitPerMin > 0 {
		mw.loginLimiter = newRateLimiter(cfg.LoginRateLimitPerMin)
	}
	return mw
}
