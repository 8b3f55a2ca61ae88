// Package middleware provides the HTTP middleware stack: request ids,
// logging, panic recovery, CORS, rate limiting, timeouts and company
// scoping.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration
}

// Chain assembles the global middleware stack. Company scoping is not part
// of the chain; it is mounted only on the authenticated API routes.
func Chain(config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	return func(handler http.Handler) http.Handler {
		// Apply middleware in order (outer to inner)
		h := handler

		h = Timeout(config.RequestTimeout)(h)

		h = rateLimiter.Middleware()(h)

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}
}
