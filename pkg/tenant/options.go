package tenant

import (
	"net/http"
	"time"
)

// ErrorHandler handles infrastructure failures during resolution. Domain
// rejections (suspended, trial expired, ...) are written by the gates
// themselves with their exact status and message; this handler only sees
// unexpected errors such as an unreachable data store.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	strategies   []Strategy
	errorHandler ErrorHandler
	cache        Cache
	cacheTTL     time.Duration
	now          func() time.Time
}

// Option configures the Resolve middleware.
type Option func(*config)

// WithStrategies replaces the default resolution order.
func WithStrategies(strategies ...Strategy) Option {
	return func(c *config) {
		if len(strategies) > 0 {
			c.strategies = strategies
		}
	}
}

// WithErrorHandler sets a custom handler for infrastructure errors.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithCache enables read-through caching of validated tenant records.
// Lifecycle checks still run per request against the cached record, so a
// trial expiring between refreshes is rejected as soon as the deadline
// passes, not when the cache entry does.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, _ error) {
	reject(w, http.StatusInternalServerError, "Internal server error")
}
