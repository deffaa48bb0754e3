// Package ratelimit provides the request limiter used on authentication
// endpoints to slow down credential stuffing.
package ratelimit

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits inside
	// the window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	// Reset clears all recorded requests for key.
	Reset(ctx context.Context, key string) error
}
