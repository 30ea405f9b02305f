// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// RateLimiter defines the interface for counting attempts against a key
// within a rolling window.
type RateLimiter interface {
	// Allow records an attempt for key and reports whether it stays
	// within limit attempts per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	// Reset clears the attempt counter for key.
	Reset(ctx context.Context, key string) error
}
