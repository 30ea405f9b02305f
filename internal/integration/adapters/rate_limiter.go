// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ops-tracker/backend/internal/application/adapter"
)

// redisRateLimiter implements adapter.RateLimiter with a redis counter
// per key. The window starts at the first attempt and is fixed; INCR
// and EXPIRE NX run in one pipeline so the counter always carries a TTL.
type redisRateLimiter struct {
	client *redis.Client
}

// NewRedisRateLimiter creates a new redis-backed rate limiter instance.
func NewRedisRateLimiter(client *redis.Client) adapter.RateLimiter {
	return &redisRateLimiter{
		client: client,
	}
}

func (l *redisRateLimiter) key(key string) string {
	return "rate_limit:" + key
}

// Allow records an attempt for key and reports whether it stays within
// limit attempts per window.
func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := l.key(key)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count attempts: %w", err)
	}

	return count.Val() <= int64(limit), nil
}

// Reset clears the attempt counter for key.
func (l *redisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}
