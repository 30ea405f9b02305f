// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks which refresh tokens are still live. Tokens expire
// from the store on their own when their TTL runs out.
type TokenStore interface {
	// Save registers a refresh token with a time-to-live.
	Save(ctx context.Context, token string, ttl time.Duration) error

	// Exists reports whether a refresh token is still registered.
	Exists(ctx context.Context, token string) (bool, error)

	// Delete removes a refresh token from the store.
	Delete(ctx context.Context, token string) error
}

// redisTokenStore implements TokenStore on redis keys with TTLs.
type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new redis-backed token store instance.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{
		client: client,
	}
}

func (s *redisTokenStore) key(token string) string {
	return "refresh_token:" + token
}

// Save registers a refresh token with a time-to-live.
func (s *redisTokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// Exists reports whether a refresh token is still registered.
func (s *redisTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return count > 0, nil
}

// Delete removes a refresh token from the store.
func (s *redisTokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
