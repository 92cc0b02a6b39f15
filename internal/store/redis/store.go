package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultEntryTTL is the default TTL for entry records (48 hours)
	DefaultEntryTTL = 48 * time.Hour
	// DefaultCacheTTL is the default TTL for cached search results (1 hour)
	DefaultCacheTTL = time.Hour
)

// Store handles Redis operations for entries, usage counters and cache
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks that Redis answers
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
