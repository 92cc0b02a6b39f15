package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheResults stores the ranked entry IDs for a query
func (s *Store) CacheResults(ctx context.Context, query string, limit int, ids []string, ttl time.Duration) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := s.client.Set(ctx, CacheKey(query, limit), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache results: %w", err)
	}
	return nil
}

// GetCachedResults retrieves cached entry IDs for a query.
// A cache miss returns nil, false and no error.
func (s *Store) GetCachedResults(ctx context.Context, query string, limit int) ([]string, bool, error) {
	data, err := s.client.Get(ctx, CacheKey(query, limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil // Cache miss
		}
		return nil, false, fmt.Errorf("failed to get cached results: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached results: %w", err)
	}
	return ids, true, nil
}

// InvalidateCache removes the cached results of a query
func (s *Store) InvalidateCache(ctx context.Context, query string, limit int) error {
	if err := s.client.Del(ctx, CacheKey(query, limit)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// FlushCache removes all cached results
func (s *Store) FlushCache(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixCache+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	return nil
}
