package redis

import (
	"context"
	"fmt"
	"strconv"
)

// IncrementUsage increments the redirect counter of an entry
func (s *Store) IncrementUsage(ctx context.Context, entryID string) (int64, error) {
	n, err := s.client.HIncrBy(ctx, UsageKey(), entryID, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment usage: %w", err)
	}
	return n, nil
}

// GetUsage retrieves the redirect counters of every entry
func (s *Store) GetUsage(ctx context.Context) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, UsageKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}

	usage := make(map[string]int64, len(raw))
	for id, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		usage[id] = n
	}
	return usage, nil
}
