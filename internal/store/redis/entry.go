package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

// GetAllEntries retrieves all entries from Redis.
// IDs whose record expired are dropped from the ID set.
func (s *Store) GetAllEntries(ctx context.Context) ([]*domain.Entry, error) {
	ids, err := s.client.SMembers(ctx, AllEntriesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Entry{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = EntryKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	entries := make([]*domain.Entry, 0, len(ids))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var entry domain.Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			// Skip entries that couldn't be decoded
			continue
		}
		entries = append(entries, &entry)
	}

	if len(stale) > 0 {
		_ = s.client.SRem(ctx, AllEntriesKey(), stale...).Err()
	}

	return entries, nil
}

// DeleteEntry removes an entry and its usage counter from Redis
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, EntryKey(id))
	pipe.SRem(ctx, AllEntriesKey(), id)
	pipe.HDel(ctx, UsageKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}

// SaveEntriesMany stores multiple entries in Redis (bulk operation)
func (s *Store) SaveEntriesMany(ctx context.Context, entries []*domain.Entry) error {
	pipe := s.client.Pipeline()

	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry %s: %w", entry.ID, err)
		}

		pipe.Set(ctx, EntryKey(entry.ID), data, DefaultEntryTTL)
		pipe.SAdd(ctx, AllEntriesKey(), entry.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	return nil
}
