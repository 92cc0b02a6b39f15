package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/readinglist/internal/index"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	redisstore "github.com/MrSnakeDoc/readinglist/internal/store/redis"
)

// RedisSyncer restores entries and usage counters from Redis on startup
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads entries from Redis into the memory index, then applies the
// usage counters. It runs before the first reload so counters and
// disabled entries survive a restart.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing entries from redis to memory")

	entries, err := rs.store.GetAllEntries(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		rs.logger.Info("no entries found in redis")
		return nil
	}

	rs.index.UpdateEntries(entries)

	usage, err := rs.store.GetUsage(ctx)
	if err != nil {
		rs.logger.Warn("failed to read usage counters from redis",
			logger.Error(err))
	} else {
		rs.index.SetCounters(usage)
	}

	rs.logger.Info("synced entries from redis",
		logger.Int("count", len(entries)),
		logger.Int("with_usage", len(usage)))

	return nil
}
