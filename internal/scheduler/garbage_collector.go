package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/index"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	redisstore "github.com/MrSnakeDoc/readinglist/internal/store/redis"
)

const (
	// DefaultGCThreshold is the duration after which disabled entries are deleted
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector handles cleanup of entries removed from the reading list
type GarbageCollector struct {
	store     *redisstore.Store
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if _, err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes entries that have been disabled for longer than the threshold
// and returns how many were deleted.
func (gc *GarbageCollector) Collect(ctx context.Context) (int, error) {
	gc.logger.Debug("running garbage collection for disabled entries")

	now := time.Now()
	deleted := 0

	for _, entry := range gc.index.GetAllEntries() {
		if !entry.Disabled || entry.UpdatedAt.IsZero() {
			continue
		}

		disabledFor := now.Sub(entry.UpdatedAt)
		if disabledFor < gc.threshold {
			continue
		}

		gc.index.DeleteEntry(entry.ID)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeleteEntry(ctx, entry.ID); err != nil {
				gc.logger.Warn("failed to delete entry from redis",
					logger.String("entry_id", entry.ID),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled entry",
			logger.String("entry_id", entry.ID),
			logger.String("title", entry.Title),
			logger.Duration("disabled_for", disabledFor))

		deleted++
	}

	if deleted > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("deleted", deleted))
	} else {
		gc.logger.Debug("no entries to garbage collect")
	}

	return deleted, nil
}
