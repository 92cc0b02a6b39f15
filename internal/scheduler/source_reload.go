package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/index"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
	"github.com/MrSnakeDoc/readinglist/internal/sources/markdown"
	redisstore "github.com/MrSnakeDoc/readinglist/internal/store/redis"
)

// SourceReloader handles periodic reloading of the reading list file
type SourceReloader struct {
	loader        *markdown.Loader
	mapper        *markdown.Mapper
	store         *redisstore.Store
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSourceReloader creates a new reloader. store may be nil.
func NewSourceReloader(
	sourceFile string,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SourceReloader {
	return &SourceReloader{
		loader:        markdown.NewLoader(sourceFile),
		mapper:        markdown.NewMapper(),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the file once, then keeps reloading it on every tick
// and every manual trigger until Stop or ctx cancellation.
func (sr *SourceReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload reading list, keeping previous index",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload reading list, keeping previous index",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (sr *SourceReloader) Stop() {
	close(sr.stopCh)
}

// Reload reads the source file and swaps the index content.
// On any error the index is left untouched.
func (sr *SourceReloader) Reload(ctx context.Context) error {
	sr.logger.Info("reloading reading list",
		logger.String("file", sr.loader.Path()))

	doc, source, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load reading list: %w", err)
	}

	mapped, err := sr.mapper.MapEntries(doc)
	if err != nil {
		return fmt.Errorf("failed to map entries: %w", err)
	}

	now := time.Now()
	existing := make(map[string]*domain.Entry)
	for _, e := range sr.index.GetAllEntries() {
		existing[e.ID] = e
	}

	// Identical lines collapse to one ID; the first occurrence wins.
	seen := make(map[string]bool, len(mapped))
	entries := make([]*domain.Entry, 0, len(mapped))
	duplicates := 0
	for _, entry := range mapped {
		if seen[entry.ID] {
			duplicates++
			continue
		}
		seen[entry.ID] = true

		if prev, ok := existing[entry.ID]; ok {
			entry.Counter = prev.Counter
			if !prev.CreatedAt.IsZero() {
				entry.CreatedAt = prev.CreatedAt
			}
		}
		entries = append(entries, entry)
	}

	if duplicates > 0 {
		sr.logger.Warn("duplicate entries collapsed",
			logger.Int("count", duplicates))
	}

	// Entries gone from the file stay in the index as disabled
	// until the garbage collector removes them.
	var disabled []*domain.Entry
	for id, prev := range existing {
		if seen[id] || !fromMarkdown(prev) {
			continue
		}
		if !prev.Disabled {
			prev.Disabled = true
			prev.UpdatedAt = now
		}
		disabled = append(disabled, prev)
	}

	if len(disabled) > 0 {
		sr.logger.Info("marking removed entries as disabled",
			logger.Int("count", len(disabled)))
	}

	all := append(entries, disabled...)
	sr.index.UpdateEntries(all)
	sr.index.SetDocument(doc, source)

	sr.logger.Info("loaded reading list",
		logger.Int("entries", len(entries)),
		logger.Int("categories", len(doc.Categories)))

	// Update Redis store (best effort)
	if sr.store != nil {
		if err := sr.store.SaveEntriesMany(ctx, all); err != nil {
			sr.logger.Warn("failed to save entries to redis",
				logger.Error(err))
		}
		if err := sr.store.FlushCache(ctx); err != nil {
			sr.logger.Warn("failed to flush search cache",
				logger.Error(err))
		}
	}

	return nil
}

func fromMarkdown(e *domain.Entry) bool {
	for _, source := range e.Sources {
		if source == markdown.SourceName {
			return true
		}
	}
	return false
}
