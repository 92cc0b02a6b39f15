package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/index"
	"github.com/MrSnakeDoc/readinglist/internal/logger"
)

func TestGarbageCollector_Collect(t *testing.T) {
	log := logger.New("error", false)
	memIndex := index.NewMemoryIndex()

	now := time.Now()
	memIndex.UpdateEntries([]*domain.Entry{
		{
			ID:        "active",
			Title:     "Fluent Python",
			Sources:   []string{"markdown"},
			UpdatedAt: now,
		},
		{
			ID:        "recently-disabled",
			Title:     "Eloquent JavaScript",
			Sources:   []string{"markdown"},
			Disabled:  true,
			UpdatedAt: now.Add(-10 * 24 * time.Hour), // Disabled 10 days ago
		},
		{
			ID:        "old-disabled",
			Title:     "TopCoder",
			Sources:   []string{"markdown"},
			Disabled:  true,
			UpdatedAt: now.Add(-35 * 24 * time.Hour), // Disabled 35 days ago
		},
		{
			ID:       "disabled-without-date",
			Title:    "edX",
			Sources:  []string{"markdown"},
			Disabled: true,
		},
	})

	// no Redis store for this test
	gc := NewGarbageCollector(nil, memIndex, log, 24*time.Hour, 30*24*time.Hour)

	deleted, err := gc.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 entry deleted, got %d", deleted)
	}

	if got := memIndex.Count(); got != 3 {
		t.Errorf("Expected 3 entries after GC, got %d", got)
	}

	for _, id := range []string{"active", "recently-disabled", "disabled-without-date"} {
		if _, ok := memIndex.GetEntry(id); !ok {
			t.Errorf("%s was incorrectly removed", id)
		}
	}

	if _, ok := memIndex.GetEntry("old-disabled"); ok {
		t.Error("Old disabled entry was not removed")
	}
}

func TestGarbageCollector_DefaultThreshold(t *testing.T) {
	gc := NewGarbageCollector(nil, index.NewMemoryIndex(), logger.New("error", false), time.Hour, 0)
	if gc.threshold != DefaultGCThreshold {
		t.Errorf("threshold = %v, want %v", gc.threshold, DefaultGCThreshold)
	}
}
