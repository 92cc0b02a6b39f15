package index

import (
	"sync"
	"testing"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

func TestNewMemoryIndex(t *testing.T) {
	index := NewMemoryIndex()
	if index == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	if n := len(index.GetAllEntries()); n != 0 {
		t.Errorf("NewMemoryIndex() should start with no entries, got %v", n)
	}
	if doc, _ := index.Document(); doc != nil {
		t.Error("NewMemoryIndex() should start without a document")
	}
	if !index.GetLastReload().IsZero() {
		t.Error("NewMemoryIndex() should start with a zero reload time")
	}
}

func TestUpdateEntries(t *testing.T) {
	index := NewMemoryIndex()

	index.UpdateEntries([]*domain.Entry{
		{ID: "a", Category: "Python", Title: "Fluent Python", Line: 3},
		{ID: "b", Category: "Python", Title: "Automate the Boring Stuff", Line: 4},
	})

	if got := index.Count(); got != 2 {
		t.Errorf("UpdateEntries() stored %v entries, want 2", got)
	}
	if index.GetLastReload().IsZero() {
		t.Error("UpdateEntries() should set the reload time")
	}
}

func TestUpdateEntriesOverwrites(t *testing.T) {
	index := NewMemoryIndex()

	index.UpdateEntries([]*domain.Entry{{ID: "a"}})
	index.UpdateEntries([]*domain.Entry{{ID: "b"}, {ID: "c"}})

	if got := index.Count(); got != 2 {
		t.Errorf("UpdateEntries() should overwrite, got %v entries want 2", got)
	}
	if _, ok := index.GetEntry("a"); ok {
		t.Error("entry from previous update should be gone")
	}
}

func TestGetAllEntriesOrder(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateEntries([]*domain.Entry{
		{ID: "3", Category: "Python", Line: 20},
		{ID: "1", Category: "JavaScript", Line: 30},
		{ID: "2", Category: "Python", Line: 10},
	})

	got := index.GetAllEntries()
	want := []string{"1", "2", "3"}
	for i, e := range got {
		if e.ID != want[i] {
			t.Errorf("GetAllEntries()[%d] = %s, want %s", i, e.ID, want[i])
		}
	}
}

func TestEntriesAreCopied(t *testing.T) {
	index := NewMemoryIndex()
	original := &domain.Entry{ID: "a", Title: "Original"}
	index.UpdateEntries([]*domain.Entry{original})

	original.Title = "Changed by caller"
	got, _ := index.GetEntry("a")
	if got.Title != "Original" {
		t.Errorf("index shares entry with caller, title = %q", got.Title)
	}

	got.Title = "Changed again"
	again, _ := index.GetEntry("a")
	if again.Title != "Original" {
		t.Errorf("GetEntry() returned shared pointer, title = %q", again.Title)
	}
}

func TestDeleteEntry(t *testing.T) {
	index := NewMemoryIndex()

	index.UpdateEntries([]*domain.Entry{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})

	index.DeleteEntry("a")
	if _, ok := index.GetEntry("a"); ok {
		t.Error("DeleteEntry() did not remove entry")
	}

	// deleting an unknown ID is a no-op
	index.DeleteEntry("missing")
	if got := index.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestActiveCount(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateEntries([]*domain.Entry{
		{ID: "a"},
		{ID: "b", Disabled: true},
		{ID: "c"},
	})

	if got := index.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}
}

func TestCounters(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateEntries([]*domain.Entry{{ID: "a"}, {ID: "b"}})

	if n, ok := index.IncrementCounter("a"); !ok || n != 1 {
		t.Errorf("IncrementCounter() = %d, %v, want 1, true", n, ok)
	}
	if _, ok := index.IncrementCounter("missing"); ok {
		t.Error("IncrementCounter() on unknown ID should report false")
	}

	index.SetCounters(map[string]int64{"b": 42, "missing": 7})

	counters := index.Counters()
	if counters["a"] != 1 || counters["b"] != 42 {
		t.Errorf("Counters() = %v", counters)
	}
	if _, ok := counters["missing"]; ok {
		t.Error("SetCounters() should ignore unknown IDs")
	}
}

func TestDocument(t *testing.T) {
	index := NewMemoryIndex()
	doc := &domain.Document{
		Title:      "Reading list",
		Categories: []*domain.Category{{Name: "Python"}, {Name: "Git"}},
	}
	source := []byte("# Reading list\n")

	index.SetDocument(doc, source)

	gotDoc, gotSource := index.Document()
	if gotDoc != doc || string(gotSource) != string(source) {
		t.Error("Document() did not return what SetDocument() stored")
	}
	cats, ok := index.Categories()
	if !ok || len(cats) != 2 || cats[0].Name != "Python" {
		t.Errorf("Categories() = %v, %v", cats, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	index := NewMemoryIndex()
	index.UpdateEntries([]*domain.Entry{{ID: "a"}, {ID: "b"}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			index.IncrementCounter("a")
		}()
		go func() {
			defer wg.Done()
			for _, e := range index.GetAllEntries() {
				_ = e.Counter
			}
		}()
		go func() {
			defer wg.Done()
			index.DeleteEntry("b")
		}()
	}
	wg.Wait()

	e, _ := index.GetEntry("a")
	if e.Counter != 50 {
		t.Errorf("counter = %d, want 50", e.Counter)
	}
}
