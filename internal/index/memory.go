package index

import (
	"sort"
	"sync"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

// MemoryIndex holds the current reading list in memory.
// It is the authoritative copy for every request; Redis only persists it.
//
// Entries are copied on the way in and on the way out, so callers never share
// a pointer with the index and counters can change under the lock alone.
type MemoryIndex struct {
	mu         sync.RWMutex
	entries    map[string]*domain.Entry // ID -> Entry
	doc        *domain.Document         // last successfully parsed document
	source     []byte                   // raw bytes of doc
	lastReload time.Time                // Timestamp of last document reload
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		entries: make(map[string]*domain.Entry),
	}
}

// UpdateEntries replaces all entries in the index
func (idx *MemoryIndex) UpdateEntries(entries []*domain.Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.entries = make(map[string]*domain.Entry, len(entries))
	for _, entry := range entries {
		idx.entries[entry.ID] = clone(entry)
	}
	idx.lastReload = time.Now()
}

// SetDocument records the document the entries were mapped from
func (idx *MemoryIndex) SetDocument(doc *domain.Document, source []byte) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.doc = doc
	idx.source = source
}

// Document returns the current document and its raw source.
// The document is nil until the first successful reload.
func (idx *MemoryIndex) Document() (*domain.Document, []byte) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.doc, idx.source
}

// Categories returns the categories of the current document in order.
// ok is false until a document has been loaded.
func (idx *MemoryIndex) Categories() (categories []*domain.Category, ok bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.doc == nil {
		return nil, false
	}
	return idx.doc.Categories, true
}

// GetEntry retrieves an entry by ID
func (idx *MemoryIndex) GetEntry(id string) (*domain.Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entry, ok := idx.entries[id]
	if !ok {
		return nil, false
	}
	return clone(entry), true
}

// GetAllEntries returns all entries, disabled ones included,
// ordered by category then source line.
func (idx *MemoryIndex) GetAllEntries() []*domain.Entry {
	idx.mu.RLock()
	entries := make([]*domain.Entry, 0, len(idx.entries))
	for _, entry := range idx.entries {
		entries = append(entries, clone(entry))
	}
	idx.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		if entries[i].Line != entries[j].Line {
			return entries[i].Line < entries[j].Line
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// DeleteEntry removes an entry from the index
func (idx *MemoryIndex) DeleteEntry(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.entries, id)
}

// Count returns the number of entries in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.entries)
}

// ActiveCount returns the number of entries still present in the source
func (idx *MemoryIndex) ActiveCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := 0
	for _, entry := range idx.entries {
		if !entry.Disabled {
			n++
		}
	}
	return n
}

// IncrementCounter increments the usage counter for an entry
// and returns the new value.
func (idx *MemoryIndex) IncrementCounter(id string) (int64, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	entry, ok := idx.entries[id]
	if !ok {
		return 0, false
	}
	entry.Counter++
	return entry.Counter, true
}

// SetCounters overwrites usage counters for the given IDs.
// Unknown IDs are ignored.
func (idx *MemoryIndex) SetCounters(counters map[string]int64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for id, n := range counters {
		if entry, ok := idx.entries[id]; ok {
			entry.Counter = n
		}
	}
}

// Counters returns a snapshot of every non-zero usage counter
func (idx *MemoryIndex) Counters() map[string]int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	counters := make(map[string]int64)
	for id, entry := range idx.entries {
		if entry.Counter > 0 {
			counters[id] = entry.Counter
		}
	}
	return counters
}

// GetLastReload returns the timestamp of the last entries reload
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}

func clone(e *domain.Entry) *domain.Entry {
	cp := *e
	cp.Sources = append([]string(nil), e.Sources...)
	return &cp
}
