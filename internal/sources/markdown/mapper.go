package markdown

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

// SourceName is the provenance tag set on entries loaded from a markdown file
const SourceName = "markdown"

// Mapper converts a parsed document to index entries
type Mapper struct {
	now func() time.Time
}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{now: time.Now}
}

// MapEntries assigns identity and provenance to every entry of the document
func (m *Mapper) MapEntries(doc *domain.Document) ([]*domain.Entry, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document to map")
	}

	now := m.now()
	entries := make([]*domain.Entry, 0)

	for _, category := range doc.Categories {
		for _, entry := range category.Entries {
			entry.ID = domain.EntryID(category.Name, entry.Title, entry.URL)
			entry.Sources = []string{SourceName}
			entry.CreatedAt = now
			entry.UpdatedAt = now
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid entries found in reading list")
	}

	return entries, nil
}
