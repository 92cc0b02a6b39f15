package markdown

import (
	"testing"
	"time"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

func TestMapperMapEntries(t *testing.T) {
	doc := ParseBytes([]byte(`# Reading list

## Competitions/camps

* [CodeForces](https://codeforces.com)
* [TopCoder](https://www.topcoder.com)
`))

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mapper := &Mapper{now: func() time.Time { return fixed }}

	entries, err := mapper.MapEntries(doc)
	if err != nil {
		t.Fatalf("MapEntries() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("MapEntries() returned %v entries, want 2", len(entries))
	}

	for _, e := range entries {
		want := domain.EntryID("Competitions/camps", e.Title, e.URL)
		if e.ID != want {
			t.Errorf("entry %q ID = %v, want %v", e.Title, e.ID, want)
		}
		if len(e.Sources) != 1 || e.Sources[0] != SourceName {
			t.Errorf("entry %q Sources = %v", e.Title, e.Sources)
		}
		if !e.CreatedAt.Equal(fixed) || !e.UpdatedAt.Equal(fixed) {
			t.Errorf("entry %q timestamps not set", e.Title)
		}
	}
}

func TestMapperMapEntriesEmptyDocument(t *testing.T) {
	mapper := NewMapper()

	entries, err := mapper.MapEntries(ParseBytes([]byte("# Reading list\n\n## Git\n\nSee the Git guide.\n")))
	if err == nil {
		t.Error("MapEntries() with no entries should return error")
	}
	if entries != nil {
		t.Errorf("MapEntries() should return nil entries, got %v", len(entries))
	}
}

func TestMapperMapEntriesNilDocument(t *testing.T) {
	if _, err := NewMapper().MapEntries(nil); err == nil {
		t.Error("MapEntries(nil) should return error")
	}
}
