package domain

import (
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name              string
		input             string
		expectedFragments []string
		expectedKind      string
		expectedCategory  string
		expectedFree      *bool
	}{
		{
			name:              "simple query",
			input:             "clean",
			expectedFragments: []string{"clean"},
		},
		{
			name:              "multiple fragments",
			input:             "  Clean   Code ",
			expectedFragments: []string{"clean", "code"},
		},
		{
			name:              "kind filter",
			input:             "kind:Book python",
			expectedFragments: []string{"python"},
			expectedKind:      "book",
		},
		{
			name:              "category filter is normalized",
			input:             "in:Computer-Science sorting",
			expectedFragments: []string{"sorting"},
			expectedCategory:  "computerscience",
		},
		{
			name:         "free filter",
			input:        "free:false",
			expectedFree: boolPtr(false),
		},
		{
			name:              "invalid free filter stays a fragment",
			input:             "free:maybe",
			expectedFragments: []string{"free:maybe"},
		},
		{
			name:  "empty query",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := ParseQuery(tt.input)

			if !slicesEqual(query.Fragments, tt.expectedFragments) {
				t.Errorf("Fragments = %v, want %v", query.Fragments, tt.expectedFragments)
			}
			if query.Kind != tt.expectedKind {
				t.Errorf("Kind = %q, want %q", query.Kind, tt.expectedKind)
			}
			if query.Category != tt.expectedCategory {
				t.Errorf("Category = %q, want %q", query.Category, tt.expectedCategory)
			}
			switch {
			case tt.expectedFree == nil && query.Free != nil:
				t.Errorf("Free = %v, want nil", *query.Free)
			case tt.expectedFree != nil && (query.Free == nil || *query.Free != *tt.expectedFree):
				t.Errorf("Free = %v, want %v", query.Free, *tt.expectedFree)
			}
		})
	}
}

func TestQueryEmpty(t *testing.T) {
	if !ParseQuery("   ").Empty() {
		t.Error("blank query should be empty")
	}
	if ParseQuery("kind:video").Empty() {
		t.Error("filter-only query should not be empty")
	}
}

func TestTitleWords(t *testing.T) {
	got := TitleWords("Clean Code: A Handbook of C++")
	want := []string{"clean", "code", "a", "handbook", "of", "c++"}
	if !slicesEqual(got, want) {
		t.Errorf("TitleWords() = %v, want %v", got, want)
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func boolPtr(b bool) *bool { return &b }
