package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// Query represents a parsed search input
type Query struct {
	Raw       string   // Normalized input
	Fragments []string // Free-text fragments
	Kind      string   // kind:<k> filter, lowercased
	Category  string   // in:<category> filter, normalized
	Free      *bool    // free:<bool> filter
}

// ParseQuery parses user input into a structured query
// Examples:
//   - "clean code" -> fragments ["clean", "code"]
//   - "kind:book python" -> kind filter "book" + ["python"]
//   - "in:algorithms free:true sorting" -> category + free filters + ["sorting"]
func ParseQuery(input string) *Query {
	input = strings.TrimSpace(strings.ToLower(input))
	q := &Query{Raw: input}
	if input == "" {
		return q
	}

	for _, part := range splitAndClean(input, " ") {
		key, value, ok := strings.Cut(part, ":")
		if ok && value != "" {
			switch key {
			case "kind":
				q.Kind = value
				continue
			case "in", "cat", "category":
				q.Category = normalizeFragment(value)
				continue
			case "free":
				if b, err := strconv.ParseBool(value); err == nil {
					q.Free = &b
					continue
				}
			}
		}
		q.Fragments = append(q.Fragments, part)
	}

	return q
}

// Empty reports whether the query has neither fragments nor filters.
func (q *Query) Empty() bool {
	return q == nil || (len(q.Fragments) == 0 && q.Kind == "" && q.Category == "" && q.Free == nil)
}

// Accepts applies the filters of the query to an entry.
func (q *Query) Accepts(e *Entry) bool {
	if q.Kind != "" && strings.ToLower(e.Kind) != q.Kind {
		return false
	}
	if q.Category != "" && !strings.Contains(normalizeFragment(e.Category), q.Category) {
		return false
	}
	if q.Free != nil && e.Free != *q.Free {
		return false
	}
	return true
}

// splitAndClean splits a string by separator and returns non-empty parts
func splitAndClean(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// TitleWords splits a title into lowercase words for matching
// Example: "Clean Code: A Handbook" -> ["clean", "code", "a", "handbook"]
func TitleWords(title string) []string {
	return strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}

// normalizeFragment normalizes a fragment for matching
func normalizeFragment(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
