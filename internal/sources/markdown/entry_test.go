package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	t.Run("kinded entry with annotation", func(t *testing.T) {
		line := "* *Book* - [Clean Code: A Handbook of Agile Software Craftsmanship](https://www.amazon.com/...) *(Not free!)*"
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Equal(t, "Book", e.Kind)
		assert.Equal(t, "Clean Code: A Handbook of Agile Software Craftsmanship", e.Title)
		assert.Equal(t, "https://www.amazon.com/...", e.URL)
		assert.False(t, e.Free)
		assert.Equal(t, "*(Not free!)*", e.Annotation)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("bare link", func(t *testing.T) {
		line := "* [CodeForces](https://codeforces.com)"
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Empty(t, e.Kind)
		assert.True(t, e.IsBare())
		assert.Equal(t, "CodeForces", e.Title)
		assert.Equal(t, "https://codeforces.com", e.URL)
		assert.True(t, e.Free)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("underscore kind and dash marker", func(t *testing.T) {
		line := "- _Video_ - [Talk](https://example.com/talk)"
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Equal(t, "Video", e.Kind)
		assert.Equal(t, "_", e.KindDelim)
		assert.Equal(t, "-", e.Marker)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("nested brackets and parentheses", func(t *testing.T) {
		line := "* *Book* - [Algorithms [4th ed]](https://en.wikipedia.org/wiki/Algorithms_(book))"
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Equal(t, "Algorithms [4th ed]", e.Title)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Algorithms_(book)", e.URL)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("odd spacing survives", func(t *testing.T) {
		line := "  *   *Blog*  -  [Spaced](https://example.com)   (free)  "
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Equal(t, "Blog", e.Kind)
		assert.Equal(t, "(free)  ", e.Annotation)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("annotation glued to the link", func(t *testing.T) {
		for _, line := range []string{
			"* [CodeForces](https://codeforces.com), the contest site",
			"* *Book* - [Clean Code](https://example.com/cc)*(Not free!)*",
		} {
			e, ok := ParseEntry(line)
			require.True(t, ok, line)
			assert.Empty(t, e.AnnotSpace)
			assert.Equal(t, line, FormatEntry(e))
		}
	})

	t.Run("link title is not part of the url", func(t *testing.T) {
		line := `* *Book* - [Tip](https://example.com/tip "A tooltip")`
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/tip", e.URL)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("angle bracket destination", func(t *testing.T) {
		line := "* [Angle](<https://example.com/angle>)"
		e, ok := ParseEntry(line)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/angle", e.URL)
		assert.Equal(t, line, FormatEntry(e))
	})

	t.Run("edited url replaces the raw destination", func(t *testing.T) {
		e, ok := ParseEntry(`* [Tip](<https://example.com/old> "Old")`)
		require.True(t, ok)
		e.URL = "https://example.com/new"
		assert.Equal(t, "* [Tip](https://example.com/new)", FormatEntry(e))
	})

	t.Run("empty title still parses", func(t *testing.T) {
		e, ok := ParseEntry("* *Book* - [](https://example.com)")
		require.True(t, ok)
		assert.Empty(t, e.Title)
	})

	rejected := []string{
		"",
		"plain prose",
		"*Book* - [No marker](https://example.com)",
		"* *Book* [No separator](https://example.com)",
		"* *Book* - no link at all",
		"* [Unclosed](https://example.com",
		"* [Reference link][ref]",
		"* ",
	}
	for _, line := range rejected {
		t.Run("rejects "+line, func(t *testing.T) {
			_, ok := ParseEntry(line)
			assert.False(t, ok)
		})
	}
}

func TestFormatEntryDefaults(t *testing.T) {
	e, ok := ParseEntry("* *Book* - [Title](https://example.com) *(Not free!)*")
	require.True(t, ok)

	built := *e
	built.Marker, built.MarkerSpace, built.KindDelim, built.KindSep, built.AnnotSpace = "", "", "", "", ""
	assert.Equal(t, "* *Book* - [Title](https://example.com) *(Not free!)*", FormatEntry(&built))
}

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "relative markdown link",
			text: "You can check out the [Git guide](../git/index.md) for a list of resources.",
			want: []string{"../git/index.md"},
		},
		{
			name: "bare url",
			text: "See https://git-scm.com/book for details.",
			want: []string{"https://git-scm.com/book"},
		},
		{
			name: "both",
			text: "[Pro Git](https://git-scm.com/book) or https://learngitbranching.js.org",
			want: []string{"https://git-scm.com/book", "https://learngitbranching.js.org"},
		},
		{
			name: "link title and angle brackets",
			text: `[Home](<https://example.com> "Home") and [Docs](https://example.com/docs 'Docs')`,
			want: []string{"https://example.com", "https://example.com/docs"},
		},
		{
			name: "nothing",
			text: "No links here.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLinks(tt.text))
		})
	}
}
