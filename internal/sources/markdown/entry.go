package markdown

import (
	"strings"
	"unicode"

	"mvdan.cc/xurls/v2"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

// kindSeparators are the accepted separators between a kind and its link,
// once surrounding whitespace is trimmed.
var kindSeparators = map[string]bool{
	"-": true,
	"–": true,
	"—": true,
	":": true,
}

// ParseEntry parses one list item line into an entry.
// Accepted shapes (any of "*", "-", "+" as list marker, "*" or "_" around the kind):
//
//	* *Book* - [Title](https://example.com) *(Not free!)*
//	* [CodeForces](https://codeforces.com)
//
// Category and Line are left for the caller to fill in.
func ParseEntry(line string) (*domain.Entry, bool) {
	e := &domain.Entry{}

	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	e.Indent = line[:len(line)-len(rest)]

	if len(rest) < 2 || !isMarker(rest[0]) || (rest[1] != ' ' && rest[1] != '\t') {
		return nil, false
	}
	e.Marker = rest[:1]
	rest = rest[1:]
	body := strings.TrimLeft(rest, " \t")
	e.MarkerSpace = rest[:len(rest)-len(body)]
	rest = body

	if rest == "" {
		return nil, false
	}

	if rest[0] == '*' || rest[0] == '_' {
		delim := rest[:1]
		end := strings.Index(rest[1:], delim)
		if end <= 0 {
			return nil, false
		}
		kind := rest[1 : end+1]
		if strings.ContainsAny(kind, "[]()") || strings.TrimSpace(kind) != kind {
			return nil, false
		}
		after := rest[end+2:]
		open := strings.IndexByte(after, '[')
		if open < 0 || !kindSeparators[strings.TrimSpace(after[:open])] {
			return nil, false
		}
		e.Kind = kind
		e.KindDelim = delim
		e.KindSep = after[:open]
		rest = after[open:]
	}

	title, dest, remainder, ok := parseLink(rest)
	if !ok {
		return nil, false
	}
	e.Title = title
	e.Dest = dest
	e.URL = destinationURL(dest)

	annotation := strings.TrimLeftFunc(remainder, unicode.IsSpace)
	e.AnnotSpace = remainder[:len(remainder)-len(annotation)]
	e.Annotation = annotation
	e.Free = !domain.IsNotFree(annotation)

	return e, true
}

// FormatEntry writes an entry back as a list item.
// For a parsed entry the result is identical to the source line. Entries
// built in code (no list marker) get the canonical "* *Kind* - [Title](URL)"
// layout.
func FormatEntry(e *domain.Entry) string {
	if e.Marker == "" {
		return formatNewEntry(e)
	}

	var b strings.Builder
	b.WriteString(e.Indent)
	b.WriteString(e.Marker)
	b.WriteString(e.MarkerSpace)

	if e.Kind != "" {
		b.WriteString(e.KindDelim)
		b.WriteString(e.Kind)
		b.WriteString(e.KindDelim)
		b.WriteString(e.KindSep)
	}

	dest := e.Dest
	if destinationURL(dest) != e.URL {
		dest = e.URL
	}
	writeLink(&b, e.Title, dest)

	b.WriteString(e.AnnotSpace)
	b.WriteString(e.Annotation)

	return b.String()
}

func formatNewEntry(e *domain.Entry) string {
	var b strings.Builder
	b.WriteString(e.Indent)
	b.WriteString("* ")
	if e.Kind != "" {
		b.WriteString("*" + e.Kind + "* - ")
	}
	writeLink(&b, e.Title, e.URL)
	if e.Annotation != "" {
		b.WriteByte(' ')
		b.WriteString(e.Annotation)
	}
	return b.String()
}

func writeLink(b *strings.Builder, title, dest string) {
	b.WriteByte('[')
	b.WriteString(title)
	b.WriteString("](")
	b.WriteString(dest)
	b.WriteByte(')')
}

// parseLink reads an inline link "[text](destination)" at the start of s.
// Brackets in the text and parentheses in the destination may nest.
func parseLink(s string) (text, dest, rest string, ok bool) {
	if !strings.HasPrefix(s, "[") {
		return "", "", "", false
	}

	closeText := matchClosing(s, 0, '[', ']')
	if closeText < 0 || closeText+1 >= len(s) || s[closeText+1] != '(' {
		return "", "", "", false
	}

	closeDest := matchClosing(s, closeText+1, '(', ')')
	if closeDest < 0 {
		return "", "", "", false
	}

	return s[1:closeText], s[closeText+2 : closeDest], s[closeDest+1:], true
}

// destinationURL extracts the URL from the text between the parentheses
// of an inline link, dropping angle brackets and an optional link title.
// Text that is not a valid destination is returned unchanged.
// Example: `<https://example.com> "Home"` -> "https://example.com"
func destinationURL(raw string) string {
	s := strings.TrimLeft(raw, " \t")

	var dest, tail string
	if strings.HasPrefix(s, "<") {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return raw
		}
		dest, tail = s[1:end], s[end+1:]
	} else {
		end := strings.IndexAny(s, " \t")
		if end < 0 {
			return s
		}
		dest, tail = s[:end], s[end:]
	}

	tail = strings.TrimSpace(tail)
	if tail != "" && !isLinkTitle(tail) {
		return raw
	}
	return dest
}

// isLinkTitle reports whether s is a quoted link title: "t", 't' or (t).
func isLinkTitle(s string) bool {
	if len(s) < 2 {
		return false
	}
	switch s[0] {
	case '"', '\'':
		return s[len(s)-1] == s[0]
	case '(':
		return s[len(s)-1] == ')'
	}
	return false
}

// matchClosing returns the index of the delimiter closing the one at start,
// honoring backslash escapes, or -1.
func matchClosing(s string, start int, open, close byte) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isMarker(c byte) bool {
	return c == '*' || c == '-' || c == '+'
}

// isListItem reports whether a line is an unordered list item.
func isListItem(line string) bool {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	return len(rest) >= 2 && isMarker(rest[0]) && (rest[1] == ' ' || rest[1] == '\t')
}

var bareURL = xurls.Relaxed()

// ExtractLinks returns the link destinations found in a line of prose:
// inline markdown links first, then bare URLs outside of them.
// Example: "See the [Git guide](../git/index.md)." -> ["../git/index.md"]
func ExtractLinks(text string) []string {
	var links []string
	var outside strings.Builder

	for i := 0; i < len(text); {
		if text[i] == '[' {
			if _, dest, rest, ok := parseLink(text[i:]); ok {
				links = append(links, destinationURL(dest))
				i = len(text) - len(rest)
				outside.WriteByte(' ')
				continue
			}
		}
		outside.WriteByte(text[i])
		i++
	}

	links = append(links, bareURL.FindAllString(outside.String(), -1)...)
	return links
}
