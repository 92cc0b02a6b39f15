package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

// MaxLineLength is the longest line Parse accepts, terminator excluded.
const MaxLineLength = 1 << 20

// Parse reads a reading list and classifies every line.
//
// The first level-1 heading is the title, level-2 headings open categories,
// list items under a category become entries when they match one of the
// two accepted shapes. Nothing is normalized: Format(Parse(x)) == x.
// A line longer than MaxLineLength fails with bufio.ErrTooLong.
func Parse(r io.Reader) (*domain.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength+2)
	scanner.Split(scanRawLines)

	var data bytes.Buffer
	for num := 1; scanner.Scan(); num++ {
		line := scanner.Bytes()
		if len(bytes.TrimRight(line, "\r\n")) > MaxLineLength {
			return nil, fmt.Errorf("failed to read reading list: line %d: %w", num, bufio.ErrTooLong)
		}
		data.Write(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reading list: %w", err)
	}
	return ParseBytes(data.Bytes()), nil
}

// scanRawLines is bufio.ScanLines keeping the line terminator.
func scanRawLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ParseBytes is Parse over an in-memory source.
func ParseBytes(data []byte) *domain.Document {
	doc := &domain.Document{}
	if len(data) == 0 {
		return doc
	}

	raw := string(data)
	if strings.HasSuffix(raw, "\n") {
		doc.TrailingNewline = true
		raw = raw[:len(raw)-1]
	}

	var current *domain.Category
	inFence := false

	for i, text := range strings.Split(raw, "\n") {
		line := &domain.Line{Num: i + 1}
		if strings.HasSuffix(text, "\r") {
			line.CR = true
			text = text[:len(text)-1]
		}
		line.Raw = text
		if current != nil {
			line.Category = current.Name
		}

		trimmed := strings.TrimSpace(text)
		switch {
		case isFence(trimmed):
			inFence = !inFence
			line.Kind = domain.LineProse

		case inFence:
			line.Kind = domain.LineProse

		case trimmed == "":
			line.Kind = domain.LineBlank

		case doc.TitleLine == 0 && current == nil && isHeading(text, 1):
			line.Kind = domain.LineTitle
			doc.Title = headingText(text, 1)
			doc.TitleLine = line.Num

		case isHeading(text, 2):
			line.Kind = domain.LineHeading
			name := headingText(text, 2)
			current = &domain.Category{
				Name: name,
				Slug: domain.Slugify(name),
				Line: line.Num,
			}
			line.Category = name
			doc.Categories = append(doc.Categories, current)

		case current != nil && isListItem(text):
			entry, ok := ParseEntry(text)
			if !ok {
				line.Kind = domain.LineUnparsedItem
				current.Unparsed++
				break
			}
			entry.Category = current.Name
			entry.Line = line.Num
			line.Kind = domain.LineEntry
			line.Entry = entry
			current.Entries = append(current.Entries, entry)

		default:
			line.Kind = domain.LineProse
		}

		if line.Kind == domain.LineProse {
			if current == nil {
				doc.Intro = append(doc.Intro, text)
			} else {
				current.Prose = append(current.Prose, text)
			}
		}

		doc.Lines = append(doc.Lines, line)
	}

	return doc
}

// Format writes a document back to text.
// Entry lines are rebuilt from their entries, every other line is copied.
func Format(doc *domain.Document) []byte {
	var buf bytes.Buffer
	for i, line := range doc.Lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if line.Kind == domain.LineEntry && line.Entry != nil {
			buf.WriteString(FormatEntry(line.Entry))
		} else {
			buf.WriteString(line.Raw)
		}
		if line.CR {
			buf.WriteByte('\r')
		}
	}
	if doc.TrailingNewline {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// isHeading reports whether line is an ATX heading of exactly the given level.
func isHeading(line string, level int) bool {
	prefix := strings.Repeat("#", level)
	if !strings.HasPrefix(line, prefix) {
		return false
	}
	rest := line[level:]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// headingText strips the markers of an ATX heading.
// Example: "## Python ##" -> "Python"
func headingText(line string, level int) string {
	text := strings.TrimSpace(line[level:])
	closed := strings.TrimRight(text, "#")
	if closed != text && (closed == "" || strings.HasSuffix(closed, " ")) {
		text = strings.TrimSpace(closed)
	}
	return text
}

func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}
