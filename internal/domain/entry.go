package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry represents one resource line of the reading list.
//
// The presentation fields keep enough of the original markup to write the
// line back byte for byte. Everything under "Index state" lives only in the
// index and the store; it is never written to the document.
type Entry struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is a name-based UUID derived from Category, Title and URL.
	ID string

	// Category is the enclosing level-2 heading.
	// Example: Python
	Category string

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Kind is the medium label (Book, Video, Article, ...).
	// Empty for bare links.
	Kind string

	// Title is the link text.
	Title string

	// URL is the link destination without angle brackets or link title.
	URL string

	// Free is false when the annotation marks the resource as not free.
	Free bool

	// Annotation is the raw text following the link, without the
	// leading whitespace. Example: *(Not free!)*
	Annotation string

	// ─────────────────────────────
	// Presentation (round-trip)
	// ─────────────────────────────

	Indent      string // leading whitespace before the list marker
	Marker      string // "*", "-" or "+"
	MarkerSpace string // whitespace after the list marker
	KindDelim   string // "*" or "_" around the kind, empty for bare links
	KindSep     string // text between the closing kind delimiter and "[", ex: " - "
	Dest        string // raw text between "(" and ")", ex: <https://x> "Home"
	AnnotSpace  string // whitespace between ")" and the annotation
	Line        int    // 1-based line in the source document

	// ─────────────────────────────
	// Index state
	// ─────────────────────────────

	// Sources indicates where this entry was loaded from.
	// Example: markdown
	Sources []string

	// Counter is the number of redirects served for this entry.
	Counter int64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Disabled marks an entry that disappeared from the source.
	// It may be garbage-collected later.
	Disabled bool
}

// KnownKinds is the default set of medium labels used in the reading list.
var KnownKinds = []string{
	"Article", "Blog", "Book", "Books", "Course", "Guide",
	"Paper", "Slides", "Tutorial", "Video",
}

// IsBare reports whether the entry has no kind prefix.
func (e *Entry) IsBare() bool {
	return e.Kind == ""
}

// EntryID builds the stable identifier of an entry.
// The same category, title and URL always produce the same ID.
func EntryID(category, title, url string) string {
	name := strings.Join([]string{category, title, url}, "\x00")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// IsNotFree reports whether an annotation marks a resource as paid.
func IsNotFree(annotation string) bool {
	return strings.Contains(strings.ToLower(annotation), "not free")
}

// Slugify turns a category name into a URL-friendly identifier.
// Example: "Git/version control systems (VCS)" -> "git-version-control-systems-vcs"
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == '+':
			// keep "C++" and friends distinguishable
			b.WriteString("p")
			dash = false
		case r == '#':
			b.WriteString("sharp")
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
