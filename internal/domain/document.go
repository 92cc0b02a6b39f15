package domain

// LineKind classifies a source line of the reading list.
type LineKind int

const (
	LineBlank LineKind = iota
	LineTitle
	LineHeading
	LineEntry
	LineProse
	LineUnparsedItem // list item that is neither a kinded nor a bare entry
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineTitle:
		return "title"
	case LineHeading:
		return "heading"
	case LineEntry:
		return "entry"
	case LineProse:
		return "prose"
	case LineUnparsedItem:
		return "unparsed-item"
	default:
		return "unknown"
	}
}

// Line is one classified line of the source document.
type Line struct {
	Num      int    // 1-based
	Raw      string // without the line terminator
	CR       bool   // line was terminated by "\r\n"
	Kind     LineKind
	Category string // enclosing category, empty before the first heading
	Entry    *Entry // set when Kind == LineEntry
}

// Category is a level-2 section of the reading list.
type Category struct {
	Name    string
	Slug    string
	Line    int
	Entries []*Entry
	Prose   []string

	// Unparsed counts list items that could not be read as entries.
	Unparsed int
}

// CrossReference reports whether the section only points elsewhere
// (prose, no entries).
func (c *Category) CrossReference() bool {
	return len(c.Entries) == 0 && len(c.Prose) > 0
}

// Empty reports whether the section has no body at all.
func (c *Category) Empty() bool {
	return len(c.Entries) == 0 && len(c.Prose) == 0 && c.Unparsed == 0
}

// Document is a parsed reading list.
type Document struct {
	Title      string
	TitleLine  int // 0 when the document has no title
	Intro      []string
	Categories []*Category
	Lines      []*Line

	// TrailingNewline records whether the source ended with a newline.
	TrailingNewline bool
}

// Entries returns every entry in document order.
func (d *Document) Entries() []*Entry {
	var entries []*Entry
	for _, c := range d.Categories {
		entries = append(entries, c.Entries...)
	}
	return entries
}

// Category returns the category with the given name or slug.
func (d *Document) Category(nameOrSlug string) (*Category, bool) {
	for _, c := range d.Categories {
		if c.Name == nameOrSlug || c.Slug == nameOrSlug {
			return c, true
		}
	}
	return nil, false
}
