package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/sources/markdown"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportEntry is the serialized form of one resource entry.
type ExportEntry struct {
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Title      string `json:"title" yaml:"title"`
	URL        string `json:"url" yaml:"url"`
	Free       bool   `json:"free" yaml:"free"`
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Line       int    `json:"line" yaml:"line"`
}

// ExportCategory is the serialized form of one section.
type ExportCategory struct {
	Name           string        `json:"name" yaml:"name"`
	Slug           string        `json:"slug" yaml:"slug"`
	CrossReference bool          `json:"cross_reference,omitempty" yaml:"cross_reference,omitempty"`
	Links          []string      `json:"links,omitempty" yaml:"links,omitempty"`
	Entries        []ExportEntry `json:"entries" yaml:"entries"`
}

// ExportDocument is the serialized form of a reading list.
type ExportDocument struct {
	Title      string           `json:"title,omitempty" yaml:"title,omitempty"`
	Categories []ExportCategory `json:"categories" yaml:"categories"`
}

// NewExportCategory converts a category, collecting prose links for
// cross-reference sections.
func NewExportCategory(c *domain.Category) ExportCategory {
	ec := ExportCategory{
		Name:           c.Name,
		Slug:           c.Slug,
		CrossReference: c.CrossReference(),
		Entries:        make([]ExportEntry, 0, len(c.Entries)),
	}
	for _, p := range c.Prose {
		ec.Links = append(ec.Links, markdown.ExtractLinks(p)...)
	}
	for _, e := range c.Entries {
		ec.Entries = append(ec.Entries, ExportEntry{
			Kind:       e.Kind,
			Title:      e.Title,
			URL:        e.URL,
			Free:       e.Free,
			Annotation: e.Annotation,
			Line:       e.Line,
		})
	}
	return ec
}

// NewExportDocument converts a whole document.
func NewExportDocument(doc *domain.Document) ExportDocument {
	out := ExportDocument{
		Title:      doc.Title,
		Categories: make([]ExportCategory, 0, len(doc.Categories)),
	}
	for _, c := range doc.Categories {
		out.Categories = append(out.Categories, NewExportCategory(c))
	}
	return out
}

// Export serializes the document as JSON or YAML.
func Export(doc *domain.Document, format string) ([]byte, error) {
	out := NewExportDocument(doc)

	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json export: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml export: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// ContentType returns the HTTP content type for an export format.
func ContentType(format string) string {
	switch format {
	case FormatYAML, "yml":
		return "application/yaml"
	default:
		return "application/json"
	}
}
