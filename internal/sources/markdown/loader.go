package markdown

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/utils"
)

// Loader handles loading and parsing of the reading list file
type Loader struct {
	filePath string
}

// NewLoader creates a new reading list loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the file the loader reads from
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads the reading list and returns the parsed document with its raw bytes
func (l *Loader) Load() (*domain.Document, []byte, error) {
	f, err := os.Open(l.filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open reading list: %w", err)
	}
	defer utils.MustClose(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read reading list: %w", err)
	}

	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}

	return doc, data, nil
}
