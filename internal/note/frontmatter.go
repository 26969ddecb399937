package note

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/frontmatter"
)

// ParsedNote is a note read back from the vault, split into its
// frontmatter block and Markdown body.
type ParsedNote struct {
	// Frontmatter holds the decoded metadata keys. Empty when the note
	// has no frontmatter block.
	Frontmatter map[string]any

	// Body is the Markdown content without the frontmatter delimiters.
	Body string
}

// Parse splits a note into frontmatter and body.
//
// Notes without a frontmatter block parse successfully with an empty map.
func Parse(r io.Reader) (*ParsedNote, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return &ParsedNote{Frontmatter: meta, Body: string(body)}, nil
}

// ParseFile reads and parses the note at path.
func ParseFile(path string) (*ParsedNote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
