package note

import (
	"regexp"
	"strings"
)

// FilenameStyle selects how titles are turned into file names.
type FilenameStyle int

const (
	// StyleDashed lower-cases the name and promotes hyphenated phrases to
	// em-dashes so the plain hyphen is free to act as the word separator.
	// The conversion pipeline uses this style.
	StyleDashed FilenameStyle = iota

	// StylePlain keeps the title's casing and its plain hyphens.
	StylePlain
)

var (
	hyphenRuns  = regexp.MustCompile(`\s*-+\s*`)
	plainStrip  = regexp.MustCompile(`[^\w\s-]`)
	dashedStrip = regexp.MustCompile(`[^\w\s—]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// FileName converts a title into a filesystem-safe Markdown file name.
//
// StylePlain strips everything outside word characters, whitespace and
// hyphens, trims, then collapses each whitespace run to a single hyphen:
//
//	FileName("My Post Title", StylePlain) // "My-Post-Title.md"
//
// StyleDashed first normalizes hyphen runs and their surrounding spacing
// to an em-dash, strips everything outside word characters, whitespace
// and em-dashes, collapses whitespace to hyphens, and lower-cases:
//
//	FileName("My Post Title", StyleDashed) // "my-post-title.md"
//	FileName("Notes - Ideas", StyleDashed) // "notes—ideas.md"
//
// Both styles are pure functions of the title. Word characters are ASCII,
// so a title that strips down to nothing names its file "untitled.md".
func FileName(title string, style FilenameStyle) string {
	var base string
	switch style {
	case StylePlain:
		base = plainStrip.ReplaceAllString(title, "")
		base = strings.TrimSpace(base)
		base = spaceRuns.ReplaceAllString(base, "-")
	default:
		base = hyphenRuns.ReplaceAllString(title, "—")
		base = dashedStrip.ReplaceAllString(base, "")
		base = strings.TrimSpace(base)
		base = spaceRuns.ReplaceAllString(base, "-")
		base = strings.ToLower(base)
	}

	if base == "" {
		base = "untitled"
	}

	return base + ".md"
}
