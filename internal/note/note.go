package note

// Config controls how notes are built from a URL and title.
type Config struct {
	// Template is the note body template with {{frontmatterKey}}, {{url}}
	// and {{title}} placeholders.
	Template string

	// FrontmatterKey is the value substituted for {{frontmatterKey}}.
	FrontmatterKey string

	// Style selects the file-name sanitization style.
	Style FilenameStyle
}

// Note is a rendered note ready to be placed in the vault.
//
// FileName and Content are computed when creating a note via New; Path is
// filled in by the placement step once the destination is resolved.
type Note struct {
	// URL is the page the note was converted from.
	URL string

	// Title is the extracted page title.
	Title string

	// FileName is the sanitized file name, .md extension included.
	FileName string

	// Content is the rendered note text.
	Content string

	// Path is the vault location the note was created at.
	Path string
}

// New builds a Note from a URL and its extracted title.
func New(url, title string, cfg Config) *Note {
	return &Note{
		URL:      url,
		Title:    title,
		FileName: FileName(title, cfg.Style),
		Content:  Render(cfg.Template, cfg.FrontmatterKey, url, title),
	}
}
