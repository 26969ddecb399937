// Package note builds Markdown notes from a URL and an extracted page
// title, and reads created notes back.
//
// # Building Notes
//
// New computes the file name and rendered content in one step:
//
//	n := note.New(url, title, note.Config{
//	    Template:       settings.Template,
//	    FrontmatterKey: settings.FrontmatterKey,
//	    Style:          note.StyleDashed,
//	})
//	fmt.Println(n.FileName) // "my-post-title.md"
//
// # File Names
//
// FileName turns a title into a filesystem-safe name. StyleDashed (the
// pipeline default) lower-cases and promotes " - " phrases to em-dashes;
// StylePlain keeps casing and plain hyphens:
//
//	note.FileName("Go - The Good Parts", note.StyleDashed) // "go—the-good-parts.md"
//	note.FileName("Go - The Good Parts", note.StylePlain)  // "Go---The-Good-Parts.md"
//
// # Templates
//
// Render substitutes {{frontmatterKey}}, {{url}} and {{title}} in that
// order. Substitution is first-occurrence-only: a template that repeats
// {{url}} keeps the second copy as literal text.
//
// # Reading Notes Back
//
// Parse and ParseFile split an existing note into frontmatter and body:
//
//	parsed, err := note.ParseFile("/vault/my-post-title.md")
//	fmt.Println(parsed.Frontmatter["url"])
package note
