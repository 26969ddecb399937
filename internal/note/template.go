package note

import "strings"

// Render substitutes the template's placeholders in sequence:
// {{frontmatterKey}}, then {{url}}, then {{title}}.
//
// Each substitution replaces only the first occurrence of its
// placeholder; a template that repeats a placeholder keeps the later
// copies verbatim. Substituted values are inserted as-is with no
// escaping, so template authors are responsible for output validity.
func Render(template, frontmatterKey, url, title string) string {
	out := strings.Replace(template, "{{frontmatterKey}}", frontmatterKey, 1)
	out = strings.Replace(out, "{{url}}", url, 1)
	out = strings.Replace(out, "{{title}}", title, 1)
	return out
}
