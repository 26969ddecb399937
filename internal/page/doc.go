// Package page extracts display titles from fetched HTML pages.
//
// Extraction never fails: when a document carries no usable <title>, the
// title falls back to parts of the page URL, so every conversion has a
// non-empty title to name its note after.
//
//	title := page.Title(html, "https://example.com/blog/my-post")
//	// "My Post Title" from <title>, or "my-post", or "example.com"
package page
