package page

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Title extracts a human-readable title for a fetched page.
//
// The first non-empty source wins:
//  1. The trimmed text of the document's first <title> element.
//  2. The segment after the final slash of the URL's path (a path ending
//     in a slash has none).
//  3. The URL's hostname.
//  4. The trimmed URL itself.
//
// Malformed HTML never fails extraction; the parser is lenient and a page
// without a usable title simply falls through the chain. The result is
// non-empty for any non-empty pageURL.
func Title(html, pageURL string) string {
	if title := documentTitle(html); title != "" {
		return title
	}
	if segment := lastPathSegment(pageURL); segment != "" {
		return segment
	}
	if host := hostname(pageURL); host != "" {
		return host
	}
	return strings.TrimSpace(pageURL)
}

func documentTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func lastPathSegment(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(u.Path, "/")
	return strings.TrimSpace(segments[len(segments)-1])
}

func hostname(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
