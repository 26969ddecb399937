package page

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		pageURL string
		want    string
	}{
		{
			name:    "title element",
			html:    "<html><head><title>My Post Title</title></head><body></body></html>",
			pageURL: "https://example.com/blog/my-post",
			want:    "My Post Title",
		},
		{
			name:    "title with surrounding whitespace",
			html:    "<title>\n  Spaced Out \t</title>",
			pageURL: "https://example.com/x",
			want:    "Spaced Out",
		},
		{
			name:    "first of several titles wins",
			html:    "<title>First</title><title>Second</title>",
			pageURL: "https://example.com/x",
			want:    "First",
		},
		{
			name:    "no title falls back to last path segment",
			html:    "<html><body><h1>heading</h1></body></html>",
			pageURL: "https://example.com/blog/my-post",
			want:    "my-post",
		},
		{
			name:    "empty title falls back to last path segment",
			html:    "<title>   </title>",
			pageURL: "https://example.com/blog/my-post",
			want:    "my-post",
		},
		{
			name:    "trailing slash leaves no segment, hostname wins",
			html:    "",
			pageURL: "https://example.com/articles/",
			want:    "example.com",
		},
		{
			name:    "bare host",
			html:    "",
			pageURL: "https://example.com",
			want:    "example.com",
		},
		{
			name:    "empty html",
			html:    "",
			pageURL: "https://example.com/notes/today",
			want:    "today",
		},
		{
			name:    "tag soup without title",
			html:    "<<<div><span>>>></p>",
			pageURL: "https://example.com/soup/",
			want:    "example.com",
		},
		{
			name:    "percent-encoded segment is decoded",
			html:    "",
			pageURL: "https://example.com/blog/my%20post",
			want:    "my post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Title(tt.html, tt.pageURL)
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitle_NeverEmpty(t *testing.T) {
	urls := []string{
		"https://example.com/blog/my-post",
		"https://example.com/articles/",
		"https://example.com",
		"not really a url",
	}

	for _, u := range urls {
		for _, html := range []string{"", "<title></title>", "<<<garbage>>>"} {
			if got := Title(html, u); got == "" {
				t.Errorf("Title(%q, %q) = empty string", html, u)
			}
		}
	}
}
