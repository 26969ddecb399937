package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrProxyFailed indicates a page could not be retrieved through the proxy:
// the request failed outright or the response was not the proxy's JSON
// envelope. The proxy is treated as opaque, so callers get no finer detail.
var ErrProxyFailed = errors.New("could not fetch the page through the proxy")

// Client fetches remote pages through a CORS-bypassing proxy endpoint.
//
// Client provides:
//   - Percent-encoded forwarding of the target URL as a query parameter
//   - Decoding of the proxy's JSON envelope down to its contents field
//   - A configured User-Agent header
//
// Example usage:
//
//	client := NewClient("https://api.allorigins.win/get")
//	html, err := client.PageHTML(ctx, "https://example.com/blog/my-post")
type Client struct {
	httpClient *http.Client
	proxyURL   string
	userAgent  string
}

// NewClient creates a Client for the given proxy endpoint.
//
// The underlying HTTP client carries no timeout: a fetch that never
// completes stalls only its own conversion and is never retried or
// cancelled on the caller's behalf.
func NewClient(proxyURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		proxyURL:   proxyURL,
		userAgent:  "notedrop",
	}
}

// envelope mirrors the proxy's JSON response body. Only contents is
// consumed; the proxy's status metadata is ignored.
type envelope struct {
	Contents string `json:"contents"`
}

// PageHTML retrieves the raw HTML of the target URL through the proxy.
//
// The target is passed percent-encoded as the url query parameter:
//
//	GET <proxy>?url=<percent-encoded target>
//
// Returns an error wrapping ErrProxyFailed if the request fails or the
// body cannot be decoded as the envelope. There is no status-code-specific
// handling: an error page from the proxy fails JSON decoding and surfaces
// the same way as a network failure.
func (c *Client) PageHTML(ctx context.Context, target string) (string, error) {
	requestURL := c.proxyURL + "?url=" + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProxyFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProxyFailed, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("%w: decoding envelope: %v", ErrProxyFailed, err)
	}

	return env.Contents, nil
}
