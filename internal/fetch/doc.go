// Package fetch provides an HTTP client that retrieves pages through a
// CORS-bypassing proxy.
//
// The Client in this package handles:
//   - Forwarding the target URL percent-encoded as a query parameter
//   - Decoding the proxy's JSON envelope ({"contents": "<html>", ...})
//   - User-Agent headers
//
// # Basic Usage
//
//	client := fetch.NewClient(settings.ProxyURL)
//
//	html, err := client.PageHTML(ctx, "https://example.com/blog/my-post")
//	if errors.Is(err, fetch.ErrProxyFailed) {
//	    // network failure or malformed envelope; no finer detail exists
//	}
//
// # Failure Model
//
// The proxy is opaque. A refused connection surfaces the same way as an
// error page that fails envelope decoding: both come back wrapping
// ErrProxyFailed. Requests have no timeout and are never retried; an
// unresponsive proxy stalls only the conversion that hit it.
package fetch
