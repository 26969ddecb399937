package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_PageHTML(t *testing.T) {
	const target = "https://example.com/blog/my post"

	var gotTarget string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.URL.Query().Get("url")
		json.NewEncoder(w).Encode(map[string]any{
			"contents": "<title>My Post Title</title>",
			"status":   map[string]any{"http_code": 200},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	html, err := client.PageHTML(context.Background(), target)
	if err != nil {
		t.Fatalf("PageHTML() error = %v", err)
	}

	if html != "<title>My Post Title</title>" {
		t.Errorf("PageHTML() = %q, want envelope contents", html)
	}
	// The target must survive the percent-encoded query round trip intact,
	// spaces and scheme included.
	if gotTarget != target {
		t.Errorf("proxy received url %q, want %q", gotTarget, target)
	}
}

func TestClient_PageHTML_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.PageHTML(context.Background(), "https://example.com")
	if !errors.Is(err, ErrProxyFailed) {
		t.Errorf("PageHTML() error = %v, want ErrProxyFailed", err)
	}
}

func TestClient_PageHTML_ProxyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	_, err := client.PageHTML(context.Background(), "https://example.com")
	if !errors.Is(err, ErrProxyFailed) {
		t.Errorf("PageHTML() error = %v, want ErrProxyFailed", err)
	}
}

func TestClient_PageHTML_EmptyContents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": {"http_code": 200}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	html, err := client.PageHTML(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("PageHTML() error = %v", err)
	}
	// An envelope without contents is a valid response; the empty page is
	// the title extractor's problem, not a fetch failure.
	if html != "" {
		t.Errorf("PageHTML() = %q, want empty string", html)
	}
}
