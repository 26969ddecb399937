package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// setupTestStore creates an in-memory store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created := Conversion{
		URL:    "https://example.com/blog/my-post",
		Title:  "My Post Title",
		Path:   "/vault/my-post-title.md",
		Status: StatusCreated,
	}
	failed := Conversion{
		URL:    "https://example.com/broken",
		Status: StatusFailed,
		Error:  "could not fetch the page through the proxy",
	}

	if err := store.Record(ctx, created); err != nil {
		t.Fatalf("Record(created) error = %v", err)
	}
	if err := store.Record(ctx, failed); err != nil {
		t.Fatalf("Record(failed) error = %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent() returned %d conversions, want 2", len(recent))
	}

	// Newest first.
	if recent[0].URL != failed.URL {
		t.Errorf("Recent()[0].URL = %q, want the later conversion %q", recent[0].URL, failed.URL)
	}
	if recent[0].Status != StatusFailed {
		t.Errorf("Recent()[0].Status = %q, want %q", recent[0].Status, StatusFailed)
	}
	if recent[0].Error != failed.Error {
		t.Errorf("Recent()[0].Error = %q, want %q", recent[0].Error, failed.Error)
	}

	got := recent[1]
	if got.URL != created.URL || got.Title != created.Title || got.Path != created.Path {
		t.Errorf("Recent()[1] = %+v, want fields of %+v", got, created)
	}
	if got.Status != StatusCreated {
		t.Errorf("Recent()[1].Status = %q, want %q", got.Status, StatusCreated)
	}
}

func TestStore_RecordFillsIDAndTimestamp(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	if err := store.Record(ctx, Conversion{URL: "https://example.com", Status: StatusCreated}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	recent, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Recent() returned %d conversions, want 1", len(recent))
	}

	if recent[0].ID == "" {
		t.Error("Record() left ID empty, want a generated UUID")
	}
	if recent[0].CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want a recent timestamp", recent[0].CreatedAt)
	}
}

func TestStore_RecentLimit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, Conversion{URL: "https://example.com", Status: StatusCreated}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	recent, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Recent(3) returned %d conversions, want 3", len(recent))
	}
}

func TestStore_RecentEmpty(t *testing.T) {
	store := setupTestStore(t)

	recent, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Recent() on an empty store returned %d conversions", len(recent))
	}
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", path, err)
	}
	defer store.Close()

	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}

	if err := store.Record(context.Background(), Conversion{URL: "https://example.com", Status: StatusCreated}); err != nil {
		t.Errorf("Record() on file-backed store error = %v", err)
	}
}
