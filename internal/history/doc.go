// Package history keeps a local SQLite log of finished conversions.
//
// Every conversion lands here once, success or failure, so `notedrop
// history` can answer "what did I drop last week and where did it go".
// Recording is best-effort: callers log a failed insert and move on, a
// conversion never fails because its history row did.
//
//	store, err := history.Open(path) // or ":memory:"
//	defer store.Close()
//
//	store.Record(ctx, history.Conversion{
//	    URL:    "https://example.com/blog/my-post",
//	    Title:  "My Post Title",
//	    Path:   "/vault/my-post-title.md",
//	    Status: history.StatusCreated,
//	})
//
//	recent, err := store.Recent(ctx, 20)
package history
