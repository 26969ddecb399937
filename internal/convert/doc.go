// Package convert provides the orchestration logic for turning dropped
// URLs into Markdown notes.
//
// # Manager
//
// The Manager coordinates the entire conversion pipeline:
//
//  1. Parse input URLs
//  2. Fetch each page through the CORS proxy
//  3. Extract a title (with URL fallbacks)
//  4. Sanitize the title into a file name and render the template
//  5. Place the note in the vault
//  6. Record the outcome to history and emit events
//
// # Basic Usage
//
//	manager := convert.NewManager(settings,
//	    convert.WithEventFunc(func(event convert.Event) {
//	        fmt.Println(event.Message)
//	    }),
//	)
//
//	results, err := manager.ConvertAll(ctx, "https://example.com/blog/my-post\nhttps://example.com/about")
//
// # Concurrency
//
// ConvertAll dispatches one goroutine per URL with no limit, so a drop
// of N URLs drives InFlight() to N while they run. Conversions share no
// state beyond that counter: each writes its own target path, and a
// failure in one never cancels the others. There are no retries and no
// fetch timeout; an unresponsive proxy stalls only its own conversion.
//
// # Events
//
// Progress is reported through a callback receiving Event values:
//
//	type Event struct {
//	    Message string
//	    Level   Level // Info, Verbose, Warning, Error, Success
//	    Result  *Result
//	}
//
// Completion events carry the Result so interfaces can distinguish the
// note-exists conflict (specific, longer-lived notice) from other
// failures (short generic notice, detail in the diagnostic log).
package convert
