package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/notedrop/notedrop/internal/config"
	"github.com/notedrop/notedrop/internal/fetch"
	"github.com/notedrop/notedrop/internal/history"
	"github.com/notedrop/notedrop/internal/note"
	"github.com/notedrop/notedrop/internal/page"
	"github.com/notedrop/notedrop/internal/vault"
	"golang.org/x/sync/errgroup"
)

// Manager coordinates URL-to-note conversions.
//
// A Manager holds a value copy of the settings, so settings edits made
// while conversions run never reach in-flight pipelines.
type Manager struct {
	settings config.Settings
	fetcher  *fetch.Client
	vault    *vault.Vault
	store    *history.Store
	logger   *slog.Logger
	style    note.FilenameStyle
	onEvent  func(Event)
	openNote func(path string) error

	inFlight int32
}

// Option configures a Manager.
type Option func(*Manager)

// WithEventFunc sets the callback receiving progress and completion
// events. Events may arrive from concurrent conversions.
func WithEventFunc(fn func(Event)) Option {
	return func(m *Manager) {
		m.onEvent = fn
	}
}

// WithHistory sets the store that records finished conversions.
// Recording is best-effort: a failed insert is logged, never surfaced.
func WithHistory(store *history.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithLogger sets the diagnostic logger. Without one, diagnostics are
// discarded; user-facing messaging always flows through events instead.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithFilenameStyle overrides the dashed file-name style.
func WithFilenameStyle(style note.FilenameStyle) Option {
	return func(m *Manager) {
		m.style = style
	}
}

// WithNoteOpener sets the callback that opens a created note when the
// open-new-note setting is on. Without one the setting has no effect.
func WithNoteOpener(fn func(path string) error) Option {
	return func(m *Manager) {
		m.openNote = fn
	}
}

// NewManager creates a Manager for the given settings.
func NewManager(settings config.Settings, opts ...Option) *Manager {
	m := &Manager{
		settings: settings,
		fetcher:  fetch.NewClient(settings.ProxyURL),
		vault:    vault.New(settings.VaultPath, settings.NewNoteFolder),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		style:    note.StyleDashed,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// InFlight returns the number of conversions currently running.
func (m *Manager) InFlight() int {
	return int(atomic.LoadInt32(&m.inFlight))
}

// ParseURLList extracts the URLs from a newline-separated input block.
// Lines are trimmed; only http:// and https:// lines survive.
func ParseURLList(input string) []string {
	var urls []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && (strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://")) {
			urls = append(urls, line)
		}
	}
	return urls
}

// Convert runs the full pipeline for one URL: fetch, extract the title,
// build the note, place it in the vault. Every failure is caught here
// and classified into the Result; Convert never panics or escalates.
func (m *Manager) Convert(ctx context.Context, rawURL string) Result {
	atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)

	return m.convert(ctx, rawURL)
}

// ConvertAll converts every URL in a newline-separated input block, each
// on its own goroutine. The in-flight count climbs by one per URL at
// dispatch and falls as conversions settle; completions land in any
// order, but results keep the input order.
//
// The returned error is the first task failure, for exit-code purposes.
// A failing URL never stops its siblings, and per-URL outcomes are in
// the results either way. Input without any URL yields nil results.
func (m *Manager) ConvertAll(ctx context.Context, input string) ([]Result, error) {
	urls := ParseURLList(input)
	if len(urls) == 0 {
		return nil, nil
	}

	results := make([]Result, len(urls))

	// No SetLimit: every URL in the drop runs at once.
	var g errgroup.Group
	for i, rawURL := range urls {
		i, rawURL := i, rawURL
		atomic.AddInt32(&m.inFlight, 1)
		g.Go(func() error {
			defer atomic.AddInt32(&m.inFlight, -1)
			results[i] = m.convert(ctx, rawURL)
			return results[i].Err
		})
	}

	err := g.Wait()
	return results, err
}

func (m *Manager) convert(ctx context.Context, rawURL string) Result {
	res := Result{URL: rawURL}
	log := m.logger.With("url", rawURL)

	m.event(Event{Message: fmt.Sprintf("Fetching %s", rawURL), Level: LevelVerbose})

	html, err := m.fetcher.PageHTML(ctx, rawURL)
	if err != nil {
		res.Err = err
		return m.finish(ctx, res, log)
	}

	res.Title = page.Title(html, rawURL)
	m.event(Event{Message: fmt.Sprintf("Found title: %s", res.Title), Level: LevelVerbose})

	n := note.New(rawURL, res.Title, note.Config{
		Template:       m.settings.Template,
		FrontmatterKey: m.settings.FrontmatterKey,
		Style:          m.style,
	})

	path := m.vault.Resolve(n.FileName, placement(m.settings.NoteLocation), m.settings.CustomNoteLocation)
	if err := m.vault.CreateNote(path, n.Content); err != nil {
		res.Err = err
		return m.finish(ctx, res, log)
	}
	res.Path = path

	if m.settings.OpenNewNote && m.openNote != nil {
		if err := m.openNote(path); err != nil {
			m.event(Event{Message: fmt.Sprintf("Could not open %s", n.FileName), Level: LevelWarning})
			log.Warn("opening new note failed", "path", path, "error", err)
		}
	}

	return m.finish(ctx, res, log)
}

// finish records the outcome and emits the completion event. The note
// conflict gets a specific message naming the colliding title; other
// failures get a short generic message with the detail kept to the
// diagnostic log.
func (m *Manager) finish(ctx context.Context, res Result, log *slog.Logger) Result {
	m.record(ctx, res, log)

	switch res.Failure() {
	case FailureNone:
		m.event(Event{Message: fmt.Sprintf("Created note %s", filepath.Base(res.Path)), Level: LevelSuccess, Result: &res})
		log.Debug("conversion finished", "title", res.Title, "path", res.Path)
	case FailureNoteExists:
		m.event(Event{Message: fmt.Sprintf("A note named %q already exists", res.Title), Level: LevelError, Result: &res})
		log.Error("conversion failed", "reason", "note exists", "title", res.Title, "error", res.Err)
	case FailureFetch:
		m.event(Event{Message: "Could not fetch the page", Level: LevelError, Result: &res})
		log.Error("conversion failed", "reason", "fetch", "error", res.Err)
	default:
		m.event(Event{Message: "Could not create the note", Level: LevelError, Result: &res})
		log.Error("conversion failed", "error", res.Err)
	}

	return res
}

func (m *Manager) record(ctx context.Context, res Result, log *slog.Logger) {
	if m.store == nil {
		return
	}

	c := history.Conversion{
		URL:    res.URL,
		Title:  res.Title,
		Path:   res.Path,
		Status: history.StatusCreated,
	}
	if res.Err != nil {
		c.Status = history.StatusFailed
		c.Error = res.Err.Error()
	}

	if err := m.store.Record(ctx, c); err != nil {
		log.Warn("recording conversion failed", "error", err)
	}
}

func (m *Manager) event(e Event) {
	if m.onEvent != nil {
		m.onEvent(e)
	}
}

func placement(loc config.NoteLocation) vault.Location {
	switch loc {
	case config.NoteLocationVault:
		return vault.LocationRoot
	case config.NoteLocationCustom:
		return vault.LocationCustom
	default:
		return vault.LocationPreferred
	}
}
