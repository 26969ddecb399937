// Package tui provides a Bubble Tea terminal user interface for notedrop.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/notedrop/notedrop/internal/config"
	"github.com/notedrop/notedrop/internal/convert"
	"github.com/notedrop/notedrop/internal/history"
	"github.com/notedrop/notedrop/internal/platform"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// Notice display durations. A note-name conflict stays on screen longer
// than the generic notices, since it names the colliding title.
const (
	noticeDuration         = 4 * time.Second
	conflictNoticeDuration = 8 * time.Second
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateConverting
	StateDone
)

// notice is a transient user message shown while conversions run.
type notice struct {
	message string
	level   convert.Level
	expires time.Time
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	textarea textarea.Model
	spinner  spinner.Model
	settings *config.Settings
	logger   *slog.Logger
	store    *history.Store

	// Per-drop pipeline
	manager *convert.Manager
	events  chan convert.Event

	notices  []notice
	results  []convert.Result
	inFlight int
	err      error
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model. The settings are threaded into every
// drop explicitly; the store may be nil when history is unavailable.
func NewModel(settings *config.Settings, logger *slog.Logger, store *history.Store) Model {
	ta := textarea.New()
	ta.Placeholder = "https://example.com/blog/my-post"
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(5)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:    StateInput,
		textarea: ta,
		spinner:  sp,
		settings: settings,
		logger:   logger,
		store:    store,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Message types
type (
	// EventMsg wraps a conversion event for the UI loop.
	EventMsg struct {
		Event convert.Event
	}

	// ConvertDoneMsg is sent when every conversion in a drop settles.
	ConvertDoneMsg struct {
		Results []convert.Result
		Err     error
	}

	// TickMsg drives the in-flight readout and notice expiry.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 4
		if w > 80 {
			w = 80
		}
		if w < 20 {
			w = 20
		}
		m.textarea.SetWidth(w)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "ctrl+s":
			if m.state == StateInput && strings.TrimSpace(m.textarea.Value()) != "" {
				return m.startDrop()
			}

		case "ctrl+l":
			m.verbose = !m.verbose

		case "q":
			if m.state == StateDone {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateDone {
				// Reset for the next drop
				m.state = StateInput
				m.notices = nil
				m.results = nil
				m.err = nil
				m.inFlight = 0
				m.manager = nil
				m.events = nil
				m.textarea.Reset()
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EventMsg:
		if m.notice(msg.Event) {
			// Keep only the latest notices
			if len(m.notices) > 10 {
				m.notices = m.notices[len(m.notices)-10:]
			}
		}
		if m.events != nil {
			cmds = append(cmds, waitEvent(m.events))
		}

	case ConvertDoneMsg:
		if len(msg.Results) == 0 && msg.Err == nil {
			// Nothing in the drop looked like a URL; stay on the input.
			m.state = StateInput
			m.notices = append(m.notices, notice{
				message: "No URLs found in the dropped text",
				level:   convert.LevelWarning,
				expires: time.Now().Add(noticeDuration),
			})
			m.textarea.Focus()
			return m, tea.Batch(textarea.Blink, tick())
		}
		m.state = StateDone
		m.results = msg.Results
		m.err = msg.Err
		m.inFlight = 0
		m.textarea.Blur()

	case TickMsg:
		now := time.Now()
		kept := m.notices[:0]
		for _, n := range m.notices {
			if n.expires.After(now) {
				kept = append(kept, n)
			}
		}
		m.notices = kept

		if m.state == StateConverting && m.manager != nil {
			m.inFlight = m.manager.InFlight()
		}
		// Ticks keep running while anything on screen still needs them.
		if m.state == StateConverting || len(m.notices) > 0 {
			cmds = append(cmds, tick())
		}
	}

	// Update the textarea while accepting input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startDrop builds a fresh pipeline for the textarea's URLs and switches
// to the converting state.
func (m Model) startDrop() (tea.Model, tea.Cmd) {
	input := m.textarea.Value()

	events := make(chan convert.Event, 64)
	opts := []convert.Option{
		convert.WithEventFunc(func(e convert.Event) { events <- e }),
		convert.WithNoteOpener(platform.OpenFile),
	}
	if m.logger != nil {
		opts = append(opts, convert.WithLogger(m.logger))
	}
	if m.store != nil {
		opts = append(opts, convert.WithHistory(m.store))
	}

	m.manager = convert.NewManager(*m.settings, opts...)
	m.events = events
	m.state = StateConverting
	m.notices = nil
	m.results = nil
	m.err = nil
	m.inFlight = len(convert.ParseURLList(input))
	m.textarea.Blur()

	return m, tea.Batch(
		startConversion(m.manager, events, input),
		waitEvent(events),
		tick(),
		m.spinner.Tick,
	)
}

// notice converts an event into a transient notice. Verbose events are
// dropped unless verbose mode is on; conflicts stay visible longer.
func (m *Model) notice(ev convert.Event) bool {
	if ev.Level == convert.LevelVerbose && !m.verbose {
		return false
	}

	duration := noticeDuration
	if ev.Result != nil && ev.Result.Failure() == convert.FailureNoteExists {
		duration = conflictNoticeDuration
	}

	m.notices = append(m.notices, notice{
		message: ev.Message,
		level:   ev.Level,
		expires: time.Now().Add(duration),
	})
	return true
}

// startConversion runs the whole drop in the background and reports the
// settled results. The events channel closes once nothing can emit on
// it anymore.
func startConversion(manager *convert.Manager, events chan convert.Event, input string) tea.Cmd {
	return func() tea.Msg {
		results, err := manager.ConvertAll(context.Background(), input)
		close(events)
		return ConvertDoneMsg{Results: results, Err: err}
	}
}

// waitEvent relays the next conversion event into the UI loop.
func waitEvent(events <-chan convert.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: ev}
	}
}

// tick returns a command for periodic UI refreshes.
func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Notedrop"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Drop URLs, get notes"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateDone:
		b.WriteString(m.viewDone())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Paste URLs, one per line:"))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("Vault: %s", m.settings.VaultPath)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("New notes: %s", locationLabel(m.settings))))
	b.WriteString("\n")

	if m.verbose {
		b.WriteString(dimStyle.Render("Verbose notices on"))
		b.WriteString("\n")
	}

	b.WriteString(m.renderNotices())

	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Processing %d note(s)...", m.inFlight)))
	b.WriteString("\n\n")

	b.WriteString(m.renderNotices())

	return b.String()
}

func (m Model) viewDone() string {
	var b strings.Builder

	created := 0
	for _, res := range m.results {
		if res.Created() {
			created++
		}
	}

	b.WriteString(boxStyle.Render(fmt.Sprintf("Created %d of %d note(s)", created, len(m.results))))
	b.WriteString("\n\n")

	for _, res := range m.results {
		if res.Created() {
			b.WriteString(successStyle.Render("  ✓ " + filepath.Base(res.Path)))
		} else {
			b.WriteString(errorStyle.Render("  ✗ " + res.URL + ": " + failureLabel(res)))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Details for failures are in the diagnostic log."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderNotices() string {
	var b strings.Builder

	for _, n := range m.notices {
		var style lipgloss.Style
		prefix := "•"
		switch n.level {
		case convert.LevelError:
			style = errorStyle
			prefix = "✗"
		case convert.LevelWarning:
			style = warningStyle
			prefix = "!"
		case convert.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case convert.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + n.message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "ctrl+s: convert • ctrl+l: verbose • esc: quit"
	case StateConverting:
		return "ctrl+l: verbose"
	case StateDone:
		return "r: new drop • q: quit"
	}
	return ""
}

// locationLabel describes where new notes land, for the input screen.
func locationLabel(s *config.Settings) string {
	switch s.NoteLocation {
	case config.NoteLocationVault:
		return "vault root"
	case config.NoteLocationCustom:
		return s.CustomNoteLocation + string(filepath.Separator)
	default:
		if s.NewNoteFolder == "" {
			return "vault root"
		}
		return s.NewNoteFolder + string(filepath.Separator)
	}
}

func failureLabel(res convert.Result) string {
	switch res.Failure() {
	case convert.FailureNoteExists:
		return fmt.Sprintf("a note named %q already exists", res.Title)
	case convert.FailureFetch:
		return "could not fetch the page"
	default:
		return "could not create the note"
	}
}

// Run starts the TUI application. The history store is opened
// best-effort; the interface works without it.
func Run(settings *config.Settings, logger *slog.Logger) error {
	var store *history.Store
	if path, err := config.DefaultHistoryPath(); err == nil {
		s, err := history.Open(path)
		if err != nil {
			logger.Warn("conversion history unavailable", "error", err)
		} else {
			store = s
		}
	}
	if store != nil {
		defer store.Close()
	}

	p := tea.NewProgram(NewModel(settings, logger, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
