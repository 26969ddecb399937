package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/notedrop/notedrop/internal/config"
	"github.com/notedrop/notedrop/internal/tui"
)

func main() {
	settingsPath, err := config.DefaultSettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings (%s): %v\n", settingsPath, err)
		fmt.Fprintln(os.Stderr, "Run 'notedrop settings init --vault <path>' first.")
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes diagnostics to the notedrop log file; the terminal
// belongs to the TUI. Falls back to discarding when the file cannot be
// opened.
func newLogger() (*slog.Logger, func()) {
	discard := func() (*slog.Logger, func()) {
		return slog.New(slog.DiscardHandler), func() {}
	}

	path, err := config.DefaultLogPath()
	if err != nil {
		return discard()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard()
	}

	return slog.New(slog.NewJSONHandler(f, nil)), func() { _ = f.Close() }
}
