package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/notedrop/notedrop/internal/config"
	"github.com/notedrop/notedrop/internal/convert"
	"github.com/notedrop/notedrop/internal/history"
	"github.com/notedrop/notedrop/internal/note"
	"github.com/notedrop/notedrop/internal/platform"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Containers lie about CPU counts; maxprocs corrects GOMAXPROCS and
	// a failure just leaves the runtime default in place.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "notedrop",
		Usage: "turn dropped URLs into Markdown notes in your vault",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the settings file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show verbose messages and debug logs",
			},
		},
		Commands: []*cli.Command{
			convertCommand(),
			historyCommand(),
			showCommand(),
			settingsCommand(),
		},
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert URLs into notes",
		ArgsUsage: "[URL ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "batch",
				Usage: "YAML file listing urls to convert",
			},
			&cli.StringFlag{
				Name:  "vault",
				Usage: "vault root (overrides settings)",
			},
			&cli.StringFlag{
				Name:  "location",
				Usage: "note location policy: default, vault or custom",
			},
			&cli.StringFlag{
				Name:  "folder",
				Usage: "custom note folder (implies --location custom)",
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "note template (overrides settings)",
			},
			&cli.StringFlag{
				Name:  "frontmatter-key",
				Usage: "frontmatter key carrying the url",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "open each created note in $VISUAL/$EDITOR",
			},
			&cli.BoolFlag{
				Name:  "plain-filename",
				Usage: "keep title casing and plain hyphens in file names",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "skip recording conversions to history",
			},
		},
		Action: convertAction,
	}
}

func convertAction(c *cli.Context) error {
	logger := newLogger(c)

	settings, err := loadSettings(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading settings: %v", err), 2)
	}
	if err := applyOverrides(settings, c); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if err := settings.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid settings: %v", err), 2)
	}

	input, err := gatherInput(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	urls := convert.ParseURLList(input)
	if len(urls) == 0 {
		return cli.Exit("no URLs to convert; pass them as arguments or via --batch", 2)
	}

	opts := []convert.Option{
		convert.WithLogger(logger),
		convert.WithEventFunc(printEvent(c.Bool("verbose"))),
		convert.WithNoteOpener(platform.OpenInEditor),
	}
	if c.Bool("plain-filename") {
		opts = append(opts, convert.WithFilenameStyle(note.StylePlain))
	}
	if !c.Bool("no-history") {
		if store := openHistory(logger); store != nil {
			defer store.Close()
			opts = append(opts, convert.WithHistory(store))
		}
	}

	manager := convert.NewManager(*settings, opts...)
	results, err := manager.ConvertAll(c.Context, strings.Join(urls, "\n"))

	created := 0
	for _, res := range results {
		if res.Created() {
			created++
		}
	}
	fmt.Printf("\nCreated %d of %d note(s)\n", created, len(results))

	if err != nil {
		return cli.Exit("some conversions failed", 1)
	}
	return nil
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list recent conversions",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "maximum number of conversions to list",
			},
		},
		Action: historyAction,
	}
}

func historyAction(c *cli.Context) error {
	path, err := config.DefaultHistoryPath()
	if err != nil {
		return fmt.Errorf("locating history database: %w", err)
	}
	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	conversions, err := store.Recent(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(conversions) == 0 {
		fmt.Println("No conversions recorded yet")
		return nil
	}

	fmt.Printf("%-20s %-8s %-40s %s\n", "When", "Status", "Title", "Note")
	fmt.Println(strings.Repeat("-", 100))
	for _, conv := range conversions {
		title := conv.Title
		if title == "" {
			title = conv.URL
		}
		target := conv.Path
		if conv.Status == history.StatusFailed {
			target = conv.Error
		}
		fmt.Printf("%-20s %-8s %-40s %s\n",
			conv.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			conv.Status,
			truncate(title, 40),
			target,
		)
	}
	fmt.Printf("\nTotal: %d conversion(s)\n", len(conversions))

	return nil
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print a note's frontmatter and body",
		ArgsUsage: "<note path>",
		Action:    showAction,
	}
}

func showAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: notedrop show <note path>", 2)
	}

	parsed, err := note.ParseFile(c.Args().First())
	if err != nil {
		return err
	}

	if len(parsed.Frontmatter) > 0 {
		keys := make([]string, 0, len(parsed.Frontmatter))
		for k := range parsed.Frontmatter {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %v\n", k, parsed.Frontmatter[k])
		}
		fmt.Println()
	}

	lines := strings.Split(strings.TrimSpace(parsed.Body), "\n")
	if len(lines) > 12 {
		lines = append(lines[:12], "...")
	}
	fmt.Println(strings.Join(lines, "\n"))

	return nil
}

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "manage the settings file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a settings file with defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "vault",
						Usage: "vault root to record in the new file",
					},
				},
				Action: settingsInitAction,
			},
			{
				Name:   "show",
				Usage:  "print the active settings",
				Action: settingsShowAction,
			},
			{
				Name:   "path",
				Usage:  "print the settings file location",
				Action: settingsPathAction,
			},
		},
	}
}

func settingsInitAction(c *cli.Context) error {
	path, err := settingsPath(c)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return cli.Exit(fmt.Sprintf("settings file already exists at %s", path), 2)
	}

	settings := config.DefaultSettings()
	if v := c.String("vault"); v != "" {
		settings.VaultPath = v
	}
	if err := settings.Save(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	if settings.VaultPath == "" {
		fmt.Println("Set vaultPath before converting, or pass --vault")
	}
	return nil
}

func settingsShowAction(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	return nil
}

func settingsPathAction(c *cli.Context) error {
	path, err := settingsPath(c)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// newLogger builds the diagnostic logger: JSON on stderr, debug level
// with --verbose. User-facing progress stays on stdout via events.
func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printEvent renders conversion events for the terminal, skipping
// verbose ones unless asked for.
func printEvent(verbose bool) func(convert.Event) {
	return func(event convert.Event) {
		if event.Level == convert.LevelVerbose && !verbose {
			return
		}

		prefix := "  "
		switch event.Level {
		case convert.LevelError:
			prefix = "✗ "
		case convert.LevelWarning:
			prefix = "! "
		case convert.LevelSuccess:
			prefix = "✓ "
		case convert.LevelInfo:
			prefix = "› "
		}

		fmt.Println(prefix + event.Message)
	}
}

func settingsPath(c *cli.Context) (string, error) {
	if path := c.String("config"); path != "" {
		return path, nil
	}
	return config.DefaultSettingsPath()
}

func loadSettings(c *cli.Context) (*config.Settings, error) {
	path, err := settingsPath(c)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func applyOverrides(settings *config.Settings, c *cli.Context) error {
	if v := c.String("vault"); v != "" {
		settings.VaultPath = v
	}
	if v := c.String("location"); v != "" {
		loc, err := config.ParseNoteLocation(v)
		if err != nil {
			return err
		}
		settings.NoteLocation = loc
	}
	if v := c.String("folder"); v != "" {
		settings.NoteLocation = config.NoteLocationCustom
		settings.CustomNoteLocation = v
	}
	if v := c.String("template"); v != "" {
		settings.Template = v
	}
	if v := c.String("frontmatter-key"); v != "" {
		settings.FrontmatterKey = v
	}
	if c.Bool("open") {
		settings.OpenNewNote = true
	}
	return nil
}

// gatherInput joins argument URLs and the optional batch file into one
// newline-separated block, the same shape a multi-URL drop has.
func gatherInput(c *cli.Context) (string, error) {
	lines := append([]string{}, c.Args().Slice()...)

	if batch := c.String("batch"); batch != "" {
		urls, err := config.LoadBatch(batch)
		if err != nil {
			return "", err
		}
		lines = append(lines, urls...)
	}

	return strings.Join(lines, "\n"), nil
}

func openHistory(logger *slog.Logger) *history.Store {
	path, err := config.DefaultHistoryPath()
	if err != nil {
		logger.Warn("conversion history unavailable", "error", err)
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn("conversion history unavailable", "error", err)
		return nil
	}
	return store
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
