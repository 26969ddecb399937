package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultTemplate is the note template used when none is configured.
// It produces a YAML frontmatter block with the configured key and a
// heading carrying the page title.
const DefaultTemplate = "---\n{{frontmatterKey}}: {{url}}\n---\n\n# {{title}}\n\n"

// DefaultProxyURL is the public CORS proxy used to fetch pages.
const DefaultProxyURL = "https://api.allorigins.win/get"

// NoteLocation selects where new notes are placed inside the vault.
type NoteLocation string

const (
	// NoteLocationDefault places notes in the configured new-note folder,
	// falling back to the vault root when none is set.
	NoteLocationDefault NoteLocation = "default"

	// NoteLocationVault places notes directly in the vault root.
	NoteLocationVault NoteLocation = "vault"

	// NoteLocationCustom places notes in CustomNoteLocation.
	NoteLocationCustom NoteLocation = "custom"
)

// ParseNoteLocation converts a user-supplied string into a NoteLocation.
func ParseNoteLocation(s string) (NoteLocation, error) {
	switch NoteLocation(s) {
	case NoteLocationDefault, NoteLocationVault, NoteLocationCustom:
		return NoteLocation(s), nil
	}
	return "", fmt.Errorf("unknown note location %q (want default, vault or custom)", s)
}

// Settings holds all configuration options.
type Settings struct {
	// Note creation
	Template           string       `json:"template"`
	FrontmatterKey     string       `json:"frontmatterKey"`
	NoteLocation       NoteLocation `json:"noteLocation"`
	CustomNoteLocation string       `json:"customNoteLocation"`
	OpenNewNote        bool         `json:"openNewNote"`

	// Vault settings
	VaultPath     string `json:"vaultPath"`
	NewNoteFolder string `json:"newNoteFolder"`

	// Fetch settings
	ProxyURL string `json:"proxyUrl"`
}

// DefaultSettings returns settings with default values.
//
// VaultPath has no sensible default and must be set before the settings
// validate.
func DefaultSettings() *Settings {
	return &Settings{
		Template:       DefaultTemplate,
		FrontmatterKey: "url",
		NoteLocation:   NoteLocationDefault,
		OpenNewNote:    false,
		ProxyURL:       DefaultProxyURL,
	}
}

// Load reads settings from a JSON file.
//
// A missing file yields the defaults. Fields present in the file are
// merged over the defaults, so a partial settings file is valid.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports every settings problem at once.
func (s *Settings) Validate() error {
	errs := validation.Errors{}

	if strings.TrimSpace(s.VaultPath) == "" {
		errs["vaultPath"] = validation.NewError("config_vault_path_required", "vault path must be set")
	}

	switch s.NoteLocation {
	case NoteLocationDefault, NoteLocationVault, NoteLocationCustom:
	default:
		errs["noteLocation"] = validation.NewError("config_note_location_invalid", "note location must be default, vault or custom")
	}

	if s.NoteLocation == NoteLocationCustom && strings.TrimSpace(s.CustomNoteLocation) == "" {
		errs["customNoteLocation"] = validation.NewError("config_custom_location_required", "custom note location must be set when note location is custom")
	}

	if s.Template == "" {
		errs["template"] = validation.NewError("config_template_required", "template must not be empty")
	}

	if s.FrontmatterKey == "" {
		errs["frontmatterKey"] = validation.NewError("config_frontmatter_key_required", "frontmatter key must not be empty")
	}

	if u, err := url.Parse(s.ProxyURL); err != nil || !u.IsAbs() {
		errs["proxyUrl"] = validation.NewError("config_proxy_url_invalid", "proxy url must be an absolute URL")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DefaultSettingsPath returns the per-user settings file location.
func DefaultSettingsPath() (string, error) {
	return userFile("settings.json")
}

// DefaultHistoryPath returns the per-user conversion history database location.
func DefaultHistoryPath() (string, error) {
	return userFile("history.db")
}

// DefaultLogPath returns the per-user diagnostic log location.
func DefaultLogPath() (string, error) {
	return userFile("notedrop.log")
}

func userFile(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notedrop", name), nil
}
