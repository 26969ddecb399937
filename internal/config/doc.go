// Package config provides configuration management for notedrop.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Settings validation
//   - Batch URL files for bulk conversion
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Frontmatter key "url"
//	// Notes placed in the configured new-note folder
//	// Fetching through api.allorigins.win
//
// # Loading from File
//
// Settings files are flat JSON objects merged over the defaults, so a
// partial file only overrides what it names:
//
//	settings, err := config.Load("/path/to/settings.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.VaultPath = "/home/user/vault"
//	err := settings.Save("/path/to/settings.json")
//
// # Validation
//
// Validate reports every problem in one error, keyed by the JSON field
// name:
//
//	if err := settings.Validate(); err != nil {
//	    // "customNoteLocation: custom note location must be set ..."
//	}
//
// The custom note location is only required while the note location is
// "custom", mirroring how a settings screen reveals that field
// conditionally.
package config
