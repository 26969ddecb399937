// Package platform opens created notes with whatever the host OS
// offers: the default application for Markdown files, or the user's
// $VISUAL/$EDITOR. The CLI reaches for the editor; the terminal UI uses
// the default application so the terminal stays usable.
package platform
