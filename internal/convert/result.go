package convert

import (
	"errors"

	"github.com/notedrop/notedrop/internal/fetch"
	"github.com/notedrop/notedrop/internal/vault"
)

// FailureKind classifies how a conversion failed.
type FailureKind int

const (
	// FailureNone means the conversion succeeded.
	FailureNone FailureKind = iota

	// FailureFetch means the page could not be retrieved through the
	// proxy.
	FailureFetch

	// FailureNoteExists means the destination path was already occupied.
	FailureNoteExists

	// FailureGeneric covers every other failure.
	FailureGeneric
)

// Result is the outcome of one URL's conversion.
type Result struct {
	// URL is the converted page.
	URL string

	// Title is the extracted page title. Empty when the fetch failed
	// before a title existed.
	Title string

	// Path is the created note's location. Empty on failure.
	Path string

	// Err is the conversion failure, nil on success.
	Err error
}

// Created reports whether the conversion produced a note.
func (r Result) Created() bool {
	return r.Err == nil
}

// Failure classifies Err into the kinds interfaces message differently:
// a conflicting note gets a specific notice naming its title, a fetch
// failure a short generic one, everything else the catch-all.
func (r Result) Failure() FailureKind {
	switch {
	case r.Err == nil:
		return FailureNone
	case errors.Is(r.Err, vault.ErrNoteExists):
		return FailureNoteExists
	case errors.Is(r.Err, fetch.ErrProxyFailed):
		return FailureFetch
	default:
		return FailureGeneric
	}
}
