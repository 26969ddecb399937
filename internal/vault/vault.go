package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoteExists indicates the destination path is already occupied. The
// existing note is never overwritten.
var ErrNoteExists = errors.New("a note with this name already exists")

// Location selects how a note's destination folder is resolved.
type Location int

const (
	// LocationPreferred uses the vault's preferred new-note folder,
	// falling back to the root when none is configured.
	LocationPreferred Location = iota

	// LocationRoot places notes directly in the vault root.
	LocationRoot

	// LocationCustom places notes in the folder passed to Resolve.
	LocationCustom
)

// Vault is a directory tree of Markdown notes.
type Vault struct {
	root          string
	newNoteFolder string
}

// New opens a vault rooted at root. newNoteFolder is the vault-relative
// folder used by LocationPreferred; empty means the root itself.
func New(root, newNoteFolder string) *Vault {
	return &Vault{root: root, newNoteFolder: newNoteFolder}
}

// Root returns the vault's root directory.
func (v *Vault) Root() string {
	return v.root
}

// Resolve computes the destination path for fileName under the given
// placement. customFolder is consulted only for LocationCustom. Joining
// normalizes the result, so folder values with stray separators cannot
// produce duplicate separators in the path.
func (v *Vault) Resolve(fileName string, loc Location, customFolder string) string {
	switch loc {
	case LocationRoot:
		return filepath.Join(v.root, fileName)
	case LocationCustom:
		return filepath.Join(v.root, customFolder, fileName)
	default:
		if v.newNoteFolder == "" {
			return filepath.Join(v.root, fileName)
		}
		return filepath.Join(v.root, v.newNoteFolder, fileName)
	}
}

// CreateNote writes content to path, creating parent directories as
// needed. The create is exclusive: when a file already exists at path,
// CreateNote returns an error wrapping ErrNoteExists and leaves the
// existing file untouched.
func (v *Vault) CreateNote(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create note folder: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrNoteExists, filepath.Base(path))
		}
		return err
	}

	if _, err := f.Write([]byte(content)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
