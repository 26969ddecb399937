package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Status records how a conversion ended.
type Status string

const (
	// StatusCreated marks a conversion that produced a note file.
	StatusCreated Status = "created"

	// StatusFailed marks a conversion that ended in any failure.
	StatusFailed Status = "failed"
)

// Conversion is one finished URL-to-note conversion, success or failure.
type Conversion struct {
	// ID is a UUID assigned when the conversion is recorded.
	ID string

	// URL is the page the conversion started from.
	URL string

	// Title is the extracted page title. Empty when the fetch failed
	// before a title existed.
	Title string

	// Path is the created note's location. Empty on failure.
	Path string

	// Status is created or failed.
	Status Status

	// Error carries the failure text for failed conversions.
	Error string

	// CreatedAt is when the conversion finished, in UTC.
	CreatedAt time.Time
}

// Store is a SQLite-backed log of finished conversions.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the conversion history database at path and
// bootstraps the schema. Pass ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a finished conversion. A missing ID is assigned a fresh
// UUID and a zero CreatedAt becomes the current time.
func (s *Store) Record(ctx context.Context, c Conversion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, url, title, path, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.URL, c.Title, c.Path, string(c.Status), c.Error, c.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record conversion: %w", err)
	}

	return nil
}

// Recent returns the most recent conversions, newest first. limit values
// below one fall back to 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Conversion, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, title, path, status, error, created_at
		FROM conversions
		ORDER BY conversion_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var conversions []Conversion
	for rows.Next() {
		var c Conversion
		var status, createdAt string
		if err := rows.Scan(&c.ID, &c.URL, &c.Title, &c.Path, &status, &c.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		c.Status = Status(status)
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			c.CreatedAt = ts
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}

	return conversions, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
