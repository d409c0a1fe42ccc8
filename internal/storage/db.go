// Package storage gives access to the host expense tracker's SQLite
// database. The schema (record, account, category) is owned by the host
// application and is never created or altered here.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout matches the text format the host application writes for
// datetime columns, so rows inserted by bq interleave with its own.
const timeLayout = "2006-01-02 15:04:05.000000"

// DatabaseNotFoundError reports that no host database exists at any of
// the known locations.
type DatabaseNotFoundError struct {
	Checked []string
}

func (e *DatabaseNotFoundError) Error() string {
	return fmt.Sprintf("database not found, checked:\n  %s", strings.Join(e.Checked, "\n  "))
}

// FindDBPath locates the host database. BQ_DB_PATH wins when set;
// otherwise the host's Linux/macOS data dir is tried, then the Windows
// one.
func FindDBPath() (string, error) {
	if p := os.Getenv("BQ_DB_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		return "", &DatabaseNotFoundError{Checked: []string{p}}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	candidates := []string{
		filepath.Join(home, ".local", "share", "bagels", "db.db"),
		filepath.Join(home, "AppData", "Local", "bagels", "db.db"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &DatabaseNotFoundError{Checked: candidates}
}

// Repository wraps the single connection a bq invocation holds on the
// host database.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at path. The caller is responsible for
// calling Close before the process exits.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Repository{db: db, now: time.Now}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
