package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound = errors.New("storage: not found")
	ErrNoFields = errors.New("storage: no fields to update")
)

// DB owns the single SQLite handle for the process. Every statement
// sequence runs under With, so concurrent callers (request handlers and the
// reminder scheduler) never interleave statements.
type DB struct {
	mu   sync.Mutex
	conn *sql.DB
}

// Open creates the parent directory if needed, opens or creates the
// database file, and applies migrations. It fails only if the file cannot
// be opened or the schema cannot be established.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection; With serializes access above it.
	conn.SetMaxOpenConns(1)

	if err := MigrateUp(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

// With runs op while holding exclusive access to the connection.
func (d *DB) With(op func(conn *sql.DB) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return op(d.conn)
}

func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conn.Close()
}
