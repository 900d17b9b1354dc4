package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies all up migrations in order. Every statement is written
// to be safe to re-run, so startup can apply the full set unconditionally.
func MigrateUp(db *sql.DB) error {
	if err := applyMigrations(db, ".up.sql"); err != nil {
		return err
	}
	return ensureTaskColorColumn(db)
}

func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, ".down.sql")
}

func applyMigrations(db *sql.DB, suffix string) error {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(sqlBytes)); execErr != nil {
			return fmt.Errorf("apply migration %s: %w", name, execErr)
		}
	}
	return nil
}

// ensureTaskColorColumn adds the color column to databases created before
// it existed. SQLite has no ADD COLUMN IF NOT EXISTS, so the duplicate
// column error is the expected outcome on current schemas.
func ensureTaskColorColumn(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE tasks ADD COLUMN color TEXT`)
	if err != nil && strings.Contains(err.Error(), "duplicate column name") {
		return nil
	}
	if err != nil {
		return fmt.Errorf("add tasks.color column: %w", err)
	}
	return nil
}
