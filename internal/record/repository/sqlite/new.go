package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"butler-assistant/internal/record/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT    NOT NULL,
	id         INTEGER NOT NULL,
	body       TEXT    NOT NULL,
	PRIMARY KEY (collection, id)
);`

// implRepository keeps every collection in one key-value table. Each row
// holds the record's JSON encoding so field presence matches the file format.
type implRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New opens (or creates) the database at path and applies the schema.
func New(ctx context.Context, path string) (*implRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &implRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *implRepository) Close() error {
	return r.db.Close()
}
