// Package sqlite provides SQLite-backed persistence for parsed
// documents.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver" // registers the "sqlite3" driver
	_ "github.com/ncruces/go-sqlite3/embed"  // embeds the sqlite3 wasm binary
)

// DB wraps a sql.DB connection with schema management.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the given path. Use ":memory:" for an
// in-memory database. Call Open to establish the connection.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open establishes the database connection and creates the schema if
// needed.
func (db *DB) Open() error {
	d, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent use.
	d.SetMaxOpenConns(1)

	if err := d.Ping(); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	if _, err := d.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		return fmt.Errorf("setting busy timeout: %w", err)
	}

	if db.path != ":memory:" {
		if _, err := d.Exec(`PRAGMA journal_mode = WAL`); err != nil {
			return fmt.Errorf("enabling WAL: %w", err)
		}
	}

	if _, err := d.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	db.db = d

	if err := db.createSchema(); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

func (db *DB) createSchema() error {
	_, err := db.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id           TEXT PRIMARY KEY,
			source_url   TEXT NOT NULL,
			title        TEXT NOT NULL,
			content      TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			position     INTEGER NOT NULL DEFAULT 0,
			parsed_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_documents_source_url ON documents(source_url);
		CREATE INDEX IF NOT EXISTS idx_documents_content_hash ON documents(content_hash);
	`)
	return err
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
