package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection to the hiresignal SQLite database.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the SQLite database at the given path.
// It creates the parent directory if it does not exist.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}

	return initialize(conn)
}

// OpenInMemory opens an in-memory SQLite database, useful for testing.
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Each pooled connection would otherwise get its own empty database.
	conn.SetMaxOpenConns(1)
	return initialize(conn)
}

func initialize(conn *sql.DB) (*DB, error) {
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// querier is the subset of *sql.DB and *sql.Tx the store writes through.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
}

// inTx runs fn in a transaction, committing only when fn returns nil.
func (db *DB) inTx(fn func(q querier) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
