package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// Fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			login         TEXT NOT NULL,
			taken_at      TEXT NOT NULL,
			version       TEXT NOT NULL,
			overall_score INTEGER NOT NULL,
			report        TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS snapshot_metrics (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id  INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			position     INTEGER NOT NULL,
			metric_name  TEXT NOT NULL,
			metric_value REAL NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id    INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			login          TEXT NOT NULL,
			category       TEXT NOT NULL,
			impact         TEXT NOT NULL,
			title          TEXT NOT NULL,
			description    TEXT NOT NULL,
			score_increase INTEGER NOT NULL,
			status         TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'resolved'))
		)`,

		`CREATE INDEX IF NOT EXISTS idx_snapshots_login ON snapshots(login)`,
		`CREATE INDEX IF NOT EXISTS idx_metrics_snapshot ON snapshot_metrics(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_login_status ON recommendations(login, status)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
