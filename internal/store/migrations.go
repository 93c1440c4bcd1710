package store

import (
	"fmt"
	"log/slog"
)

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 2

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
		// No rows means version 0 (fresh database).
		version = 0
	}

	migrations := []func() error{db.migrateV1, db.migrateV2}
	for v := version; v < currentSchemaVersion; v++ {
		slog.Debug("applying migration", "version", v+1)
		if err := migrations[v](); err != nil {
			return fmt.Errorf("migration v%d: %w", v+1, err)
		}
	}

	return nil
}

// migrateV1 creates the habit and completion tables.
func (db *DB) migrateV1() error {
	return db.applyMigration(1, []string{
		`CREATE TABLE IF NOT EXISTS habits (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL UNIQUE COLLATE NOCASE,
			periodicity TEXT NOT NULL CHECK (periodicity IN ('daily', 'weekly')),
			start_date  TEXT NOT NULL,
			created_at  TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS completions (
			habit_id     INTEGER NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
			completed_on TEXT NOT NULL,
			PRIMARY KEY (habit_id, completed_on)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions(habit_id)`,
	})
}

// migrateV2 adds streak snapshots used by the track command.
func (db *DB) migrateV2() error {
	return db.applyMigration(2, []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at TEXT NOT NULL,
			today    TEXT NOT NULL,
			version  TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS snapshot_streaks (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id    INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			habit_name     TEXT NOT NULL,
			periodicity    TEXT NOT NULL,
			completions    INTEGER NOT NULL,
			current_streak INTEGER NOT NULL,
			longest_streak INTEGER NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_snapshot_streaks_snapshot ON snapshot_streaks(snapshot_id)`,
	})
}

// applyMigration executes statements and records version in one transaction.
func (db *DB) applyMigration(version int, statements []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:min(40, len(stmt))], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}

	return tx.Commit()
}
