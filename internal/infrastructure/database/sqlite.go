package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const journalDirPerms = 0o750

type migration struct {
	version    int
	name       string
	statements []string
}

var journalMigrations = []migration{
	{
		version: 1,
		name:    "init_transition_journal",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS transitions (
				id TEXT PRIMARY KEY,
				intervention_id TEXT NOT NULL,
				action TEXT NOT NULL,
				actor_id TEXT NOT NULL,
				actor_role TEXT NOT NULL,
				from_status TEXT NOT NULL,
				from_sub_status TEXT,
				to_status TEXT,
				to_sub_status TEXT,
				outcome TEXT NOT NULL,
				error TEXT,
				at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transitions_intervention ON transitions(intervention_id, at)`,
		},
	},
}

// OpenSQLite opens the transition journal database, applies pragmas and
// runs pending migrations. A single connection is kept open.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("journal path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), journalDirPerms); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON;",
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if err := migrate(conn, journalMigrations); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func migrate(db *sql.DB, migrations []migration) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	for _, m := range migrations {
		var applied int
		if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, m.version).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		for _, stmt := range m.statements {
			if _, err := tx.Exec(stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
			}
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}
	return nil
}
