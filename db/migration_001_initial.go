package db

import "database/sql"

func init() {
	RegisterMigration(Migration{
		Version:     1,
		Description: "Initial schema - routine, goals, exercises, notes, study stats, snoozes, settings",
		Up:          migration001Initial,
	})
}

func migration001Initial(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			time TEXT NOT NULL DEFAULT '',
			alarm_enabled INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS goals (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			kind TEXT NOT NULL CHECK (kind IN ('short', 'mid', 'long')),
			progress INTEGER NOT NULL DEFAULT 0,
			target_date TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS exercises (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			reminder_time TEXT NOT NULL DEFAULT '',
			alarm_enabled INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS study_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_minutes INTEGER NOT NULL DEFAULT 0,
			last_session TEXT NOT NULL DEFAULT 'Never'
		);

		CREATE TABLE IF NOT EXISTS snoozes (
			item_id TEXT PRIMARY KEY,
			until TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		INSERT OR IGNORE INTO study_stats (id, total_minutes, last_session)
		VALUES (1, 0, 'Never');
	`)
	return err
}
