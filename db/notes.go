package db

import (
	"database/sql"

	"github.com/zenith-app/zenith/models"
)

// ListNotes returns all notes, newest first
func (d *DB) ListNotes() ([]models.Note, error) {
	rows, err := d.sql.Query(`
		SELECT id, title, content, date FROM notes ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Date); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// CreateNote inserts a new note
func (d *DB) CreateNote(n models.Note) error {
	_, err := d.sql.Exec(`
		INSERT INTO notes (id, title, content, date, created_at) VALUES (?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Content, n.Date, nowMs())
	return err
}

// DeleteNote removes a note
func (d *DB) DeleteNote(id string) error {
	res, err := d.sql.Exec("DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
