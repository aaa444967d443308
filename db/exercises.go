package db

import (
	"database/sql"

	"github.com/zenith-app/zenith/models"
)

// ListExercises returns all exercises in list order
func (d *DB) ListExercises() ([]models.Exercise, error) {
	rows, err := d.sql.Query(`
		SELECT id, name, duration_minutes, completed, reminder_time, alarm_enabled, position
		FROM exercises ORDER BY position, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.DurationMinutes, &e.Completed, &e.ReminderTime, &e.AlarmEnabled, &e.Position); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetExercise returns a single exercise, or sql.ErrNoRows if absent
func (d *DB) GetExercise(id string) (models.Exercise, error) {
	var e models.Exercise
	err := d.sql.QueryRow(`
		SELECT id, name, duration_minutes, completed, reminder_time, alarm_enabled, position
		FROM exercises WHERE id = ?
	`, id).Scan(&e.ID, &e.Name, &e.DurationMinutes, &e.Completed, &e.ReminderTime, &e.AlarmEnabled, &e.Position)
	return e, err
}

// CreateExercise inserts a new exercise
func (d *DB) CreateExercise(e models.Exercise) error {
	now := nowMs()
	_, err := d.sql.Exec(`
		INSERT INTO exercises (id, name, duration_minutes, completed, reminder_time, alarm_enabled, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Name, e.DurationMinutes, e.Completed, e.ReminderTime, e.AlarmEnabled, e.Position, now, now)
	return err
}

// UpdateExercise rewrites an exercise's mutable fields
func (d *DB) UpdateExercise(e models.Exercise) error {
	res, err := d.sql.Exec(`
		UPDATE exercises SET name = ?, duration_minutes = ?, completed = ?, reminder_time = ?, alarm_enabled = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, e.Name, e.DurationMinutes, e.Completed, e.ReminderTime, e.AlarmEnabled, e.Position, nowMs(), e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteExercise removes an exercise
func (d *DB) DeleteExercise(id string) error {
	res, err := d.sql.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ClearExercises removes every exercise
func (d *DB) ClearExercises() error {
	_, err := d.sql.Exec("DELETE FROM exercises")
	return err
}
