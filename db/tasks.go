package db

import (
	"database/sql"
	"time"

	"github.com/zenith-app/zenith/models"
)

func nowMs() int64 {
	return time.Now().UnixMilli()
}

// ListTasks returns the routine checklist ordered by position then time
func (d *DB) ListTasks() ([]models.Task, error) {
	rows, err := d.sql.Query(`
		SELECT id, text, completed, time, alarm_enabled, position
		FROM tasks ORDER BY position, time, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.Time, &t.AlarmEnabled, &t.Position); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask returns a single task, or sql.ErrNoRows if absent
func (d *DB) GetTask(id string) (models.Task, error) {
	var t models.Task
	err := d.sql.QueryRow(`
		SELECT id, text, completed, time, alarm_enabled, position
		FROM tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.Text, &t.Completed, &t.Time, &t.AlarmEnabled, &t.Position)
	return t, err
}

// CreateTask inserts a new routine task
func (d *DB) CreateTask(t models.Task) error {
	now := nowMs()
	_, err := d.sql.Exec(`
		INSERT INTO tasks (id, text, completed, time, alarm_enabled, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Text, t.Completed, t.Time, t.AlarmEnabled, t.Position, now, now)
	return err
}

// UpdateTask rewrites a task's mutable fields
func (d *DB) UpdateTask(t models.Task) error {
	res, err := d.sql.Exec(`
		UPDATE tasks SET text = ?, completed = ?, time = ?, alarm_enabled = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, t.Text, t.Completed, t.Time, t.AlarmEnabled, t.Position, nowMs(), t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteTask removes a task
func (d *DB) DeleteTask(id string) error {
	res, err := d.sql.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ClearTasks removes every routine task
func (d *DB) ClearTasks() error {
	_, err := d.sql.Exec("DELETE FROM tasks")
	return err
}

// ResetRoutine marks every routine task incomplete for the new day
func (d *DB) ResetRoutine() error {
	_, err := d.sql.Exec("UPDATE tasks SET completed = 0, updated_at = ?", nowMs())
	return err
}
