package db

import (
	"database/sql"

	"github.com/zenith-app/zenith/models"
)

// ListGoals returns all goals, newest last
func (d *DB) ListGoals() ([]models.Goal, error) {
	rows, err := d.sql.Query(`
		SELECT id, title, kind, progress, target_date
		FROM goals ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Kind, &g.Progress, &g.TargetDate); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// CreateGoal inserts a new goal
func (d *DB) CreateGoal(g models.Goal) error {
	now := nowMs()
	_, err := d.sql.Exec(`
		INSERT INTO goals (id, title, kind, progress, target_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Title, g.Kind, g.Progress, g.TargetDate, now, now)
	return err
}

// UpdateGoal rewrites a goal's mutable fields
func (d *DB) UpdateGoal(g models.Goal) error {
	res, err := d.sql.Exec(`
		UPDATE goals SET title = ?, kind = ?, progress = ?, target_date = ?, updated_at = ?
		WHERE id = ?
	`, g.Title, g.Kind, g.Progress, g.TargetDate, nowMs(), g.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteGoal removes a goal
func (d *DB) DeleteGoal(id string) error {
	res, err := d.sql.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ClearGoals removes every goal
func (d *DB) ClearGoals() error {
	_, err := d.sql.Exec("DELETE FROM goals")
	return err
}
