package db

import (
	"database/sql"
	"time"

	"github.com/zenith-app/zenith/models"
)

// Seed installs the built-in default dataset on first run, in a single
// transaction. Subsequent runs are no-ops, even if the user has since
// deleted everything.
func (d *DB) Seed() error {
	seeded, err := d.GetSetting("seeded")
	if err != nil {
		return err
	}
	if seeded == "1" {
		return nil
	}

	defaultTasks := []models.Task{
		{ID: "1", Text: "Wake up at 6:00 AM", Time: "06:00", AlarmEnabled: true, Position: 0},
		{ID: "2", Text: "Drink 500ml Water", Time: "06:15", AlarmEnabled: true, Position: 1},
		{ID: "3", Text: "Read for 20 minutes", Time: "07:00", AlarmEnabled: true, Position: 2},
	}
	defaultGoals := []models.Goal{
		{ID: "1", Title: "Run a Marathon", Kind: models.GoalLong, Progress: 15, TargetDate: "2024-12-31"},
		{ID: "2", Title: "Learn React Hooks", Kind: models.GoalShort, Progress: 80, TargetDate: "2024-06-15"},
	}
	defaultExercises := []models.Exercise{
		{ID: "1", Name: "Morning Yoga", DurationMinutes: 15, ReminderTime: "06:30", AlarmEnabled: true, Position: 0},
		{ID: "2", Name: "Evening Pushups", DurationMinutes: 10, ReminderTime: "18:00", AlarmEnabled: true, Position: 1},
	}
	defaultNotes := []models.Note{
		{ID: "1", Title: "Focus Tip", Content: "Deep work sessions are best early morning.", Date: time.Now().Format("2006-01-02")},
	}

	return d.Transaction(func(tx *sql.Tx) error {
		now := nowMs()
		for _, t := range defaultTasks {
			if _, err := tx.Exec(`
				INSERT INTO tasks (id, text, completed, time, alarm_enabled, position, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, t.ID, t.Text, t.Completed, t.Time, t.AlarmEnabled, t.Position, now, now); err != nil {
				return err
			}
		}
		for _, g := range defaultGoals {
			if _, err := tx.Exec(`
				INSERT INTO goals (id, title, kind, progress, target_date, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, g.ID, g.Title, g.Kind, g.Progress, g.TargetDate, now, now); err != nil {
				return err
			}
		}
		for _, e := range defaultExercises {
			if _, err := tx.Exec(`
				INSERT INTO exercises (id, name, duration_minutes, completed, reminder_time, alarm_enabled, position, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, e.ID, e.Name, e.DurationMinutes, e.Completed, e.ReminderTime, e.AlarmEnabled, e.Position, now, now); err != nil {
				return err
			}
		}
		for _, n := range defaultNotes {
			if _, err := tx.Exec(`
				INSERT INTO notes (id, title, content, date, created_at)
				VALUES (?, ?, ?, ?, ?)
			`, n.ID, n.Title, n.Content, n.Date, now); err != nil {
				return err
			}
		}

		_, err := tx.Exec(`
			INSERT INTO settings (key, value, updated_at) VALUES ('seeded', '1', ?)
			ON CONFLICT(key) DO UPDATE SET value = '1', updated_at = excluded.updated_at
		`, now)
		return err
	})
}
