package db

import "github.com/zenith-app/zenith/models"

// Snapshot assembles the full persisted state in one read for the UI
func (d *DB) Snapshot() (models.Snapshot, error) {
	var snap models.Snapshot
	var err error

	if snap.Routine, err = d.ListTasks(); err != nil {
		return snap, err
	}
	if snap.Goals, err = d.ListGoals(); err != nil {
		return snap, err
	}
	if snap.Exercises, err = d.ListExercises(); err != nil {
		return snap, err
	}
	if snap.Notes, err = d.ListNotes(); err != nil {
		return snap, err
	}
	if snap.StudyStats, err = d.GetStudyStats(); err != nil {
		return snap, err
	}
	if snap.Snoozed, err = d.ListSnoozes(); err != nil {
		return snap, err
	}
	return snap, nil
}

// ReminderItems projects every reminder-bearing item (routine tasks and
// exercises) for the matcher's per-tick scan.
func (d *DB) ReminderItems() ([]models.ReminderItem, error) {
	tasks, err := d.ListTasks()
	if err != nil {
		return nil, err
	}
	exercises, err := d.ListExercises()
	if err != nil {
		return nil, err
	}

	items := make([]models.ReminderItem, 0, len(tasks)+len(exercises))
	for _, t := range tasks {
		items = append(items, t.AsReminder())
	}
	for _, e := range exercises {
		items = append(items, e.AsReminder())
	}
	return items, nil
}
