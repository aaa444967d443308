package models

import "fmt"

// ReminderSource identifies which collection a reminder item came from
type ReminderSource string

const (
	SourceRoutine  ReminderSource = "routine"
	SourceExercise ReminderSource = "exercise"
	SourceTimer    ReminderSource = "timer"
)

// ReminderItem is the reminder-bearing projection of a routine task or an
// exercise. Items with alarms disabled, already completed, or without a
// scheduled time never raise alarms.
type ReminderItem struct {
	ID           string
	Label        string
	Time         string // scheduled "HH:MM", empty means no reminder
	Completed    bool
	AlarmEnabled bool
	Source       ReminderSource
}

// Eligible reports whether the item can raise an alarm at all
func (r ReminderItem) Eligible() bool {
	return r.AlarmEnabled && !r.Completed && r.Time != ""
}

// AsReminder projects a routine task into its reminder role
func (t Task) AsReminder() ReminderItem {
	return ReminderItem{
		ID:           t.ID,
		Label:        t.Text,
		Time:         t.Time,
		Completed:    t.Completed,
		AlarmEnabled: t.AlarmEnabled,
		Source:       SourceRoutine,
	}
}

// AsReminder projects an exercise into its reminder role
func (e Exercise) AsReminder() ReminderItem {
	return ReminderItem{
		ID:           e.ID,
		Label:        e.Name,
		Time:         e.ReminderTime,
		Completed:    e.Completed,
		AlarmEnabled: e.AlarmEnabled,
		Source:       SourceExercise,
	}
}

// NotificationTitle is the system notification title for this item's alarms
func (r ReminderItem) NotificationTitle() string {
	if r.Source == SourceExercise {
		return "Fit Reminder"
	}
	return "Routine Alert"
}

// NotificationBody is the system notification body for this item's alarms
func (r ReminderItem) NotificationBody() string {
	if r.Source == SourceExercise {
		return fmt.Sprintf("Time for %s!", r.Label)
	}
	return fmt.Sprintf("Time to: %s", r.Label)
}
