package engine

import (
	"errors"

	"github.com/zenith-app/zenith/models"
)

var (
	// ErrNoAlarm is returned by dismiss/snooze when nothing is ringing
	ErrNoAlarm = errors.New("no active alarm")

	// ErrCannotSnooze is returned when snoozing a timer-completion alarm;
	// a finished countdown has nothing meaningful to defer
	ErrCannotSnooze = errors.New("timer alarms cannot be snoozed")

	// ErrNoCountdown is returned by StopCountdown when no countdown exists
	ErrNoCountdown = errors.New("no active countdown")

	errInvalidDuration = errors.New("countdown duration must be positive")
)

// Alarm is the single system-wide ringing alarm. At most one exists at a
// time; raise requests for other items while one is ringing are dropped.
type Alarm struct {
	ItemID string                `json:"itemId"`
	Title  string                `json:"title"`
	Body   string                `json:"body"`
	Source models.ReminderSource `json:"source"`
}

// CanSnooze reports whether the snooze action applies to this alarm
func (a Alarm) CanSnooze() bool {
	return a.Source != models.SourceTimer
}

// actions lists the user actions a client notification should offer
func (a Alarm) actions() []string {
	if a.CanSnooze() {
		return []string{"snooze", "dismiss"}
	}
	return []string{"dismiss"}
}

// haptic is the vibration pattern (ms on/off alternating) for this alarm
func (a Alarm) haptic() []int {
	if a.Source == models.SourceTimer {
		return []int{400, 200, 400}
	}
	return []int{200, 100, 200}
}

// tag is stable per item so repeated raises replace a client notification
// instead of stacking new ones
func (a Alarm) tag() string {
	return "zenith-alarm-" + a.ItemID
}
