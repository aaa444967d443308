package models

// Task is a single entry in the daily routine checklist
type Task struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Completed    bool   `json:"completed"`
	Time         string `json:"time,omitempty"` // "HH:MM", empty means no reminder
	AlarmEnabled bool   `json:"alarmEnabled"`
	Position     int    `json:"position"`
}

// GoalKind is the planning horizon of a goal
type GoalKind string

const (
	GoalShort GoalKind = "short"
	GoalMid   GoalKind = "mid"
	GoalLong  GoalKind = "long"
)

// Valid reports whether k is a known goal kind
func (k GoalKind) Valid() bool {
	return k == GoalShort || k == GoalMid || k == GoalLong
}

// Goal is a tracked objective with a progress bar
type Goal struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Kind       GoalKind `json:"kind"`
	Progress   int      `json:"progress"` // 0 to 100
	TargetDate string   `json:"targetDate,omitempty"`
}

// Exercise is a timed exercise with an optional daily reminder
type Exercise struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Completed       bool   `json:"completed"`
	ReminderTime    string `json:"reminderTime,omitempty"` // "HH:MM", empty means no reminder
	AlarmEnabled    bool   `json:"alarmEnabled"`
	Position        int    `json:"position"`
}

// Note is a free-text journal entry
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// StudyStats accumulates completed focus session time
type StudyStats struct {
	TotalMinutes int    `json:"totalMinutes"`
	LastSession  string `json:"lastSession"`
}

// Snapshot is the full persisted application state returned to the UI
type Snapshot struct {
	Routine    []Task            `json:"routine"`
	Goals      []Goal            `json:"goals"`
	Exercises  []Exercise        `json:"exercises"`
	Notes      []Note            `json:"notes"`
	StudyStats StudyStats        `json:"studyStats"`
	Snoozed    map[string]string `json:"snoozed"` // item ID -> deferred "HH:MM"
}
