package engine

// CountdownKind distinguishes what a countdown is timing, which decides the
// completion alarm's wording and whether completion feeds the study stats.
type CountdownKind string

const (
	CountdownFocus    CountdownKind = "focus"
	CountdownBreak    CountdownKind = "break"
	CountdownExercise CountdownKind = "exercise"
)

// Countdown is the single system-wide decrementing counter. Starting a new
// one replaces the old; reaching zero completes exactly once and clears the
// slot.
type Countdown struct {
	ItemID       string        `json:"itemId"`
	Label        string        `json:"label"`
	Kind         CountdownKind `json:"kind"`
	SecondsLeft  int           `json:"secondsLeft"`
	TotalSeconds int           `json:"totalSeconds"`
}

// completionTitle is the notification title when this countdown finishes
func (c Countdown) completionTitle() string {
	switch c.Kind {
	case CountdownFocus, CountdownBreak:
		return "Zenith Focus"
	default:
		return "Exercise Done"
	}
}

// completionBody is the notification body when this countdown finishes
func (c Countdown) completionBody() string {
	switch c.Kind {
	case CountdownFocus:
		return "Focus session finished! Time for a break."
	case CountdownBreak:
		return "Break over! Ready to focus again?"
	default:
		return c.Label + " complete!"
	}
}
