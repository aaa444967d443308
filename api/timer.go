package api

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/zenith-app/zenith/engine"
)

type timerStartRequest struct {
	// Kind selects the countdown flavor: "focus", "break" or "exercise"
	Kind string `json:"kind" binding:"required"`
	// ItemID names the exercise being timed; required for kind "exercise"
	ItemID string `json:"itemId"`
	// Seconds is the countdown length; for exercises it defaults to the
	// exercise's configured duration
	Seconds int `json:"seconds"`
}

// GetTimer handles GET /api/timer, returning the active countdown or null
func (a *API) GetTimer(c *gin.Context) {
	countdown, ok := a.engine.CurrentCountdown()
	if !ok {
		RespondData[*engine.Countdown](c, nil)
		return
	}
	RespondData(c, &countdown)
}

// StartTimer handles POST /api/timer/start. Starting a new countdown
// replaces any running one.
func (a *API) StartTimer(c *gin.Context) {
	var req timerStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "kind is required")
		return
	}

	var (
		kind   engine.CountdownKind
		itemID string
		label  string
	)

	switch req.Kind {
	case "focus":
		kind, itemID, label = engine.CountdownFocus, "study:focus", "Focus session"
	case "break":
		kind, itemID, label = engine.CountdownBreak, "study:break", "Break"
	case "exercise":
		if req.ItemID == "" {
			RespondBadRequest(c, "itemId is required for exercise timers")
			return
		}
		exercise, err := a.db.GetExercise(req.ItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				RespondNotFound(c, "exercise not found")
				return
			}
			RespondInternalError(c, "failed to load exercise")
			return
		}
		kind, itemID, label = engine.CountdownExercise, exercise.ID, exercise.Name
		if req.Seconds <= 0 {
			req.Seconds = exercise.DurationMinutes * 60
		}
	default:
		RespondBadRequest(c, "kind must be focus, break or exercise")
		return
	}

	if req.Seconds <= 0 {
		RespondBadRequest(c, "seconds must be positive")
		return
	}

	if err := a.engine.StartCountdown(itemID, label, kind, req.Seconds); err != nil {
		RespondInternalError(c, "failed to start countdown")
		return
	}

	countdown, _ := a.engine.CurrentCountdown()
	RespondData(c, countdown)
}

// StopTimer handles POST /api/timer/stop, clearing the countdown without
// emitting completion
func (a *API) StopTimer(c *gin.Context) {
	if err := a.engine.StopCountdown(); err != nil {
		if errors.Is(err, engine.ErrNoCountdown) {
			RespondConflict(c, "no countdown is running")
			return
		}
		RespondInternalError(c, "failed to stop countdown")
		return
	}
	RespondNoContent(c)
}
