package api

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenith-app/zenith/models"
)

type exerciseRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	Completed       bool   `json:"completed"`
	ReminderTime    string `json:"reminderTime"`
	AlarmEnabled    bool   `json:"alarmEnabled"`
	Position        int    `json:"position"`
}

// ListExercises handles GET /api/exercises
func (a *API) ListExercises(c *gin.Context) {
	exercises, err := a.db.ListExercises()
	if err != nil {
		RespondInternalError(c, "failed to list exercises")
		return
	}
	RespondList(c, exercises)
}

// CreateExercise handles POST /api/exercises
func (a *API) CreateExercise(c *gin.Context) {
	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "name is required")
		return
	}
	if req.ReminderTime != "" && !models.ValidTimeOfDay(req.ReminderTime) {
		RespondBadRequest(c, "reminderTime must be HH:MM")
		return
	}
	if req.DurationMinutes < 0 {
		RespondBadRequest(c, "durationMinutes must not be negative")
		return
	}

	exercise := models.Exercise{
		ID:              uuid.New().String(),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Completed:       req.Completed,
		ReminderTime:    req.ReminderTime,
		AlarmEnabled:    req.AlarmEnabled,
		Position:        req.Position,
	}
	if err := a.db.CreateExercise(exercise); err != nil {
		RespondInternalError(c, "failed to create exercise")
		return
	}

	a.notif.NotifyStateChanged()
	RespondCreated(c, exercise)
}

// UpdateExercise handles PUT /api/exercises/:id. Completion drops any
// outstanding snooze for the exercise.
func (a *API) UpdateExercise(c *gin.Context) {
	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "name is required")
		return
	}
	if req.ReminderTime != "" && !models.ValidTimeOfDay(req.ReminderTime) {
		RespondBadRequest(c, "reminderTime must be HH:MM")
		return
	}

	exercise := models.Exercise{
		ID:              c.Param("id"),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Completed:       req.Completed,
		ReminderTime:    req.ReminderTime,
		AlarmEnabled:    req.AlarmEnabled,
		Position:        req.Position,
	}
	if err := a.db.UpdateExercise(exercise); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "exercise not found")
			return
		}
		RespondInternalError(c, "failed to update exercise")
		return
	}

	if exercise.Completed {
		a.engine.ClearSnooze(exercise.ID)
	}
	a.notif.NotifyStateChanged()
	RespondData(c, exercise)
}

// DeleteExercise handles DELETE /api/exercises/:id
func (a *API) DeleteExercise(c *gin.Context) {
	id := c.Param("id")
	if err := a.db.DeleteExercise(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "exercise not found")
			return
		}
		RespondInternalError(c, "failed to delete exercise")
		return
	}

	a.engine.ClearSnooze(id)
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}

// ClearExercises handles DELETE /api/exercises
func (a *API) ClearExercises(c *gin.Context) {
	if err := a.db.ClearExercises(); err != nil {
		RespondInternalError(c, "failed to clear exercises")
		return
	}
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}
