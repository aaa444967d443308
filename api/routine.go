package api

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenith-app/zenith/models"
)

type taskRequest struct {
	Text         string `json:"text" binding:"required"`
	Completed    bool   `json:"completed"`
	Time         string `json:"time"`
	AlarmEnabled bool   `json:"alarmEnabled"`
	Position     int    `json:"position"`
}

// ListRoutine handles GET /api/routine
func (a *API) ListRoutine(c *gin.Context) {
	tasks, err := a.db.ListTasks()
	if err != nil {
		RespondInternalError(c, "failed to list routine")
		return
	}
	RespondList(c, tasks)
}

// CreateTask handles POST /api/routine
func (a *API) CreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "text is required")
		return
	}
	if req.Time != "" && !models.ValidTimeOfDay(req.Time) {
		RespondBadRequest(c, "time must be HH:MM")
		return
	}

	task := models.Task{
		ID:           uuid.New().String(),
		Text:         req.Text,
		Completed:    req.Completed,
		Time:         req.Time,
		AlarmEnabled: req.AlarmEnabled,
		Position:     req.Position,
	}
	if err := a.db.CreateTask(task); err != nil {
		RespondInternalError(c, "failed to create task")
		return
	}

	a.notif.NotifyStateChanged()
	RespondCreated(c, task)
}

// UpdateTask handles PUT /api/routine/:id. Marking a task complete drops its
// snooze entry; a completed item's deferred reminder is moot.
func (a *API) UpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "text is required")
		return
	}
	if req.Time != "" && !models.ValidTimeOfDay(req.Time) {
		RespondBadRequest(c, "time must be HH:MM")
		return
	}

	task := models.Task{
		ID:           c.Param("id"),
		Text:         req.Text,
		Completed:    req.Completed,
		Time:         req.Time,
		AlarmEnabled: req.AlarmEnabled,
		Position:     req.Position,
	}
	if err := a.db.UpdateTask(task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "task not found")
			return
		}
		RespondInternalError(c, "failed to update task")
		return
	}

	if task.Completed {
		a.engine.ClearSnooze(task.ID)
	}
	a.notif.NotifyStateChanged()
	RespondData(c, task)
}

// DeleteTask handles DELETE /api/routine/:id
func (a *API) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	if err := a.db.DeleteTask(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "task not found")
			return
		}
		RespondInternalError(c, "failed to delete task")
		return
	}

	a.engine.ClearSnooze(id)
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}

// ResetRoutine handles POST /api/routine/reset, marking every task
// incomplete for the new day
func (a *API) ResetRoutine(c *gin.Context) {
	if err := a.db.ResetRoutine(); err != nil {
		RespondInternalError(c, "failed to reset routine")
		return
	}
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}

// ClearRoutine handles DELETE /api/routine
func (a *API) ClearRoutine(c *gin.Context) {
	if err := a.db.ClearTasks(); err != nil {
		RespondInternalError(c, "failed to clear routine")
		return
	}
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}
