package api

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenith-app/zenith/models"
)

type goalRequest struct {
	Title      string          `json:"title" binding:"required"`
	Kind       models.GoalKind `json:"kind"`
	Progress   int             `json:"progress"`
	TargetDate string          `json:"targetDate"`
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ListGoals handles GET /api/goals
func (a *API) ListGoals(c *gin.Context) {
	goals, err := a.db.ListGoals()
	if err != nil {
		RespondInternalError(c, "failed to list goals")
		return
	}
	RespondList(c, goals)
}

// CreateGoal handles POST /api/goals
func (a *API) CreateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "title is required")
		return
	}
	if req.Kind == "" {
		req.Kind = models.GoalShort
	}
	if !req.Kind.Valid() {
		RespondBadRequest(c, "kind must be short, mid or long")
		return
	}

	goal := models.Goal{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Kind:       req.Kind,
		Progress:   clampProgress(req.Progress),
		TargetDate: req.TargetDate,
	}
	if err := a.db.CreateGoal(goal); err != nil {
		RespondInternalError(c, "failed to create goal")
		return
	}

	a.notif.NotifyStateChanged()
	RespondCreated(c, goal)
}

// UpdateGoal handles PUT /api/goals/:id
func (a *API) UpdateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "title is required")
		return
	}
	if !req.Kind.Valid() {
		RespondBadRequest(c, "kind must be short, mid or long")
		return
	}

	goal := models.Goal{
		ID:         c.Param("id"),
		Title:      req.Title,
		Kind:       req.Kind,
		Progress:   clampProgress(req.Progress),
		TargetDate: req.TargetDate,
	}
	if err := a.db.UpdateGoal(goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "goal not found")
			return
		}
		RespondInternalError(c, "failed to update goal")
		return
	}

	a.notif.NotifyStateChanged()
	RespondData(c, goal)
}

// DeleteGoal handles DELETE /api/goals/:id
func (a *API) DeleteGoal(c *gin.Context) {
	if err := a.db.DeleteGoal(c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "goal not found")
			return
		}
		RespondInternalError(c, "failed to delete goal")
		return
	}
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}

// ClearGoals handles DELETE /api/goals
func (a *API) ClearGoals(c *gin.Context) {
	if err := a.db.ClearGoals(); err != nil {
		RespondInternalError(c, "failed to clear goals")
		return
	}
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}
