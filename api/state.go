package api

import (
	"github.com/gin-gonic/gin"
	"github.com/zenith-app/zenith/models"
)

// GetState handles GET /api/state, returning the full persisted snapshot
func (a *API) GetState(c *gin.Context) {
	snap, err := a.db.Snapshot()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load snapshot")
		RespondInternalError(c, "failed to load state")
		return
	}

	// Empty collections serialize as [] and {}, never null
	if snap.Routine == nil {
		snap.Routine = []models.Task{}
	}
	if snap.Goals == nil {
		snap.Goals = []models.Goal{}
	}
	if snap.Exercises == nil {
		snap.Exercises = []models.Exercise{}
	}
	if snap.Notes == nil {
		snap.Notes = []models.Note{}
	}
	if snap.Snoozed == nil {
		snap.Snoozed = map[string]string{}
	}
	RespondData(c, snap)
}
