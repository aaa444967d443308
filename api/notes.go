package api

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenith-app/zenith/models"
)

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// ListNotes handles GET /api/notes
func (a *API) ListNotes(c *gin.Context) {
	notes, err := a.db.ListNotes()
	if err != nil {
		RespondInternalError(c, "failed to list notes")
		return
	}
	RespondList(c, notes)
}

// CreateNote handles POST /api/notes
func (a *API) CreateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "title is required")
		return
	}

	note := models.Note{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Content: req.Content,
		Date:    time.Now().Format("2006-01-02"),
	}
	if err := a.db.CreateNote(note); err != nil {
		RespondInternalError(c, "failed to create note")
		return
	}

	a.notif.NotifyStateChanged()
	RespondCreated(c, note)
}

// DeleteNote handles DELETE /api/notes/:id
func (a *API) DeleteNote(c *gin.Context) {
	if err := a.db.DeleteNote(c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondNotFound(c, "note not found")
			return
		}
		RespondInternalError(c, "failed to delete note")
		return
	}
	a.notif.NotifyStateChanged()
	RespondNoContent(c)
}

// GetStudyStats handles GET /api/study/stats
func (a *API) GetStudyStats(c *gin.Context) {
	stats, err := a.db.GetStudyStats()
	if err != nil {
		RespondInternalError(c, "failed to load study stats")
		return
	}
	RespondData(c, stats)
}
