package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/zenith-app/zenith/engine"
)

// GetAlarm handles GET /api/alarm, returning the ringing alarm or null
func (a *API) GetAlarm(c *gin.Context) {
	alarm, ok := a.engine.CurrentAlarm()
	if !ok {
		RespondData[*engine.Alarm](c, nil)
		return
	}
	RespondData(c, &alarm)
}

// DismissAlarm handles POST /api/alarm/dismiss
func (a *API) DismissAlarm(c *gin.Context) {
	if err := a.engine.Dismiss(); err != nil {
		if errors.Is(err, engine.ErrNoAlarm) {
			RespondConflict(c, "no alarm is ringing")
			return
		}
		RespondInternalError(c, "failed to dismiss alarm")
		return
	}
	RespondNoContent(c)
}

// SnoozeAlarm handles POST /api/alarm/snooze
func (a *API) SnoozeAlarm(c *gin.Context) {
	if err := a.engine.Snooze(); err != nil {
		switch {
		case errors.Is(err, engine.ErrNoAlarm):
			RespondConflict(c, "no alarm is ringing")
		case errors.Is(err, engine.ErrCannotSnooze):
			RespondConflict(c, "timer alarms cannot be snoozed")
		default:
			RespondInternalError(c, "failed to snooze alarm")
		}
		return
	}
	RespondNoContent(c)
}
