package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zenith-app/zenith/log"
)

// GetSettings handles GET /api/settings
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.db.GetAllSettings()
	if err != nil {
		RespondInternalError(c, "failed to load settings")
		return
	}
	RespondData(c, settings)
}

// UpdateSettings handles PUT /api/settings with a flat key/value object.
// Keys the engine consumes (log_level, snooze_minutes) take effect
// immediately, not just on restart.
func (a *API) UpdateSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "expected an object of string settings")
		return
	}

	// Validate before persisting anything
	if v, ok := req["snooze_minutes"]; ok {
		if minutes, err := strconv.Atoi(v); err != nil || minutes <= 0 {
			RespondBadRequest(c, "snooze_minutes must be a positive integer")
			return
		}
	}

	for key, value := range req {
		if err := a.db.SetSetting(key, value); err != nil {
			RespondInternalError(c, "failed to save settings")
			return
		}

		switch key {
		case "log_level":
			log.SetLevel(value)
		case "snooze_minutes":
			minutes, _ := strconv.Atoi(value)
			a.engine.SetSnoozeMinutes(minutes)
		}
	}

	settings, err := a.db.GetAllSettings()
	if err != nil {
		RespondInternalError(c, "failed to load settings")
		return
	}
	RespondData(c, settings)
}
