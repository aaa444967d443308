package api

import "github.com/gin-gonic/gin"

// SetupRoutes configures all API routes
func (a *API) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Full state snapshot
	api.GET("/state", a.GetState)

	// Routine checklist
	api.GET("/routine", a.ListRoutine)
	api.POST("/routine", a.CreateTask)
	api.PUT("/routine/:id", a.UpdateTask)
	api.DELETE("/routine/:id", a.DeleteTask)
	api.POST("/routine/reset", a.ResetRoutine)
	api.DELETE("/routine", a.ClearRoutine)

	// Goals
	api.GET("/goals", a.ListGoals)
	api.POST("/goals", a.CreateGoal)
	api.PUT("/goals/:id", a.UpdateGoal)
	api.DELETE("/goals/:id", a.DeleteGoal)
	api.DELETE("/goals", a.ClearGoals)

	// Exercises
	api.GET("/exercises", a.ListExercises)
	api.POST("/exercises", a.CreateExercise)
	api.PUT("/exercises/:id", a.UpdateExercise)
	api.DELETE("/exercises/:id", a.DeleteExercise)
	api.DELETE("/exercises", a.ClearExercises)

	// Notes
	api.GET("/notes", a.ListNotes)
	api.POST("/notes", a.CreateNote)
	api.DELETE("/notes/:id", a.DeleteNote)

	// Study stats
	api.GET("/study/stats", a.GetStudyStats)

	// Alarm actions
	api.GET("/alarm", a.GetAlarm)
	api.POST("/alarm/dismiss", a.DismissAlarm)
	api.POST("/alarm/snooze", a.SnoozeAlarm)

	// Countdown timer
	api.GET("/timer", a.GetTimer)
	api.POST("/timer/start", a.StartTimer)
	api.POST("/timer/stop", a.StopTimer)

	// Settings
	api.GET("/settings", a.GetSettings)
	api.PUT("/settings", a.UpdateSettings)

	// Event push
	api.GET("/events", a.EventStream)
	api.GET("/live", a.LiveSocket)
}
