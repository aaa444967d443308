package api

import (
	"github.com/zenith-app/zenith/db"
	"github.com/zenith-app/zenith/engine"
	"github.com/zenith-app/zenith/log"
	"github.com/zenith-app/zenith/notifications"
)

var logger = log.GetLogger("api")

// API holds the handler dependencies
type API struct {
	db     *db.DB
	engine *engine.Engine
	notif  *notifications.Service
}

// New creates the API with its dependencies
func New(database *db.DB, eng *engine.Engine, notif *notifications.Service) *API {
	return &API{
		db:     database,
		engine: eng,
		notif:  notif,
	}
}
