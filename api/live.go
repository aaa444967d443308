package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/zenith-app/zenith/engine"
	"github.com/zenith-app/zenith/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local single-user server; the UI is served from the same origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveState is the per-second payload for the UI's live indicator: the
// ringing alarm and countdown position, without polling.
type liveState struct {
	Alarm     *engine.Alarm     `json:"alarm"`
	Countdown *engine.Countdown `json:"countdown"`
	Time      string            `json:"time"` // server wall-clock, RFC3339
}

// LiveSocket handles GET /api/live, a WebSocket pushing engine state once a
// second for as long as the client stays connected.
func (a *API) LiveSocket(c *gin.Context) {
	log.MarkHijacked(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger.Debug().Msg("live socket connected")

	// Drain client frames so pings/closes are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			state := liveState{Time: time.Now().Format(time.RFC3339)}
			if alarm, ok := a.engine.CurrentAlarm(); ok {
				state.Alarm = &alarm
			}
			if countdown, ok := a.engine.CurrentCountdown(); ok {
				state.Countdown = &countdown
			}

			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(state); err != nil {
				logger.Debug().Err(err).Msg("live socket closed")
				return
			}

		case <-c.Request.Context().Done():
			return
		}
	}
}
