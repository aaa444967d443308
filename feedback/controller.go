package feedback

import "sync"

// Controller is the sensory side of an alarm: a looping audible chime on the
// host machine while the alarm rings, stopped the instant it clears. It is
// edge-triggered and idempotent; every failure is swallowed after logging,
// never blocking a state transition.
type Controller struct {
	mu      sync.Mutex
	enabled bool
	current *player
}

// NewController creates a controller. With enabled false every call is a
// no-op, which is also the natural stand-in for tests.
func NewController(enabled bool) *Controller {
	return &Controller{enabled: enabled}
}

// Start begins the looping chime. Calling Start while already playing is a
// no-op; feedback reacts to edges, not levels.
func (c *Controller) Start() {
	if c == nil || !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		return
	}

	initAudioContext()
	if !audioReady {
		return
	}

	p := newPlayer()
	c.current = p
	go p.loop(chimePCM())
}

// Stop silences the chime immediately
func (c *Controller) Stop() {
	if c == nil || !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return
	}
	c.current.stop()
	c.current = nil
}
