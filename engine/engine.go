package engine

import (
	"sync"
	"time"

	"github.com/zenith-app/zenith/log"
	"github.com/zenith-app/zenith/models"
	"github.com/zenith-app/zenith/notifications"
)

var logger = log.GetLogger("engine")

// Store is the persistence the engine consumes: the reminder-bearing items
// to scan each tick, the snooze registry, and the study stats sink.
type Store interface {
	ReminderItems() ([]models.ReminderItem, error)
	ListSnoozes() (map[string]string, error)
	SetSnooze(itemID, until string) error
	DeleteSnooze(itemID string) error
	AddStudyMinutes(minutes int, lastSession string) error
}

// Feedback produces the looping sensory output while an alarm rings.
// Implementations must be edge-triggered and idempotent; failures are
// theirs to swallow.
type Feedback interface {
	Start()
	Stop()
}

// Options configures an Engine
type Options struct {
	Clock         Clock
	TickInterval  time.Duration
	SnoozeMinutes int
}

// Engine owns the two single-slot registers (active alarm, active countdown)
// and the snooze registry, and mutates them only inside the tick handler or
// the direct user-action methods. One mutex serializes both, realizing the
// single-logical-thread model.
type Engine struct {
	mu     sync.Mutex
	clock  Clock
	store  Store
	notif  *notifications.Service
	fb     Feedback
	opts   Options

	alarm     *Alarm
	countdown *Countdown
	snoozes   map[string]string

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates an engine. The snooze registry is restored from the store on
// Start; a failed restore starts empty rather than failing.
func New(store Store, notif *notifications.Service, fb Feedback, opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.SnoozeMinutes <= 0 {
		opts.SnoozeMinutes = 5
	}
	return &Engine{
		clock:    opts.Clock,
		store:    store,
		notif:    notif,
		fb:       fb,
		opts:     opts,
		snoozes:  make(map[string]string),
		stopChan: make(chan struct{}),
	}
}

// Start restores the snooze registry and begins the tick loop
func (e *Engine) Start() {
	if snoozes, err := e.store.ListSnoozes(); err != nil {
		logger.Warn().Err(err).Msg("failed to restore snooze registry, starting empty")
	} else {
		e.mu.Lock()
		e.snoozes = snoozes
		e.mu.Unlock()
	}

	e.wg.Add(1)
	go e.run()
	logger.Info().Dur("interval", e.opts.TickInterval).Msg("engine started")
}

// Stop halts the tick loop
func (e *Engine) Stop() {
	close(e.stopChan)
	e.wg.Wait()
	logger.Info().Msg("engine stopped")
}

func (e *Engine) run() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.Tick()
		case <-e.stopChan:
			return
		}
	}
}

// Tick runs one evaluation pass: the countdown decrements first, then the
// reminder matcher scans. Exported so tests can drive virtual time.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.tickCountdownLocked(now)
	e.matchRemindersLocked(now)
}

// tickCountdownLocked decrements the active countdown and handles completion
func (e *Engine) tickCountdownLocked(now time.Time) {
	if e.countdown == nil {
		return
	}

	e.countdown.SecondsLeft--
	if e.countdown.SecondsLeft > 0 {
		return
	}

	// Completion fires exactly once; the slot is cleared, not left at zero
	done := *e.countdown
	e.countdown = nil

	logger.Info().Str("item", done.ItemID).Str("kind", string(done.Kind)).Msg("countdown complete")
	e.notif.NotifyCountdownComplete(done.ItemID)

	if done.Kind == CountdownFocus {
		minutes := done.TotalSeconds / 60
		if err := e.store.AddStudyMinutes(minutes, now.Format(time.Kitchen)); err != nil {
			logger.Error().Err(err).Msg("failed to record study session")
		}
		e.notif.NotifyStateChanged()
	}

	e.raiseLocked(Alarm{
		ItemID: done.ItemID,
		Title:  done.completionTitle(),
		Body:   done.completionBody(),
		Source: models.SourceTimer,
	})
}

// matchRemindersLocked scans all reminder-bearing items against the current
// minute, honoring snooze overrides.
func (e *Engine) matchRemindersLocked(now time.Time) {
	items, err := e.store.ReminderItems()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load reminder items")
		return
	}

	nowStr := models.FormatTimeOfDay(now)
	for _, item := range items {
		if !item.Eligible() {
			continue
		}

		effective := item.Time
		if until, ok := e.snoozes[item.ID]; ok {
			effective = until
		}
		if effective != nowStr {
			continue
		}

		e.raiseLocked(Alarm{
			ItemID: item.ID,
			Title:  item.NotificationTitle(),
			Body:   item.NotificationBody(),
			Source: item.Source,
		})
	}
}

// raiseLocked attempts the IDLE -> RINGING transition. A same-item re-match
// is a no-op; a different-item request while ringing is dropped. The match
// is seen every tick of the matching minute, so idempotence here is what
// prevents infinite re-raises.
func (e *Engine) raiseLocked(a Alarm) {
	if e.alarm != nil {
		if e.alarm.ItemID != a.ItemID {
			logger.Debug().
				Str("ringing", e.alarm.ItemID).
				Str("dropped", a.ItemID).
				Msg("alarm already ringing, dropping raise")
		}
		return
	}

	e.alarm = &a
	logger.Info().Str("item", a.ItemID).Str("source", string(a.Source)).Msg("alarm raised")

	e.fb.Start()
	e.notif.NotifyAlarmRaised(notifications.AlarmPayload{
		ItemID:  a.ItemID,
		Title:   a.Title,
		Body:    a.Body,
		Source:  string(a.Source),
		Tag:     a.tag(),
		Actions: a.actions(),
		Haptic:  a.haptic(),
	})
}

// CurrentAlarm returns the ringing alarm, if any
func (e *Engine) CurrentAlarm() (Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.alarm == nil {
		return Alarm{}, false
	}
	return *e.alarm, true
}

// Dismiss clears the ringing alarm and removes the item's snooze entry.
// The item's completion and alarm-enabled flags are untouched.
func (e *Engine) Dismiss() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.alarm == nil {
		return ErrNoAlarm
	}

	itemID := e.alarm.ItemID
	e.alarm = nil
	e.deleteSnoozeLocked(itemID)
	e.fb.Stop()

	logger.Info().Str("item", itemID).Msg("alarm dismissed")
	e.notif.NotifyAlarmCleared(itemID)
	return nil
}

// Snooze defers the ringing reminder by the configured snooze offset,
// written into the registry as a zero-padded "HH:MM", and clears the alarm.
// Timer-completion alarms cannot be snoozed.
func (e *Engine) Snooze() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.alarm == nil {
		return ErrNoAlarm
	}
	if !e.alarm.CanSnooze() {
		return ErrCannotSnooze
	}

	itemID := e.alarm.ItemID
	until := models.FormatTimeOfDay(e.clock.Now().Add(time.Duration(e.opts.SnoozeMinutes) * time.Minute))

	e.snoozes[itemID] = until
	if err := e.store.SetSnooze(itemID, until); err != nil {
		logger.Error().Err(err).Str("item", itemID).Msg("failed to persist snooze")
	}

	e.alarm = nil
	e.fb.Stop()

	logger.Info().Str("item", itemID).Str("until", until).Msg("alarm snoozed")
	e.notif.NotifyAlarmSnoozed(itemID, until)
	return nil
}

// SetSnoozeMinutes changes the deferral applied by subsequent snoozes.
// Non-positive values are ignored; an already-written registry entry keeps
// its original time.
func (e *Engine) SetSnoozeMinutes(minutes int) {
	if minutes <= 0 {
		return
	}
	e.mu.Lock()
	e.opts.SnoozeMinutes = minutes
	e.mu.Unlock()
}

// ClearSnooze drops an item's snooze entry. Called when the item is marked
// complete or deleted; a completed item's deferred reminder is moot.
func (e *Engine) ClearSnooze(itemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deleteSnoozeLocked(itemID)
}

func (e *Engine) deleteSnoozeLocked(itemID string) {
	if _, ok := e.snoozes[itemID]; !ok {
		return
	}
	delete(e.snoozes, itemID)
	if err := e.store.DeleteSnooze(itemID); err != nil {
		logger.Error().Err(err).Str("item", itemID).Msg("failed to delete snooze")
	}
}

// SnoozedUntil returns an item's deferred trigger time, if any
func (e *Engine) SnoozedUntil(itemID string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	until, ok := e.snoozes[itemID]
	return until, ok
}

// StartCountdown begins a countdown for an item, replacing any existing one.
// The replaced countdown never completes; an already ringing alarm is left
// ringing.
func (e *Engine) StartCountdown(itemID, label string, kind CountdownKind, seconds int) error {
	if seconds <= 0 {
		return errInvalidDuration
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.countdown = &Countdown{
		ItemID:       itemID,
		Label:        label,
		Kind:         kind,
		SecondsLeft:  seconds,
		TotalSeconds: seconds,
	}

	logger.Info().Str("item", itemID).Int("seconds", seconds).Str("kind", string(kind)).Msg("countdown started")
	e.notif.NotifyCountdownStarted(itemID, seconds)
	return nil
}

// StopCountdown clears the countdown without emitting completion
func (e *Engine) StopCountdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.countdown == nil {
		return ErrNoCountdown
	}

	itemID := e.countdown.ItemID
	e.countdown = nil

	logger.Info().Str("item", itemID).Msg("countdown stopped")
	e.notif.NotifyCountdownStopped(itemID)
	return nil
}

// CurrentCountdown returns the active countdown, if any
func (e *Engine) CurrentCountdown() (Countdown, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.countdown == nil {
		return Countdown{}, false
	}
	return *e.countdown, true
}

// CountdownRemaining returns the seconds left on the active countdown
func (e *Engine) CountdownRemaining() (int, bool) {
	c, ok := e.CurrentCountdown()
	if !ok {
		return 0, false
	}
	return c.SecondsLeft, true
}
