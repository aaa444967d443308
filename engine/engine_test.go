package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/zenith-app/zenith/models"
	"github.com/zenith-app/zenith/notifications"
)

// fakeClock lets tests drive virtual wall-clock time through the tick path
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) set(hour, minute, second int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = time.Date(2026, 3, 14, hour, minute, second, 0, time.Local)
}

// fakeStore is an in-memory Store
type fakeStore struct {
	items        []models.ReminderItem
	snoozes      map[string]string
	studyMinutes int
	lastSession  string
}

func newFakeStore() *fakeStore {
	return &fakeStore{snoozes: make(map[string]string)}
}

func (s *fakeStore) ReminderItems() ([]models.ReminderItem, error) { return s.items, nil }
func (s *fakeStore) ListSnoozes() (map[string]string, error) {
	out := make(map[string]string, len(s.snoozes))
	for k, v := range s.snoozes {
		out[k] = v
	}
	return out, nil
}
func (s *fakeStore) SetSnooze(itemID, until string) error {
	s.snoozes[itemID] = until
	return nil
}
func (s *fakeStore) DeleteSnooze(itemID string) error {
	delete(s.snoozes, itemID)
	return nil
}
func (s *fakeStore) AddStudyMinutes(minutes int, lastSession string) error {
	s.studyMinutes += minutes
	s.lastSession = lastSession
	return nil
}

// spyFeedback records edge transitions
type spyFeedback struct {
	starts int
	stops  int
}

func (f *spyFeedback) Start() { f.starts++ }
func (f *spyFeedback) Stop()  { f.stops++ }

type fixture struct {
	engine *Engine
	clock  *fakeClock
	store  *fakeStore
	fb     *spyFeedback
	events <-chan notifications.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := &fakeClock{}
	clock.set(0, 0, 0)
	store := newFakeStore()
	fb := &spyFeedback{}
	notif := notifications.NewService()

	events, unsubscribe := notif.Subscribe()
	t.Cleanup(unsubscribe)

	// The loop interval is long enough that only explicit Tick calls run
	eng := New(store, notif, fb, Options{
		Clock:         clock,
		TickInterval:  time.Hour,
		SnoozeMinutes: 5,
	})

	return &fixture{engine: eng, clock: clock, store: store, fb: fb, events: events}
}

// countEvents drains buffered events and counts those of the given type
func (f *fixture) countEvents(eventType notifications.EventType) int {
	count := 0
	for {
		select {
		case ev := <-f.events:
			if ev.Type == eventType {
				count++
			}
		default:
			return count
		}
	}
}

func reminderAt(id, label, at string) models.ReminderItem {
	return models.ReminderItem{
		ID:           id,
		Label:        label,
		Time:         at,
		AlarmEnabled: true,
		Source:       models.SourceRoutine,
	}
}

func TestDisabledOrCompletedItemsNeverAlarm(t *testing.T) {
	f := newFixture(t)

	disabled := reminderAt("a", "Stretch", "06:00")
	disabled.AlarmEnabled = false
	completed := reminderAt("b", "Hydrate", "06:00")
	completed.Completed = true
	untimed := reminderAt("c", "Journal", "")
	f.store.items = []models.ReminderItem{disabled, completed, untimed}

	f.clock.set(6, 0, 0)
	for i := 0; i < 120; i++ {
		f.engine.Tick()
		f.clock.set(6, 0, i/2)
	}

	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Fatal("no alarm should have been raised")
	}
	if f.fb.starts != 0 {
		t.Errorf("feedback started %d times, want 0", f.fb.starts)
	}
}

func TestReminderMatchRaisesAlarmOnce(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Wake up at 6:00 AM", "06:00")}

	f.clock.set(6, 0, 0)
	f.engine.Tick()

	alarm, ok := f.engine.CurrentAlarm()
	if !ok {
		t.Fatal("expected an alarm at 06:00")
	}
	if alarm.ItemID != "1" {
		t.Errorf("alarm item = %q, want %q", alarm.ItemID, "1")
	}
	if alarm.Body != "Time to: Wake up at 6:00 AM" {
		t.Errorf("alarm body = %q", alarm.Body)
	}

	// The same minute keeps matching; the ringing alarm must absorb it
	f.clock.set(6, 0, 30)
	f.engine.Tick()

	again, ok := f.engine.CurrentAlarm()
	if !ok || again != alarm {
		t.Fatal("alarm should be unchanged by a same-minute re-match")
	}
	if got := f.countEvents(notifications.EventAlarmRaised); got != 1 {
		t.Errorf("alarm-raised events = %d, want 1", got)
	}
	if f.fb.starts != 1 {
		t.Errorf("feedback starts = %d, want 1", f.fb.starts)
	}
}

func TestSecondSimultaneousMatchIsDropped(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{
		reminderAt("x", "Run", "09:00"),
		reminderAt("y", "Meditate", "09:00"),
	}

	f.clock.set(9, 0, 0)
	f.engine.Tick()

	alarm, ok := f.engine.CurrentAlarm()
	if !ok {
		t.Fatal("expected an alarm at 09:00")
	}
	if alarm.ItemID != "x" {
		t.Errorf("first matched item should ring, got %q", alarm.ItemID)
	}

	// Later ticks in the same minute must not replace the ringing alarm
	f.clock.set(9, 0, 45)
	f.engine.Tick()

	still, _ := f.engine.CurrentAlarm()
	if still.ItemID != "x" {
		t.Errorf("ringing alarm changed to %q", still.ItemID)
	}
	if got := f.countEvents(notifications.EventAlarmRaised); got != 1 {
		t.Errorf("alarm-raised events = %d, want 1", got)
	}
}

func TestDismissReturnsToIdleAndClearsSnooze(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Yoga", "07:00")}
	f.store.snoozes["1"] = "07:00"

	f.engine.Start()
	defer f.engine.Stop()

	f.clock.set(7, 0, 0)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); !ok {
		t.Fatal("expected an alarm")
	}

	if err := f.engine.Dismiss(); err != nil {
		t.Fatalf("Dismiss() error: %v", err)
	}
	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Fatal("machine should be idle after dismiss")
	}
	if _, ok := f.store.snoozes["1"]; ok {
		t.Error("dismiss should clear the snooze entry")
	}
	if f.fb.stops == 0 {
		t.Error("feedback should stop on dismiss")
	}
}

func TestDismissWithoutAlarm(t *testing.T) {
	f := newFixture(t)
	if err := f.engine.Dismiss(); err != ErrNoAlarm {
		t.Errorf("Dismiss() = %v, want ErrNoAlarm", err)
	}
	if err := f.engine.Snooze(); err != ErrNoAlarm {
		t.Errorf("Snooze() = %v, want ErrNoAlarm", err)
	}
}

func TestSnoozeDefersByFiveMinutes(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("itemX", "Pushups", "07:58")}

	f.clock.set(7, 58, 10)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); !ok {
		t.Fatal("expected an alarm at 07:58")
	}

	if err := f.engine.Snooze(); err != nil {
		t.Fatalf("Snooze() error: %v", err)
	}
	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Fatal("machine should be idle after snooze")
	}
	if until := f.store.snoozes["itemX"]; until != "08:03" {
		t.Errorf("snooze registry entry = %q, want %q", until, "08:03")
	}

	// The original minute no longer matches: the snooze override governs
	f.clock.set(7, 58, 40)
	f.engine.Tick()
	for m := 59; m <= 62; m++ {
		f.clock.set(7+m/60, m%60, 0)
		f.engine.Tick()
	}
	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Fatal("no alarm expected before the snoozed time")
	}

	f.clock.set(8, 3, 0)
	f.engine.Tick()
	alarm, ok := f.engine.CurrentAlarm()
	if !ok || alarm.ItemID != "itemX" {
		t.Fatalf("expected the snoozed alarm to re-raise at 08:03, got %+v ok=%v", alarm, ok)
	}
}

func TestSnoozePadsSingleDigits(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Read", "08:59")}

	f.clock.set(8, 59, 0)
	f.engine.Tick()
	if err := f.engine.Snooze(); err != nil {
		t.Fatalf("Snooze() error: %v", err)
	}
	if until := f.store.snoozes["1"]; until != "09:04" {
		t.Errorf("snooze entry = %q, want zero-padded %q", until, "09:04")
	}
}

func TestSnoozeOverwritesPreviousEntry(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Walk", "10:00")}

	f.clock.set(10, 0, 0)
	f.engine.Tick()
	f.engine.Snooze() // -> 10:05

	f.clock.set(10, 5, 0)
	f.engine.Tick()
	if err := f.engine.Snooze(); err != nil { // -> 10:10
		t.Fatalf("second Snooze() error: %v", err)
	}

	if until := f.store.snoozes["1"]; until != "10:10" {
		t.Errorf("snooze entry = %q, want %q (at most one per item)", until, "10:10")
	}
}

func TestSnoozeWrapsPastMidnight(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Wind down", "23:58")}

	f.clock.set(23, 58, 0)
	f.engine.Tick()
	if err := f.engine.Snooze(); err != nil {
		t.Fatalf("Snooze() error: %v", err)
	}
	if until := f.store.snoozes["1"]; until != "00:03" {
		t.Errorf("snooze entry = %q, want wrapped %q", until, "00:03")
	}

	// The entry is a bare time of day, so it fires when the clock next
	// reads 00:03
	f.clock.set(0, 3, 0)
	f.engine.Tick()
	alarm, ok := f.engine.CurrentAlarm()
	if !ok || alarm.ItemID != "1" {
		t.Fatalf("expected the wrapped snooze to re-raise at 00:03, got %+v ok=%v", alarm, ok)
	}
}

func TestSetSnoozeMinutes(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Stretch", "10:00")}

	f.engine.SetSnoozeMinutes(10)

	f.clock.set(10, 0, 0)
	f.engine.Tick()
	if err := f.engine.Snooze(); err != nil {
		t.Fatalf("Snooze() error: %v", err)
	}
	if until := f.store.snoozes["1"]; until != "10:10" {
		t.Errorf("snooze entry = %q, want %q", until, "10:10")
	}

	// Non-positive values leave the offset untouched
	f.engine.SetSnoozeMinutes(0)
	f.clock.set(10, 10, 0)
	f.engine.Tick()
	if err := f.engine.Snooze(); err != nil {
		t.Fatalf("second Snooze() error: %v", err)
	}
	if until := f.store.snoozes["1"]; until != "10:20" {
		t.Errorf("snooze entry = %q, want %q", until, "10:20")
	}
}

func TestMalformedTimeNeverMatches(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{
		reminderAt("1", "Sloppy", "9:00"), // not zero-padded
		reminderAt("2", "Bogus", "25:61"),
	}

	f.clock.set(9, 0, 0)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Fatal("malformed schedule strings must never match")
	}
}

func TestCountdownCompletesExactlyOnce(t *testing.T) {
	f := newFixture(t)

	if err := f.engine.StartCountdown("itemA", "Morning Yoga", CountdownExercise, 120); err != nil {
		t.Fatalf("StartCountdown() error: %v", err)
	}

	for i := 0; i < 119; i++ {
		f.engine.Tick()
	}
	if left, ok := f.engine.CountdownRemaining(); !ok || left != 1 {
		t.Fatalf("remaining = %d ok=%v, want 1 true", left, ok)
	}
	if got := f.countEvents(notifications.EventCountdownComplete); got != 0 {
		t.Fatalf("completion fired early, events = %d", got)
	}

	// 120th tick: completion fires and the slot is cleared, not left at zero
	f.engine.Tick()
	if _, ok := f.engine.CountdownRemaining(); ok {
		t.Fatal("countdown should cease to exist after completing")
	}
	if got := f.countEvents(notifications.EventCountdownComplete); got != 1 {
		t.Errorf("completion events = %d, want 1", got)
	}

	alarm, ok := f.engine.CurrentAlarm()
	if !ok || alarm.Source != models.SourceTimer {
		t.Fatalf("expected a timer-completion alarm, got %+v ok=%v", alarm, ok)
	}

	// Further ticks must not re-fire
	for i := 0; i < 10; i++ {
		f.engine.Tick()
	}
	if got := f.countEvents(notifications.EventCountdownComplete); got != 0 {
		t.Errorf("completion re-fired %d times", got)
	}
}

func TestStopSuppressesCompletion(t *testing.T) {
	f := newFixture(t)

	f.engine.StartCountdown("itemA", "Pushups", CountdownExercise, 3)
	f.engine.Tick()
	if err := f.engine.StopCountdown(); err != nil {
		t.Fatalf("StopCountdown() error: %v", err)
	}

	for i := 0; i < 10; i++ {
		f.engine.Tick()
	}
	if got := f.countEvents(notifications.EventCountdownComplete); got != 0 {
		t.Errorf("completion fired after stop, events = %d", got)
	}
	if err := f.engine.StopCountdown(); err != ErrNoCountdown {
		t.Errorf("second StopCountdown() = %v, want ErrNoCountdown", err)
	}
}

func TestStartReplacesRunningCountdown(t *testing.T) {
	f := newFixture(t)

	f.engine.StartCountdown("old", "Old", CountdownExercise, 100)
	f.engine.StartCountdown("new", "New", CountdownExercise, 50)

	for i := 0; i < 50; i++ {
		f.engine.Tick()
	}

	if got := f.countEvents(notifications.EventCountdownComplete); got != 1 {
		t.Fatalf("completion events = %d, want 1 (the replaced countdown must never complete)", got)
	}
	alarm, ok := f.engine.CurrentAlarm()
	if !ok || alarm.ItemID != "new" {
		t.Errorf("completion alarm = %+v ok=%v, want item %q", alarm, ok, "new")
	}
}

func TestTimerAlarmRejectsSnooze(t *testing.T) {
	f := newFixture(t)

	f.engine.StartCountdown("study:focus", "Focus session", CountdownFocus, 1)
	f.engine.Tick()

	if _, ok := f.engine.CurrentAlarm(); !ok {
		t.Fatal("expected a timer-completion alarm")
	}
	if err := f.engine.Snooze(); err != ErrCannotSnooze {
		t.Errorf("Snooze() = %v, want ErrCannotSnooze", err)
	}
	if err := f.engine.Dismiss(); err != nil {
		t.Errorf("Dismiss() error: %v", err)
	}
}

func TestFocusCompletionRecordsStudyStats(t *testing.T) {
	f := newFixture(t)

	f.engine.StartCountdown("study:focus", "Focus session", CountdownFocus, 25*60)
	for i := 0; i < 25*60; i++ {
		f.engine.Tick()
	}

	if f.store.studyMinutes != 25 {
		t.Errorf("recorded study minutes = %d, want 25", f.store.studyMinutes)
	}
	if f.store.lastSession == "" {
		t.Error("last session should be stamped")
	}
}

func TestBreakCompletionDoesNotRecordStats(t *testing.T) {
	f := newFixture(t)

	f.engine.StartCountdown("study:break", "Break", CountdownBreak, 60)
	for i := 0; i < 60; i++ {
		f.engine.Tick()
	}

	if f.store.studyMinutes != 0 {
		t.Errorf("break completion recorded %d study minutes", f.store.studyMinutes)
	}
}

func TestCountdownCompletionDroppedWhileRinging(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("r", "Stretch", "11:00")}

	f.clock.set(11, 0, 0)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); !ok {
		t.Fatal("expected the reminder alarm")
	}

	f.engine.StartCountdown("ex", "Plank", CountdownExercise, 2)
	f.engine.Tick()
	f.engine.Tick()

	// Completion still fires, but the timer alarm is dropped while the
	// reminder alarm rings
	if got := f.countEvents(notifications.EventCountdownComplete); got != 1 {
		t.Errorf("completion events = %d, want 1", got)
	}
	alarm, _ := f.engine.CurrentAlarm()
	if alarm.ItemID != "r" {
		t.Errorf("ringing alarm = %q, want the original reminder", alarm.ItemID)
	}
}

func TestStartRestoresSnoozeRegistry(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Walk", "10:00")}
	f.store.snoozes["1"] = "12:30"

	f.engine.Start()
	defer f.engine.Stop()

	// Scheduled time is overridden by the restored snooze entry
	f.clock.set(10, 0, 0)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Fatal("snoozed item must not ring at its original time")
	}

	f.clock.set(12, 30, 0)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); !ok {
		t.Fatal("expected the restored snooze to trigger at 12:30")
	}
}

func TestClearSnoozeOnCompletion(t *testing.T) {
	f := newFixture(t)
	f.store.items = []models.ReminderItem{reminderAt("1", "Run", "09:30")}

	f.clock.set(9, 30, 0)
	f.engine.Tick()
	f.engine.Snooze()
	if _, ok := f.store.snoozes["1"]; !ok {
		t.Fatal("snooze entry should exist")
	}

	f.engine.ClearSnooze("1")
	if _, ok := f.store.snoozes["1"]; ok {
		t.Error("ClearSnooze should remove the registry entry")
	}

	f.clock.set(9, 35, 0)
	f.engine.Tick()
	if _, ok := f.engine.CurrentAlarm(); ok {
		t.Error("cleared snooze must not trigger")
	}
}

func TestInvalidCountdownDuration(t *testing.T) {
	f := newFixture(t)
	if err := f.engine.StartCountdown("x", "X", CountdownExercise, 0); err == nil {
		t.Error("StartCountdown with zero seconds should fail")
	}
	if err := f.engine.StartCountdown("x", "X", CountdownExercise, -5); err == nil {
		t.Error("StartCountdown with negative seconds should fail")
	}
}
