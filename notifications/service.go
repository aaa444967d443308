package notifications

import (
	"sync"
	"time"
)

// EventType represents the type of notification event
type EventType string

const (
	EventConnected         EventType = "connected"
	EventAlarmRaised       EventType = "alarm-raised"
	EventAlarmCleared      EventType = "alarm-cleared"
	EventAlarmSnoozed      EventType = "alarm-snoozed"
	EventCountdownStarted  EventType = "countdown-started"
	EventCountdownStopped  EventType = "countdown-stopped"
	EventCountdownComplete EventType = "countdown-complete"
	EventStateChanged      EventType = "state-changed"
)

// Event represents a notification event pushed to connected clients
type Event struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// AlarmPayload is the data carried by alarm-raised events. Tag is stable per
// item so repeated raises replace an existing client notification rather
// than stacking. Actions lists what the client should offer; timer
// completions get Dismiss only.
type AlarmPayload struct {
	ItemID  string   `json:"itemId"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Source  string   `json:"source"`
	Tag     string   `json:"tag"`
	Actions []string `json:"actions"`
	Haptic  []int    `json:"haptic,omitempty"` // vibration pattern in ms
}

// Service manages SSE subscriptions and event broadcasting
type Service struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	closed      bool
}

// NewService creates a new notification service
func NewService() *Service {
	return &Service{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe creates a new subscription channel.
// Returns the event channel and an unsubscribe function.
func (s *Service) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	s.mu.Lock()
	if !s.closed {
		s.subscribers[ch] = struct{}{}
	} else {
		close(ch)
	}
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, exists := s.subscribers[ch]; exists {
			delete(s.subscribers, ch)
			close(ch)
		}
	}

	return ch, unsubscribe
}

// Notify broadcasts an event to all subscribers. Subscribers that cannot
// keep up skip events rather than blocking the sender.
func (s *Service) Notify(event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// NotifyAlarmRaised announces a newly ringing alarm
func (s *Service) NotifyAlarmRaised(p AlarmPayload) {
	s.Notify(Event{Type: EventAlarmRaised, Data: p})
}

// NotifyAlarmCleared announces that the ringing alarm was dismissed or snoozed away
func (s *Service) NotifyAlarmCleared(itemID string) {
	s.Notify(Event{Type: EventAlarmCleared, Data: map[string]string{"itemId": itemID}})
}

// NotifyAlarmSnoozed announces a snooze and the deferred trigger time
func (s *Service) NotifyAlarmSnoozed(itemID, until string) {
	s.Notify(Event{Type: EventAlarmSnoozed, Data: map[string]string{"itemId": itemID, "until": until}})
}

// NotifyCountdownStarted announces a new countdown
func (s *Service) NotifyCountdownStarted(itemID string, totalSeconds int) {
	s.Notify(Event{Type: EventCountdownStarted, Data: map[string]any{"itemId": itemID, "totalSeconds": totalSeconds}})
}

// NotifyCountdownStopped announces an explicit stop before completion
func (s *Service) NotifyCountdownStopped(itemID string) {
	s.Notify(Event{Type: EventCountdownStopped, Data: map[string]string{"itemId": itemID}})
}

// NotifyCountdownComplete announces that a countdown reached zero
func (s *Service) NotifyCountdownComplete(itemID string) {
	s.Notify(Event{Type: EventCountdownComplete, Data: map[string]string{"itemId": itemID}})
}

// NotifyStateChanged tells clients to refetch the snapshot
func (s *Service) NotifyStateChanged() {
	s.Notify(Event{Type: EventStateChanged})
}

// Shutdown closes the notification service and all subscriber channels
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = make(map[chan Event]struct{})
}

// SubscriberCount returns the number of active subscribers
func (s *Service) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}
