package events

import (
	"sync"
)

// Topics published by the services.
const (
	TopicAttendanceUpdate = "attendance_update"
	TopicProfileUpdated   = "profile_updated"
	TopicLeaveUpdate      = "leave_update"
)

// Event is a change notification broadcast to all subscribers.
type Event struct {
	Topic string
	Data  interface{}
}

// Hub manages subscribers and event broadcasting. Every subscriber
// receives every event; consumers filter by topic.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the event channel and
// cleanup function. Calling cleanup unregisters the subscriber and closes
// the channel.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; !ok {
			return
		}
		delete(h.subscribers, ch)
		close(ch)
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers.
func (h *Hub) Publish(topic string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event := Event{Topic: topic, Data: data}
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
