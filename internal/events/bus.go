package events

import (
	"cmp"
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

func byPriority(a, b EventListener) int {
	return cmp.Compare(a.Priority(), b.Priority())
}

// Subscribe adds a listener for an event type. Listeners with equal
// priority run in subscription order.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	slices.SortStableFunc(b.listeners[eventType], byPriority)

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := len(b.listeners[eventType])
	b.listeners[eventType] = slices.DeleteFunc(b.listeners[eventType], func(l EventListener) bool {
		return l.ID() == listenerID
	})

	if len(b.listeners[eventType]) < before {
		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
	}
}

// ListenerCount returns how many listeners are registered for eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Emit sends an event to all registered listeners in priority order
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}

// Notify emits on pub if it is set. Listener failures are logged and
// never returned: game state has already changed by the time events fire.
func Notify(pub Publisher, event Event) {
	if pub == nil {
		return
	}
	if err := pub.Emit(event); err != nil {
		log.Printf("EventBus: %s listener error: %v", event.GetType(), err)
	}
}
