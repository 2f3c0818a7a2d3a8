// Package eventbus provides the in-process domain event bus.
//
// The bus is an explicit instance constructed once at process start and
// injected into its consumers; there is no package-level singleton. Publishing
// appends the event to an append-only log and dispatches it synchronously to
// the handlers registered for its name, in registration order. A handler
// panicking is isolated and logged; it never rolls back the publish and never
// blocks delivery to the remaining handlers.
//
// The log is process-local and unbounded. Drain returns a snapshot oldest
// first; Clear is an explicit operator action, the bus never truncates the
// log on its own.
package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record describing a completed state change.
type Event struct {
	// ID uniquely identifies the event.
	ID uuid.UUID `json:"id"`

	// Name is the event name handlers subscribe to.
	Name string `json:"name"`

	// Payload is the domain-specific event body.
	Payload any `json:"payload"`

	// Timestamp records when the event was published.
	Timestamp time.Time `json:"timestamp"`

	// Sequence is the event's position in the append-only log, starting at 1.
	Sequence uint64 `json:"sequence"`
}

// Handler processes a published event. Handlers run synchronously on the
// publisher's goroutine and must not assume exclusive access to shared state.
type Handler func(Event)

// Bus is an in-process publish/subscribe bus with a replay-capable queue.
// It is safe for concurrent publishers and subscribers.
type Bus struct {
	mu       sync.Mutex
	handlers map[string][]Handler
	queue    []Event
	sequence uint64
	logger   *slog.Logger
}

// NewBus creates an event bus logging through the given logger.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger.With("component", "event_bus"),
	}
}

// Subscribe registers a handler invoked for every future publish of name.
// Handlers for the same name run in registration order.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
	b.logger.Info("subscribed to event", "event", name, "handlers", len(b.handlers[name]))
}

// Publish records an event and dispatches it to all handlers registered for
// its name. It never fails: the event is appended to the log even when no
// subscriber exists, and each handler's failure is independent.
func (b *Bus) Publish(name string, payload any) Event {
	b.mu.Lock()
	b.sequence++
	event := Event{
		ID:        uuid.New(),
		Name:      name,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
		Sequence:  b.sequence,
	}
	b.queue = append(b.queue, event)

	handlers := make([]Handler, len(b.handlers[name]))
	copy(handlers, b.handlers[name])
	b.mu.Unlock()

	b.logger.Info("publishing domain event",
		"event", name, "event_id", event.ID.String(), "sequence", event.Sequence)

	for _, handler := range handlers {
		b.dispatch(event, handler)
	}

	return event
}

// dispatch runs a single handler, containing panics so a faulting handler
// cannot poison delivery to its siblings.
func (b *Bus) dispatch(event Event, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(context.Background(), "event handler panicked",
				"event", event.Name, "event_id", event.ID.String(), "panic", r)
		}
	}()

	handler(event)
}

// Drain returns a copy of all published events, oldest first.
// The log itself is left intact.
func (b *Bus) Drain() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := make([]Event, len(b.queue))
	copy(events, b.queue)
	return events
}

// Clear discards the event log. This is an operator action; nothing in the
// bus calls it automatically.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.logger.Info("event queue cleared", "discarded", len(b.queue))
	b.queue = nil
}
