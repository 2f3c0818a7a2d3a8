package eventbus_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"orders/internal/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus() *eventbus.Bus {
	return eventbus.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus_Publish(t *testing.T) {
	t.Run("publish without subscribers still records the event", func(t *testing.T) {
		bus := newBus()

		event := bus.Publish("order.created", "payload")

		assert.Equal(t, "order.created", event.Name)
		assert.Equal(t, "payload", event.Payload)
		assert.Equal(t, uint64(1), event.Sequence)
		assert.False(t, event.Timestamp.IsZero())

		drained := bus.Drain()
		require.Len(t, drained, 1)
		assert.Equal(t, event.ID, drained[0].ID)
	})

	t.Run("handlers run synchronously in registration order", func(t *testing.T) {
		bus := newBus()
		var calls []string

		bus.Subscribe("order.created", func(eventbus.Event) { calls = append(calls, "first") })
		bus.Subscribe("order.created", func(eventbus.Event) { calls = append(calls, "second") })
		bus.Subscribe("order.status_changed", func(eventbus.Event) { calls = append(calls, "other") })

		bus.Publish("order.created", nil)

		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("a panicking handler does not block delivery to siblings", func(t *testing.T) {
		bus := newBus()
		var delivered int

		bus.Subscribe("order.created", func(eventbus.Event) { panic("boom") })
		bus.Subscribe("order.created", func(eventbus.Event) { delivered++ })

		event := bus.Publish("order.created", nil)

		assert.Equal(t, 1, delivered)
		assert.Len(t, bus.Drain(), 1, "publish must not roll back on handler failure")
		assert.Equal(t, uint64(1), event.Sequence)
	})

	t.Run("sequence is monotonic and the log is oldest first", func(t *testing.T) {
		bus := newBus()

		bus.Publish("a", nil)
		bus.Publish("b", nil)
		bus.Publish("c", nil)

		events := bus.Drain()
		require.Len(t, events, 3)
		for i, event := range events {
			assert.Equal(t, uint64(i+1), event.Sequence)
		}
		assert.Equal(t, "a", events[0].Name)
		assert.Equal(t, "c", events[2].Name)
	})
}

func TestBus_Drain(t *testing.T) {
	t.Run("drain does not truncate the log", func(t *testing.T) {
		bus := newBus()
		bus.Publish("a", nil)

		assert.Len(t, bus.Drain(), 1)
		assert.Len(t, bus.Drain(), 1)
	})

	t.Run("drain returns a copy", func(t *testing.T) {
		bus := newBus()
		bus.Publish("a", nil)

		events := bus.Drain()
		events[0].Name = "mutated"

		assert.Equal(t, "a", bus.Drain()[0].Name)
	})
}

func TestBus_Clear(t *testing.T) {
	bus := newBus()
	bus.Publish("a", nil)
	bus.Publish("b", nil)

	bus.Clear()

	assert.Empty(t, bus.Drain())

	// Sequence keeps growing after a clear; positions are never reused.
	event := bus.Publish("c", nil)
	assert.Equal(t, uint64(3), event.Sequence)
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := newBus()

	const publishers = 20
	const perPublisher = 50

	var wg sync.WaitGroup
	for range publishers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perPublisher {
				bus.Publish("order.created", nil)
			}
		}()
	}
	wg.Wait()

	events := bus.Drain()
	require.Len(t, events, publishers*perPublisher)

	seen := make(map[uint64]bool, len(events))
	for _, event := range events {
		assert.False(t, seen[event.Sequence], "duplicate sequence %d", event.Sequence)
		seen[event.Sequence] = true
	}
}
