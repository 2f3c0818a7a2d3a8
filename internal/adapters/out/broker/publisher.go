// Package broker contains the outbound message broker adapter.
package broker

import (
	"context"
	"log/slog"

	"orders/internal/pkg/eventbus"
)

// StubPublisher is a no-op BrokerPublisher used when no broker is configured.
// Events are logged at debug level and dropped, so the relay loop and the
// rest of the pipeline behave exactly as they would with a real transport.
type StubPublisher struct {
	logger *slog.Logger
}

// NewStubPublisher creates a publisher that drops every event.
func NewStubPublisher(logger *slog.Logger) *StubPublisher {
	return &StubPublisher{logger: logger.With("component", "broker")}
}

// PublishEvent logs the event and reports success.
func (p *StubPublisher) PublishEvent(_ context.Context, event eventbus.Event) error {
	p.logger.Debug("broker not configured, dropping event",
		"event_id", event.ID,
		"event_name", event.Name,
		"sequence", event.Sequence,
	)
	return nil
}
