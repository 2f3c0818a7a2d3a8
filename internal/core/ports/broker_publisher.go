package ports

import (
	"context"

	"orders/internal/pkg/eventbus"
)

// BrokerPublisher defines the contract for forwarding domain events to an
// out-of-process message broker. Today the only implementation is a stub;
// the port fixes the publish contract so a real transport can be wired in
// without touching the core. Delivery is at-least-once at best; callers must
// not rely on exactly-once semantics.
type BrokerPublisher interface {
	// PublishEvent forwards a single event to the broker.
	PublishEvent(ctx context.Context, event eventbus.Event) error
}
