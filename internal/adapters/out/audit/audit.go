// Package audit wires logging subscribers onto the event bus.
// Every order lifecycle event leaves a structured audit trail regardless of
// whether a broker is configured.
package audit

import (
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/eventbus"
)

// RegisterHandlers subscribes audit loggers for all order lifecycle events.
// Call once at startup, before the first command is handled.
func RegisterHandlers(bus *eventbus.Bus, logger *slog.Logger) {
	auditLogger := logger.With("component", "audit")

	bus.Subscribe(order.EventOrderCreated, func(event eventbus.Event) {
		payload, ok := event.Payload.(order.CreatedEvent)
		if !ok {
			auditLogger.Warn("unexpected payload type", "event_name", event.Name)
			return
		}

		auditLogger.Info("order created",
			"event_id", event.ID,
			"sequence", event.Sequence,
			"order_id", payload.OrderID,
			"owner_id", payload.OwnerID,
			"total", payload.Total,
		)
	})

	bus.Subscribe(order.EventOrderStatusChanged, func(event eventbus.Event) {
		payload, ok := event.Payload.(order.StatusChangedEvent)
		if !ok {
			auditLogger.Warn("unexpected payload type", "event_name", event.Name)
			return
		}

		auditLogger.Info("order status changed",
			"event_id", event.ID,
			"sequence", event.Sequence,
			"order_id", payload.OrderID,
			"old_status", payload.OldStatus,
			"new_status", payload.NewStatus,
		)
	})
}
