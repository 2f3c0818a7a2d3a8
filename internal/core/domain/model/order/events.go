package order

import (
	"github.com/shopspring/decimal"
)

// Domain event names published on the in-process event bus.
// Cancellation is modeled as a status change to cancelled, not a separate event.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// EventItem is the wire form of an order line inside event payloads.
type EventItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreatedEvent is the payload of EventOrderCreated.
type CreatedEvent struct {
	OrderID string          `json:"order_id"`
	OwnerID string          `json:"owner_id"`
	Items   []EventItem     `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Status  string          `json:"status"`
}

// StatusChangedEvent is the payload of EventOrderStatusChanged.
// It carries both the previous and the new status for audit consumers.
type StatusChangedEvent struct {
	OrderID   string `json:"order_id"`
	OwnerID   string `json:"owner_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// NewCreatedEvent builds the order-created payload from an aggregate.
func NewCreatedEvent(o *Order) CreatedEvent {
	items := make([]EventItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, EventItem{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.UnitPrice(),
		})
	}

	return CreatedEvent{
		OrderID: o.ID().String(),
		OwnerID: o.OwnerID().String(),
		Items:   items,
		Total:   o.Total(),
		Status:  o.Status().String(),
	}
}

// NewStatusChangedEvent builds the status-changed payload from an aggregate
// and the status it held before the mutation.
func NewStatusChangedEvent(o *Order, oldStatus Status) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:   o.ID().String(),
		OwnerID:   o.OwnerID().String(),
		OldStatus: oldStatus.String(),
		NewStatus: o.Status().String(),
	}
}
