package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Persists the new order in "created" status and publishes the order-created
// domain event after a successful commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and the event
// bus for domain event publication.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, events EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the order placement command.
// The total is computed once here, at creation; subsequent mutations never
// recompute it. Returns the persisted order on success.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.OwnerID(), cmd.Items(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.Publish(order.EventOrderCreated, order.NewCreatedEvent(newOrder))

	return newOrder, nil
}
