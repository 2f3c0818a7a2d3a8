package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation publishes the same status-changed event as any other
// transition, with cancelled as the new status.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     EventPublisher
	policy     services.AccessPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	events EventPublisher,
	policy services.AccessPolicy,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		policy:     policy,
	}
}

// Handle processes the cancellation command.
// A terminal order (completed or cancelled) fails with an invalid-transition
// error and nothing is persisted or published. Returns the cancelled order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Actor(), aggregate.OwnerID(), services.ActionCancel); err != nil {
		return nil, err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.Publish(order.EventOrderStatusChanged, order.NewStatusChangedEvent(aggregate, oldStatus))

	return aggregate, nil
}
