package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler handles order status changes.
//
// The use case order is: load (not found surfaces as-is), authorize against
// the ownership policy, then transition. A caller who does not own the order
// therefore receives a forbidden decision even for illegal transitions, and
// existence is never hidden from owners or admins.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     EventPublisher
	policy     services.AccessPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	events EventPublisher,
	policy services.AccessPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		policy:     policy,
	}
}

// Handle processes the status change command.
// On success the order-status-changed event carrying both the previous and
// the new status is published after the commit. Returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	if err = h.policy.Authorize(cmd.Actor(), aggregate.OwnerID(), services.ActionUpdateStatus); err != nil {
		return nil, err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
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
