package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages the
// order lifecycle from creation through progress to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner identifier
//   - Must contain at least one validated item
//   - Total is the exact decimal sum of item subtotals, computed once at
//     creation and never recomputed afterwards
//   - Owner never changes after creation
//   - Status transitions follow the lifecycle edge set defined on Status
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID identifies the user who created the order
	ownerID kernel.UUID

	// items are the order lines (at least one)
	items []Item

	// total is the exact decimal sum of item subtotals
	total decimal.Decimal

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is refreshed on every successful mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order (besides RestoreOrder for persistence), ensuring all
// business invariants are maintained.
//
// The order starts in Created status with its total computed as the exact sum
// of item subtotals. Both timestamps are initialized to now.
func NewOrder(id, ownerID kernel.UUID, items []Item, now time.Time) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.total = computeTotal(order.items)
	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
//
// Unlike NewOrder, the total is taken as stored and not recomputed, and the
// status may be any valid lifecycle state. The invariants on identifier,
// owner and items still apply.
func RestoreOrder(
	id, ownerID kernel.UUID,
	items []Item,
	total decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		total:         total,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who created the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the exact decimal sum of item subtotals.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to the requested status.
//
// The transition must be a legal lifecycle edge; illegal edges (including any
// attempt to leave a terminal status) fail with an invalid-transition error
// and leave the order unchanged. On success updatedAt is refreshed.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel moves the order to Cancelled.
//
// Cancellation is allowed from Created and InProgress. A terminal order
// (Completed or Cancelled) cannot be cancelled and fails with an
// invalid-transition error.
func (o *Order) Cancel(now time.Time) error {
	return o.ChangeStatus(Cancelled, now)
}

// computeTotal sums the item subtotals exactly.
func computeTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the order's owner.
// This is a private method used only during construction.
func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

// setItems validates and sets the order lines.
// At least one item is required and every item must be constructed via NewItem.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
