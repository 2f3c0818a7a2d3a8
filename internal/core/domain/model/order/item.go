package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing a single order line.
//
// Item follows these invariants:
//   - Name must be non-empty
//   - Quantity must be strictly positive
//   - Unit price must be strictly positive
//
// Quantity and unit price are exact decimals so that line subtotals and order
// totals never accumulate floating point drift.
type Item struct {
	name      string
	quantity  decimal.Decimal
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated order line.
// Returns a validation error if the name is empty or the quantity or unit
// price is not strictly positive.
func NewItem(name string, quantity, unitPrice decimal.Decimal) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() decimal.Decimal {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unit price as an exact decimal.
func (i Item) Subtotal() decimal.Decimal {
	return i.quantity.Mul(i.unitPrice)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
