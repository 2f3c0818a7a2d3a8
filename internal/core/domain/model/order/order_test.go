package order_test

import (
	"math/rand"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(name, decimal.RequireFromString(quantity), decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("Brick", decimal.NewFromInt(100), decimal.RequireFromString("50.5"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Brick", item.Name())
		assert.True(t, item.Quantity().Equal(decimal.NewFromInt(100)))
		assert.True(t, item.UnitPrice().Equal(decimal.RequireFromString("50.5")))
		assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(5050)))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem("", decimal.NewFromInt(1), decimal.NewFromInt(1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []string{"0", "-1", "-0.001"} {
			_, err := order.NewItem("Brick", decimal.RequireFromString(quantity), decimal.NewFromInt(1))
			require.Error(t, err, "quantity %s", quantity)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with non-positive price", func(t *testing.T) {
		for _, price := range []string{"0", "-50.5"} {
			_, err := order.NewItem("Brick", decimal.NewFromInt(1), decimal.RequireFromString(price))
			require.Error(t, err, "price %s", price)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validOwner := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "Brick", "100", "50.5"),
			mustItem(t, "Cement", "50", "150"),
		}

		o, err := order.NewOrder(validID, validOwner, items, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.OwnerID().IsEqual(validOwner))
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.Total().Equal(decimal.NewFromInt(12550)), "total is %s", o.Total())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validOwner, []order.Item{mustItem(t, "Brick", "1", "1")}, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid owner ID", func(t *testing.T) {
		var invalidOwner kernel.UUID

		o, err := order.NewOrder(validID, invalidOwner, []order.Item{mustItem(t, "Brick", "1", "1")}, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		o, err := order.NewOrder(validID, validOwner, nil, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with an unconstructed item", func(t *testing.T) {
		o, err := order.NewOrder(validID, validOwner, []order.Item{{}}, now)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("total is the exact sum for random positive decimals", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for range 50 {
			count := 1 + rng.Intn(8)
			items := make([]order.Item, 0, count)
			expected := decimal.Zero

			for range count {
				// Two-decimal quantities and prices, strictly positive.
				quantity := decimal.New(int64(1+rng.Intn(100_000)), -2)
				price := decimal.New(int64(1+rng.Intn(1_000_000)), -2)

				item, err := order.NewItem("Widget", quantity, price)
				require.NoError(t, err)
				items = append(items, item)
				expected = expected.Add(quantity.Mul(price))
			}

			o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, now)
			require.NoError(t, err)
			assert.True(t, o.Total().Equal(expected), "expected %s, got %s", expected, o.Total())
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()
	items := []order.Item{mustItem(t, "Brick", "2", "10")}

	t.Run("restores a persisted order without recomputing the total", func(t *testing.T) {
		storedTotal := decimal.RequireFromString("999.99")

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, storedTotal,
			order.InProgress, now.Add(-time.Hour), now,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.InProgress, o.Status())
		assert.True(t, o.Total().Equal(storedTotal))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(20),
			order.Unknown, now, now,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Brick", "1", "1")},
			time.Now().UTC().Add(-time.Minute),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("moves through the full happy path", func(t *testing.T) {
		o := newOrder(t)
		now := time.Now().UTC()

		require.NoError(t, o.ChangeStatus(order.InProgress, now))
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, now, o.UpdatedAt())

		later := now.Add(time.Second)
		require.NoError(t, o.ChangeStatus(order.Completed, later))
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("illegal transition leaves the order unchanged", func(t *testing.T) {
		o := newOrder(t)
		before := o.UpdatedAt()

		err := o.ChangeStatus(order.Completed, time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})

	t.Run("cancel from created and in_progress", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(time.Now().UTC()))
		assert.Equal(t, order.Cancelled, o.Status())

		o2 := newOrder(t)
		require.NoError(t, o2.ChangeStatus(order.InProgress, time.Now().UTC()))
		require.NoError(t, o2.Cancel(time.Now().UTC()))
		assert.Equal(t, order.Cancelled, o2.Status())
	})

	t.Run("cancel on terminal order fails with invalid transition", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.InProgress, time.Now().UTC()))
		require.NoError(t, o.ChangeStatus(order.Completed, time.Now().UTC()))

		err := o.Cancel(time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())

		o2 := newOrder(t)
		require.NoError(t, o2.Cancel(time.Now().UTC()))
		require.ErrorIs(t, o2.Cancel(time.Now().UTC()), errs.ErrInvalidTransition)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderEvents(t *testing.T) {
	items := []order.Item{
		mustItem(t, "Brick", "100", "50.5"),
		mustItem(t, "Cement", "50", "150"),
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, time.Now().UTC())
	require.NoError(t, err)

	t.Run("created event carries the full order snapshot", func(t *testing.T) {
		event := order.NewCreatedEvent(o)

		assert.Equal(t, o.ID().String(), event.OrderID)
		assert.Equal(t, o.OwnerID().String(), event.OwnerID)
		assert.Len(t, event.Items, 2)
		assert.Equal(t, "Brick", event.Items[0].Name)
		assert.True(t, event.Total.Equal(decimal.NewFromInt(12550)))
		assert.Equal(t, "created", event.Status)
	})

	t.Run("status changed event carries old and new status", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.InProgress, time.Now().UTC()))

		event := order.NewStatusChangedEvent(o, order.Created)

		assert.Equal(t, o.ID().String(), event.OrderID)
		assert.Equal(t, "created", event.OldStatus)
		assert.Equal(t, "in_progress", event.NewStatus)
	})
}
