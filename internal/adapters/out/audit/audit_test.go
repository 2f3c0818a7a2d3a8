package audit_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"orders/internal/adapters/out/audit"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/eventbus"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandlers_LogsLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	bus := eventbus.NewBus(logger)

	audit.RegisterHandlers(bus, logger)

	item, err := order.NewItem("Brick", decimal.NewFromInt(2), decimal.NewFromInt(25))
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, time.Now().UTC(),
	)
	require.NoError(t, err)

	bus.Publish(order.EventOrderCreated, order.NewCreatedEvent(aggregate))

	oldStatus := aggregate.Status()
	require.NoError(t, aggregate.ChangeStatus(order.InProgress, time.Now().UTC()))
	bus.Publish(order.EventOrderStatusChanged, order.NewStatusChangedEvent(aggregate, oldStatus))

	logged := buf.String()
	assert.Contains(t, logged, "order created")
	assert.Contains(t, logged, "order status changed")
	assert.Contains(t, logged, aggregate.ID().String())
	assert.Contains(t, logged, "new_status=in_progress")
}

func TestRegisterHandlers_IgnoresForeignPayloads(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	bus := eventbus.NewBus(logger)

	audit.RegisterHandlers(bus, logger)

	// A payload of the wrong type is logged as a warning, not a panic.
	bus.Publish(order.EventOrderCreated, "not a created event")

	assert.Contains(t, buf.String(), "unexpected payload type")
}
