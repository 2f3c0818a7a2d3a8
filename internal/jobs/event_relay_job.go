package jobs

import (
	"context"
	"log/slog"
	"sync"

	"orders/internal/core/ports"
	"orders/internal/pkg/eventbus"

	"github.com/robfig/cron/v3"
)

// EventRelayJob forwards domain events from the in-process bus to the broker
// publisher. Runs every second, picking up events whose sequence is past the
// last relayed one. The bus log is never truncated here: the job only reads,
// so operators can still inspect or replay the full history.
type EventRelayJob struct {
	bus       *eventbus.Bus
	publisher ports.BrokerPublisher
	cron      *cron.Cron
	logger    *slog.Logger

	// mu serializes relay passes; cron may fire a tick while the
	// previous one is still publishing.
	mu           sync.Mutex
	lastSequence uint64
}

// NewEventRelayJob creates a new job relaying bus events to the broker.
func NewEventRelayJob(bus *eventbus.Bus, publisher ports.BrokerPublisher, logger *slog.Logger) *EventRelayJob {
	return &EventRelayJob{
		bus:       bus,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "event_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *EventRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RelayOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *EventRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Event relay job stopped")
}

// RelayOnce forwards every event newer than the last relayed sequence.
// A publish failure stops the pass; the failed event and the rest are
// retried on the next tick, so the broker sees every event at least once.
func (j *EventRelayJob) RelayOnce(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, event := range j.bus.Drain() {
		if event.Sequence <= j.lastSequence {
			continue
		}

		if err := j.publisher.PublishEvent(ctx, event); err != nil {
			j.logger.ErrorContext(ctx, "Event relay failed, will retry",
				"event_id", event.ID,
				"sequence", event.Sequence,
				"error", err,
			)
			return
		}

		j.lastSequence = event.Sequence
	}
}
