package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/ports"
	"orders/internal/pkg/eventbus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	eventRelayJob *EventRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	bus *eventbus.Bus,
	publisher ports.BrokerPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		eventRelayJob: NewEventRelayJob(bus, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.eventRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start event relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.eventRelayJob.Stop()
}
