// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. EventRelayJob - Runs every second to forward domain events from the in-process bus to the broker publisher
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(bus, brokerPublisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second, keeping broker consumers close to real time without coupling
// command handlers to the broker.
//
// # Error Handling
//
// A failed publish aborts the current pass and is retried on the next tick.
// The relay tracks the last forwarded sequence and never truncates the bus
// log, so delivery to the broker is at-least-once.
package jobs
