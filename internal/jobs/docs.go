// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order monitoring.
//
// # Available Jobs
//
// 1. DelayMonitorJob - Runs every 30 seconds to grade active orders against
// their phase delay thresholds and log overdue ones.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The delay monitor only reads; a failed scan is logged and retried on the
// next tick, so a transient database error never affects order processing.
package jobs
