package jobs

import (
	"fmt"

	"foodcourt/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	delayMonitorJob *DelayMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		delayMonitorJob: NewDelayMonitorJob(getActiveOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.delayMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start delay monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayMonitorJob.Stop()
}
