package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryCompletionJob *DeliveryCompletionJob
}

// NewJobManager creates a job manager. An empty completionSchedule disables the
// delivery completion job.
func NewJobManager(
	completeOldestDeliveryHandler commands.CompleteOldestDeliveryCommandHandler,
	completionSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if completionSchedule != "" {
		jm.deliveryCompletionJob = NewDeliveryCompletionJob(completeOldestDeliveryHandler, completionSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.deliveryCompletionJob == nil {
		return nil
	}

	if err := jm.deliveryCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.deliveryCompletionJob != nil {
		jm.deliveryCompletionJob.Stop()
	}
}
