package jobs

import (
	"fmt"
	"log/slog"

	"deliverytrack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeBackfillJob *RouteBackfillJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	backfillHandler commands.BackfillRoutesCommandHandler,
	backfillSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeBackfillJob: NewRouteBackfillJob(backfillHandler, backfillSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.routeBackfillJob.Start(); err != nil {
		return fmt.Errorf("failed to start route backfill job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeBackfillJob.Stop()
}
