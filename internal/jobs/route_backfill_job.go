package jobs

import (
	"context"
	"log/slog"

	"deliverytrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RouteBackfillJob periodically retries route enrichment for deliveries that
// were created while the routing provider was unavailable.
type RouteBackfillJob struct {
	handler  commands.BackfillRoutesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRouteBackfillJob creates the backfill job.
// The schedule is a six-field cron expression with a seconds column.
func NewRouteBackfillJob(
	handler commands.BackfillRoutesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RouteBackfillJob {
	return &RouteBackfillJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route_backfill_job"),
	}
}

// Start begins the scheduled backfill passes.
func (j *RouteBackfillJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewBackfillRoutesCommand()

		enriched, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Route backfill job failed", "error", err)
			return
		}

		if enriched > 0 {
			j.logger.InfoContext(ctx, "Route backfill pass completed", "enriched", enriched)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route backfill job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backfill job.
func (j *RouteBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route backfill job stopped")
}
