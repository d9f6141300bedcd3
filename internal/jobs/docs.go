// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with a seconds
// column in the schedule expression.
//
// # Available Jobs
//
// RouteBackfillJob - periodically retries route enrichment for non-terminal
// deliveries that have no route information, picking up records created while
// the routing provider was down.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(backfillHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing backfill pass is logged and retried on the next tick; individual
// record failures inside a pass never abort the batch.
package jobs
