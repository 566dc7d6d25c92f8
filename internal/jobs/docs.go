// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StalePendingOrdersJob runs GetStalePendingOrdersQuery on a schedule (every minute
// by default), logs a warning listing orders that have waited in PENDING too long
// and publishes the count to the icecream_stale_pending_orders gauge. It never
// changes an order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	staleJob, err := jobs.NewStalePendingOrdersJob(handler, 30*time.Minute, "", metrics, logger)
//	if err != nil {
//		log.Fatal("Failed to create job:", err)
//	}
//	jobManager := jobs.NewJobManager(staleJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field, for example
// "0 * * * * *" for once a minute.
//
// # Error Handling
//
// A failed run is logged and retried at the next tick. Failed job starts stop any
// already running jobs.
package jobs
