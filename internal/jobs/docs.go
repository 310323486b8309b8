// Package jobs provides scheduled background tasks for the transport service.
//
// Jobs are cron-driven using github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// NotificationDispatchJob drains the notification outbox. Lifecycle commands
// queue a pending row per event; this job hands pending rows to a Sender and
// marks them sent. A row whose send fails stays pending and is retried on the
// next tick, so delivery is at-least-once.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatchHandler, "*/5 * * * * *", 100, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("failed to start jobs: %w", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Run errors are logged and never stop the scheduler. Panics inside a run are
// recovered and logged by the cron chain.
package jobs
