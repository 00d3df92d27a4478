// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field) and run only
// in HTTP mode.
//
// # Available Jobs
//
// DeliveryCompletionJob completes the oldest Assigned order on every tick, so vehicles
// return to the fleet without a manual completion call.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(completeOldestDeliveryHandler, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An idle fleet is the normal case and is not logged. Any other failure is logged and
// the job keeps its schedule.
package jobs
