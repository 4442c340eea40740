// Package jobs provides scheduled background tasks for the parcel matching system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. GeocodeBackfillJob - Runs every minute to resolve coordinates for addresses
// that are still missing them, retrying resolutions that were skipped or failed
// when the address was first registered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backfillHandler, batchSize, logger)
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
// The backfill job uses the cron expression "0 * * * * *", running at the top of
// every minute. Each run processes at most one batch of unresolved addresses so
// a slow geocoding provider cannot monopolize the database.
//
// # Error Handling
//
// - Backfill runs log failures and retry the remaining backlog on the next tick
// - Individual address failures are skipped inside the handler without aborting the batch
// - Failed job starts will stop any already running jobs
package jobs
