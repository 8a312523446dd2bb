// Package jobs provides scheduled background tasks for the orchestration engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the allocation service.
//
// # Available Jobs
//
// 1. CapacityResetJob - Runs daily at midnight to clear per-node current-day order counters
// 2. PreorderConversionJob - Runs every minute to convert active preorders that stock now covers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(resetHandler, conversionHandler, preorderRepo, logger)
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
// - The conversion sweep logs and skips failing products; one bad queue never blocks the rest
// - The reset job logs failures; counters are retried on the next scheduled run
// - Failed job starts will stop any already running jobs
package jobs
