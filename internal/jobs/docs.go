// Package jobs provides scheduled background tasks for the supply chain system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. InventoryReportJob - Periodically logs stock quantities per product and location
// 2. ExpiryCheckJob - Periodically warns about products whose expiry date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reportHandler, expiredHandler,
//		reportCronSpec, expiryCronSpec, logger, supplyChainMetrics)
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
// Both jobs take six-field cron expressions with a seconds column, so the
// run frequency is fully configurable via the environment.
//
// # Error Handling
//
// - Both jobs log query failures and skip the run; they never stop themselves
// - Failed job starts will stop any already running jobs
package jobs
