package jobs

import (
	"fmt"
	"log/slog"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	inventoryReportJob *InventoryReportJob
	expiryCheckJob     *ExpiryCheckJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and cron specs as dependencies to wire up execution.
func NewJobManager(
	reportHandler queries.GetInventoryReportQueryHandler,
	expiredHandler queries.GetExpiredProductsQueryHandler,
	reportCronSpec string,
	expiryCronSpec string,
	logger *slog.Logger,
	supplyChainMetrics *metrics.SupplyChainMetrics,
) *JobManager {
	return &JobManager{
		inventoryReportJob: NewInventoryReportJob(reportHandler, reportCronSpec, logger, supplyChainMetrics),
		expiryCheckJob:     NewExpiryCheckJob(expiredHandler, expiryCronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inventoryReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start inventory report job: %w", err)
	}

	if err := jm.expiryCheckJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.inventoryReportJob.Stop()
		return fmt.Errorf("failed to start expiry check job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inventoryReportJob.Stop()
	jm.expiryCheckJob.Stop()
}
