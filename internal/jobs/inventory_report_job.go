package jobs

import (
	"context"
	"log/slog"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/metrics"

	"github.com/robfig/cron/v3"
)

// InventoryReportJob periodically snapshots stock levels across all
// locations and writes them to the log.
type InventoryReportJob struct {
	handler  queries.GetInventoryReportQueryHandler
	cron     *cron.Cron
	cronSpec string
	logger   *slog.Logger
	metrics  *metrics.SupplyChainMetrics
}

// NewInventoryReportJob creates the report job. The cron spec uses the
// six-field format with a seconds column, e.g. "0 0 * * * *" for hourly.
func NewInventoryReportJob(
	handler queries.GetInventoryReportQueryHandler,
	cronSpec string,
	logger *slog.Logger,
	supplyChainMetrics *metrics.SupplyChainMetrics,
) *InventoryReportJob {
	return &InventoryReportJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		cronSpec: cronSpec,
		logger:   logger.With("component", "inventory_report_job"),
		metrics:  supplyChainMetrics,
	}
}

// Start schedules the report job.
func (j *InventoryReportJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		report, handleErr := j.handler.Handle(ctx, queries.NewGetInventoryReportQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Inventory report job failed", "error", handleErr)
			return
		}

		j.metrics.RecordReportRun()
		j.logger.InfoContext(ctx, "Inventory report", "rows", len(report))
		for _, row := range report {
			j.logger.InfoContext(ctx, "Stock level",
				"product", row.ProductName,
				"location", row.LocationName,
				"quantity", row.Quantity,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inventory report job started", "spec", j.cronSpec)
	return nil
}

// Stop stops the report job.
func (j *InventoryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Inventory report job stopped")
}
