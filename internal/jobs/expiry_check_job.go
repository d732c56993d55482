package jobs

import (
	"context"
	"log/slog"
	"time"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ExpiryCheckJob periodically scans the catalog for products whose expiry
// date has passed and logs a warning for each one.
type ExpiryCheckJob struct {
	handler  queries.GetExpiredProductsQueryHandler
	cron     *cron.Cron
	cronSpec string
	logger   *slog.Logger
	now      func() time.Time
}

// NewExpiryCheckJob creates the expiry check job.
func NewExpiryCheckJob(
	handler queries.GetExpiredProductsQueryHandler,
	cronSpec string,
	logger *slog.Logger,
) *ExpiryCheckJob {
	return &ExpiryCheckJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		cronSpec: cronSpec,
		logger:   logger.With("component", "expiry_check_job"),
		now:      time.Now,
	}
}

// Start schedules the expiry check job.
func (j *ExpiryCheckJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetExpiredProductsQuery(j.now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Expiry check job failed to build query", "error", queryErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Expiry check job failed", "error", handleErr)
			return
		}

		for _, product := range expired {
			j.logger.WarnContext(ctx, "Product past expiry date",
				"productID", product.ID.String(),
				"name", product.Name,
				"expiry", product.Expiry,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry check job started", "spec", j.cronSpec)
	return nil
}

// Stop stops the expiry check job.
func (j *ExpiryCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry check job stopped")
}
