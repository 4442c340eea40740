package jobs

import (
	"context"
	"log/slog"

	"parcelmatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// GeocodeBackfillJob manages the scheduled backfill of address coordinates.
// Runs every minute to geocode addresses whose resolution was skipped or failed
// at registration time.
type GeocodeBackfillJob struct {
	handler   commands.BackfillCoordinatesCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewGeocodeBackfillJob creates a new job for backfilling address coordinates.
// Uses BackfillCoordinatesCommandHandler to resolve up to batchSize addresses per run.
func NewGeocodeBackfillJob(handler commands.BackfillCoordinatesCommandHandler, batchSize int, logger *slog.Logger) *GeocodeBackfillJob {
	return &GeocodeBackfillJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "geocode_backfill_job"),
	}
}

// Start begins the geocode backfill job to run every minute.
func (j *GeocodeBackfillJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewBackfillCoordinatesCommand(j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Geocode backfill job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Geocode backfill job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocode backfill job started (running every minute)")
	return nil
}

// Stop stops the geocode backfill job.
func (j *GeocodeBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Geocode backfill job stopped")
}
