package jobs

import (
	"context"
	"log/slog"
	"time"

	"freshcart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob periodically cancels pending orders that no one has
// confirmed within the configured age. The sweep is idempotent: an order
// cancelled by one run is no longer pending on the next.
type StaleOrderSweepJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderSweepJob creates the sweep job. The schedule is a standard
// five-field cron expression; maxAge is how long an order may stay pending.
func NewStaleOrderSweepJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler:  handler,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_sweep_job"),
	}
}

// Start schedules the sweep and begins running it.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep started",
		"schedule", j.schedule, "max_age", j.maxAge)
	return nil
}

// Stop stops the sweep. Runs already in flight finish on their own.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep stopped")
}
