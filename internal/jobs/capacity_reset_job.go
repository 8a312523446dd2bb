package jobs

import (
	"context"
	"log/slog"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CapacityResetJob clears every node's current-day order counter.
// Runs once a day at midnight so nodes start each day with full capacity.
type CapacityResetJob struct {
	handler commands.ResetNodeCapacityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCapacityResetJob creates the daily capacity reset job.
func NewCapacityResetJob(handler commands.ResetNodeCapacityCommandHandler, logger *slog.Logger) *CapacityResetJob {
	return &CapacityResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "capacity_reset_job"),
	}
}

// Start schedules the reset at midnight every day.
func (j *CapacityResetJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewResetNodeCapacityCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Capacity reset job failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Node day-order counters reset")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity reset job started (running daily at midnight)")
	return nil
}

// Stop stops the capacity reset job.
func (j *CapacityResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capacity reset job stopped")
}
