package jobs

import (
	"fmt"
	"log/slog"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	capacityResetJob      *CapacityResetJob
	preorderConversionJob *PreorderConversionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	resetHandler commands.ResetNodeCapacityCommandHandler,
	conversionHandler commands.ConvertAvailablePreordersCommandHandler,
	preorders ports.PreorderRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		capacityResetJob:      NewCapacityResetJob(resetHandler, logger),
		preorderConversionJob: NewPreorderConversionJob(conversionHandler, preorders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity reset job: %w", err)
	}

	if err := jm.preorderConversionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.capacityResetJob.Stop()
		return fmt.Errorf("failed to start preorder conversion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.preorderConversionJob.Stop()
	jm.capacityResetJob.Stop()
}
