package commands

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrResetNodeCapacityCommandIsNotConstructed = errors.New(
	"ResetNodeCapacityCommand must be created via NewResetNodeCapacityCommand constructor",
)

// ResetNodeCapacityCommand represents the daily reset of every node's
// current-day order counter.
type ResetNodeCapacityCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewResetNodeCapacityCommand creates a capacity reset command.
func NewResetNodeCapacityCommand() ResetNodeCapacityCommand {
	return ResetNodeCapacityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ResetNodeCapacityCommand) Validate() error {
	return c.guard.Validate(ErrResetNodeCapacityCommandIsNotConstructed)
}

// ResetNodeCapacityCommandHandler zeroes the day counters of every node.
// Runs once a day from the job scheduler.
type ResetNodeCapacityCommandHandler struct {
	uowFactory NodeUoWFactory
}

// NewResetNodeCapacityCommandHandler creates a handler for the daily reset.
func NewResetNodeCapacityCommandHandler(uowFactory NodeUoWFactory) ResetNodeCapacityCommandHandler {
	return ResetNodeCapacityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resets the counters in one bulk statement.
func (h *ResetNodeCapacityCommandHandler) Handle(ctx context.Context, cmd ResetNodeCapacityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NodeRepository().ResetAllDayCounters(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
