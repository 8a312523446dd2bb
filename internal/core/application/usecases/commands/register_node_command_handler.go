package commands

import (
	"context"
)

// RegisterNodeCommandHandler persists newly onboarded fulfillment nodes and
// their serviceability tables.
type RegisterNodeCommandHandler struct {
	uowFactory NodeUoWFactory
}

// NewRegisterNodeCommandHandler creates a handler for node onboarding.
func NewRegisterNodeCommandHandler(uowFactory NodeUoWFactory) RegisterNodeCommandHandler {
	return RegisterNodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the node and its coverage rows in one transaction.
func (h *RegisterNodeCommandHandler) Handle(ctx context.Context, cmd RegisterNodeCommand) error {
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

	nodeRepo := uow.NodeRepository()
	if err := nodeRepo.Add(ctx, cmd.Node()); err != nil {
		return err
	}

	for _, coverage := range cmd.Coverage() {
		if err := nodeRepo.AddCoverage(ctx, cmd.Node().Code(), coverage); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
