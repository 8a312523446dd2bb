package commands

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
)

// CreateBackorderCommandHandler persists operator-initiated backorders.
type CreateBackorderCommandHandler struct {
	uowFactory BackorderUoWFactory
}

// NewCreateBackorderCommandHandler creates a handler for backorder capture.
func NewCreateBackorderCommandHandler(uowFactory BackorderUoWFactory) CreateBackorderCommandHandler {
	return CreateBackorderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle captures the demand as a PENDING backorder.
func (h *CreateBackorderCommandHandler) Handle(ctx context.Context, cmd CreateBackorderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	captured, err := backorder.NewBackorder(cmd.BackorderID(), cmd.OrderID(),
		cmd.ProductID(), cmd.Qty(), cmd.Priority())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BackorderRepository().Add(ctx, captured); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
