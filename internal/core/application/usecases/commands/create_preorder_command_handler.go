package commands

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
)

// CreatePreorderCommandHandler places preorders in the per-product queue.
// Position assignment and the insert run inside one transaction, so the
// monotonic position sequence has no gaps visible to a committed reader.
type CreatePreorderCommandHandler struct {
	uowFactory PreorderUoWFactory
}

// NewCreatePreorderCommandHandler creates a handler for preorder placement.
func NewCreatePreorderCommandHandler(uowFactory PreorderUoWFactory) CreatePreorderCommandHandler {
	return CreatePreorderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the next queue position for the product and persists the
// preorder as ACTIVE.
func (h *CreatePreorderCommandHandler) Handle(ctx context.Context, cmd CreatePreorderCommand) error {
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

	preorderRepo := uow.PreorderRepository()
	position, err := preorderRepo.NextPosition(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	preorder, err := backorder.NewPreorder(cmd.PreorderID(), cmd.CustomerID(),
		cmd.ProductID(), cmd.Qty(), position)
	if err != nil {
		return err
	}

	if err = preorderRepo.Add(ctx, preorder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
