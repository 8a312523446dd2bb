package commands

import (
	"context"
)

// ConvertAvailablePreordersCommandHandler converts queued preorders into
// regular orders as pool stock becomes available, strictly in queue-position
// order. A preorder deeper in the queue never converts ahead of an earlier
// one, even when the earlier one needs more units than remain.
type ConvertAvailablePreordersCommandHandler struct {
	uowFactory ConversionUoWFactory
}

// NewConvertAvailablePreordersCommandHandler creates a handler for preorder
// conversion sweeps.
func NewConvertAvailablePreordersCommandHandler(uowFactory ConversionUoWFactory) ConvertAvailablePreordersCommandHandler {
	return ConvertAvailablePreordersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sweeps the product's preorder queue and returns how many preorders
// were converted. Conversion is one-way and idempotent, so re-running a
// sweep after a partial failure is safe.
func (h *ConvertAvailablePreordersCommandHandler) Handle(
	ctx context.Context,
	cmd ConvertAvailablePreordersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	available, err := uow.StockRepository().TotalAvailable(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}

	preorderRepo := uow.PreorderRepository()
	active, err := preorderRepo.GetActiveByProduct(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}

	converted := 0
	for _, preorder := range active {
		if preorder.Quantity() > available {
			break
		}

		preorder.Convert()
		if err := preorderRepo.Update(ctx, preorder); err != nil {
			return 0, err
		}

		available -= preorder.Quantity()
		converted++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return converted, nil
}
