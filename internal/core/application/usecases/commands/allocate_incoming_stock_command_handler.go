package commands

import (
	"context"
	"sync"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
)

// IncomingAllocation summarizes one stock receipt: how many received units
// were consumed by the backorder queue and how many landed in the pool.
type IncomingAllocation struct {
	NodeCode         string
	ProductID        kernel.UUID
	QtyReceived      int
	QtyToBackorders  int
	QtyToPool        int
	BackordersServed int
	BackordersClosed int
}

// AllocateIncomingStockCommandHandler drains a product's backorder queue
// with newly received stock, strictly FIFO within priority tiers, and adds
// the remainder to the node's shared pool.
//
// The drain runs under a per-product lock so two concurrent receipts of the
// same product can never double-allocate the same incoming units; each
// received unit is consumed exactly once.
type AllocateIncomingStockCommandHandler struct {
	uowFactory ReceiptUoWFactory

	mu    sync.Mutex
	locks map[kernel.UUID]*sync.Mutex
}

// NewAllocateIncomingStockCommandHandler creates a handler for stock receipts.
func NewAllocateIncomingStockCommandHandler(uowFactory ReceiptUoWFactory) *AllocateIncomingStockCommandHandler {
	return &AllocateIncomingStockCommandHandler{
		uowFactory: uowFactory,
		locks:      make(map[kernel.UUID]*sync.Mutex),
	}
}

// Handle processes one stock receipt and returns the allocation summary.
// The backorder mutations and the pool write commit atomically.
func (h *AllocateIncomingStockCommandHandler) Handle(
	ctx context.Context,
	cmd AllocateIncomingStockCommand,
) (IncomingAllocation, error) {
	if err := cmd.Validate(); err != nil {
		return IncomingAllocation{}, err
	}

	lock := h.productLock(cmd.ProductID())
	lock.Lock()
	defer lock.Unlock()

	summary := IncomingAllocation{
		NodeCode:    cmd.NodeCode(),
		ProductID:   cmd.ProductID(),
		QtyReceived: cmd.Qty(),
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IncomingAllocation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	backorderRepo := uow.BackorderRepository()
	open, err := backorderRepo.GetOpenByProduct(ctx, cmd.ProductID())
	if err != nil {
		return IncomingAllocation{}, err
	}

	incoming := cmd.Qty()
	for _, captured := range open {
		if incoming == 0 {
			break
		}

		consumed, err := captured.ApplyIncoming(incoming)
		if err != nil {
			return IncomingAllocation{}, err
		}
		if err := backorderRepo.Update(ctx, captured); err != nil {
			return IncomingAllocation{}, err
		}

		incoming -= consumed
		summary.QtyToBackorders += consumed
		summary.BackordersServed++
		if !captured.Status().IsOpen() {
			summary.BackordersClosed++
		}
	}

	if incoming > 0 {
		if err := uow.StockRepository().AddIncoming(ctx, cmd.NodeCode(), cmd.ProductID(), incoming); err != nil {
			return IncomingAllocation{}, err
		}
		summary.QtyToPool = incoming
	}

	if err := uow.Commit(ctx); err != nil {
		return IncomingAllocation{}, err
	}

	return summary, nil
}

func (h *AllocateIncomingStockCommandHandler) productLock(productID kernel.UUID) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()

	lock, ok := h.locks[productID]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[productID] = lock
	}
	return lock
}
