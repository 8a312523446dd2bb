package commands_test

import (
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildOpenBackorder(t *testing.T, productID kernel.UUID, qtyRequested int) *backorder.Backorder {
	t.Helper()
	captured, err := backorder.NewBackorder(kernel.NewUUID(), kernel.NewUUID(),
		productID, qtyRequested, 100)
	require.NoError(t, err)
	return captured
}

func TestAllocateIncomingStockCommandHandler_Handle_DrainsQueueFirst(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAllocateIncomingStockCommand("W1", productID, 8)
	require.NoError(t, err)

	first := buildOpenBackorder(t, productID, 10)
	second := buildOpenBackorder(t, productID, 5)

	uow := &MockOrchestrationUoW{
		Nodes:      new(MockNodeRepository),
		Stock:      new(MockStockRepository),
		Backorders: new(MockBackorderRepository),
	}
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Backorders.On("GetOpenByProduct", ctx, productID).
			Return([]*backorder.Backorder{first, second}, nil).Once(),
		uow.Backorders.On("Update", ctx, first).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAllocateIncomingStockCommandHandler(mockReceiptUoWFactory{uow: uow})
	summary, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// All eight units go to the oldest backorder; nothing reaches the pool
	// or the second backorder.
	assert.Equal(t, 8, summary.QtyToBackorders)
	assert.Equal(t, 0, summary.QtyToPool)
	assert.Equal(t, 1, summary.BackordersServed)
	assert.Equal(t, 0, summary.BackordersClosed)
	assert.Equal(t, backorder.PartiallyAvailable, first.Status())
	assert.Equal(t, backorder.Pending, second.Status())
	assert.Equal(t, 2, first.RemainingNeed())

	uow.AssertExpectations(t)
	uow.Backorders.AssertExpectations(t)
	uow.Stock.AssertNotCalled(t, "AddIncoming", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAllocateIncomingStockCommandHandler_Handle_LeftoverGoesToPool(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAllocateIncomingStockCommand("W1", productID, 20)
	require.NoError(t, err)

	first := buildOpenBackorder(t, productID, 10)
	second := buildOpenBackorder(t, productID, 5)

	uow := &MockOrchestrationUoW{
		Nodes:      new(MockNodeRepository),
		Stock:      new(MockStockRepository),
		Backorders: new(MockBackorderRepository),
	}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.Backorders.On("GetOpenByProduct", ctx, productID).
		Return([]*backorder.Backorder{first, second}, nil).Once()
	uow.Backorders.On("Update", ctx, first).Return(nil).Once()
	uow.Backorders.On("Update", ctx, second).Return(nil).Once()
	uow.Stock.On("AddIncoming", ctx, "W1", productID, 5).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAllocateIncomingStockCommandHandler(mockReceiptUoWFactory{uow: uow})
	summary, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 15, summary.QtyToBackorders)
	assert.Equal(t, 5, summary.QtyToPool)
	assert.Equal(t, 2, summary.BackordersServed)
	assert.Equal(t, 2, summary.BackordersClosed)
	assert.Equal(t, backorder.Allocated, first.Status())
	assert.Equal(t, backorder.Allocated, second.Status())

	uow.AssertExpectations(t)
	uow.Backorders.AssertExpectations(t)
	uow.Stock.AssertExpectations(t)
}

func TestAllocateIncomingStockCommandHandler_Handle_NoOpenBackorders(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAllocateIncomingStockCommand("W1", productID, 7)
	require.NoError(t, err)

	uow := &MockOrchestrationUoW{
		Nodes:      new(MockNodeRepository),
		Stock:      new(MockStockRepository),
		Backorders: new(MockBackorderRepository),
	}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.Backorders.On("GetOpenByProduct", ctx, productID).
		Return([]*backorder.Backorder{}, nil).Once()
	uow.Stock.On("AddIncoming", ctx, "W1", productID, 7).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAllocateIncomingStockCommandHandler(mockReceiptUoWFactory{uow: uow})
	summary, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.QtyToPool)
	assert.Equal(t, 0, summary.QtyToBackorders)

	uow.AssertExpectations(t)
}

func TestAllocateIncomingStockCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAllocateIncomingStockCommandHandler(mockReceiptUoWFactory{})
	_, err := h.Handle(t.Context(), commands.AllocateIncomingStockCommand{})
	require.Error(t, err)
}
