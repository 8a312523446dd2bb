package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/services"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type emptyLaneTable struct{}

func (emptyLaneTable) LanesFor(_ context.Context, _, _ kernel.Pincode) ([]carrier.LaneRate, error) {
	return nil, nil
}

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pincode, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pincode
}

func buildServiceable(t *testing.T, code, origin, destination string, priorityRank int) ports.ServiceableNode {
	t.Helper()
	n, err := node.NewNode(kernel.NewUUID(), code, code+" warehouse",
		node.Warehouse, mustPincode(t, origin), 0)
	require.NoError(t, err)

	coverage, err := node.NewCoverage(mustPincode(t, destination), true, true,
		priorityRank, 2, 50)
	require.NoError(t, err)

	return ports.ServiceableNode{Node: n, Coverage: coverage}
}

func poolSnapshot(code string, productID kernel.UUID, available int) inventory.NodeSnapshot {
	return inventory.NodeSnapshot{
		NodeCode: code,
		Products: map[kernel.UUID]inventory.ProductStock{
			productID: {Pool: &inventory.PoolRecord{Available: available}},
		},
	}
}

func buildOrchestrateCommand(t *testing.T, productID kernel.UUID, qty int,
	overrides allocation.Overrides,
) commands.OrchestrateOrderCommand {
	t.Helper()
	cmd, err := commands.NewOrchestrateOrderCommand(kernel.NewUUID(), "400001", "WEB",
		node.ChannelB2C, allocation.Prepaid,
		[]commands.LineItemInput{{
			ProductID:    productID,
			Quantity:     qty,
			UnitPrice:    decimal.NewFromInt(100),
			UnitWeightKg: decimal.NewFromFloat(0.5),
		}}, overrides)
	require.NoError(t, err)
	return cmd
}

type orchestrationFixture struct {
	nodes     *MockNodeRepository
	rules     *MockRuleRepository
	stock     *MockStockRepository
	softRes   *MockSoftReservationStore
	decisions *MockDecisionRepository
	uow       *MockOrchestrationUoW
	handler   commands.OrchestrateOrderCommandHandler
}

func buildOrchestrationFixture(t *testing.T) *orchestrationFixture {
	t.Helper()
	checker, err := services.NewAvailabilityChecker(false, inventory.SharedPool)
	require.NoError(t, err)

	f := &orchestrationFixture{
		nodes:     new(MockNodeRepository),
		rules:     new(MockRuleRepository),
		stock:     new(MockStockRepository),
		softRes:   new(MockSoftReservationStore),
		decisions: new(MockDecisionRepository),
		uow: &MockOrchestrationUoW{
			Nodes:      new(MockNodeRepository),
			Stock:      new(MockStockRepository),
			Backorders: new(MockBackorderRepository),
		},
	}
	f.handler = commands.NewOrchestrateOrderCommandHandler(
		mockOrchestrationUoWFactory{uow: f.uow},
		f.nodes, f.rules, f.stock, f.softRes, f.decisions,
		checker,
		services.NewCarrierSelector(nil, emptyLaneTable{}),
		carrier.CheapestFirst,
	)
	return f
}

func (f *orchestrationFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.nodes.AssertExpectations(t)
	f.rules.AssertExpectations(t)
	f.stock.AssertExpectations(t)
	f.decisions.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.uow.Nodes.AssertExpectations(t)
	f.uow.Stock.AssertExpectations(t)
	f.uow.Backorders.AssertExpectations(t)
}

func buildSplitRule(t *testing.T, maxSplits int, backorderAllowed bool) *rule.Rule {
	t.Helper()
	splitPolicy, err := rule.NewSplitPolicy(true, maxSplits, decimal.Zero)
	require.NoError(t, err)
	r, err := rule.NewRule(kernel.NewUUID(), "split-rule", 10, rule.Nearest,
		rule.Predicate{}, splitPolicy, rule.NewBackorderPolicy(backorderAllowed))
	require.NoError(t, err)
	return r
}

func buildBackorderRule(t *testing.T) *rule.Rule {
	t.Helper()
	r, err := rule.NewRule(kernel.NewUUID(), "backorder-rule", 10, rule.Nearest,
		rule.Predicate{}, rule.SplitPolicy{}, rule.NewBackorderPolicy(true))
	require.NoError(t, err)
	return r
}

func TestOrchestrateOrderCommandHandler_Handle_RoutedToSingleNode(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 3, allocation.Overrides{})

	f := buildOrchestrationFixture(t)
	destination := mustPincode(t, "400001")
	f.nodes.On("GetServing", ctx, destination).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
		buildServiceable(t, "W2", "110050", "400001", 2),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 5), nil).Once()
	f.stock.On("SnapshotNode", ctx, "W2", mock.Anything).
		Return(poolSnapshot("W2", productID, 0), nil).Once()
	f.rules.On("GetAllActive", ctx).Return([]*rule.Rule{}, nil).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.Stock.On("ConsumeAvailable", ctx, "W1", productID, "", 3).Return(nil).Once(),
		f.uow.Nodes.On("IncrementDayOrders", ctx, "W1").Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, decision)

	assert.Equal(t, allocation.Routed, decision.Status())
	assert.Equal(t, rule.DefaultRuleName, decision.AppliedRule())
	require.Len(t, decision.Assignments(), 1)
	assignment := decision.Assignments()[0]
	assert.Equal(t, "W1", assignment.NodeCode)
	require.Len(t, assignment.Items, 1)
	assert.Equal(t, 3, assignment.Items[0].Quantity)
	assert.Equal(t, inventory.SourcePool, assignment.Items[0].Source)
	assert.Empty(t, decision.Shortfalls())
	assert.Len(t, decision.Candidates(), 2)

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_SplitAcrossNodes(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 10, allocation.Overrides{})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
		buildServiceable(t, "W2", "110050", "400001", 2),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 6), nil).Once()
	f.stock.On("SnapshotNode", ctx, "W2", mock.Anything).
		Return(poolSnapshot("W2", productID, 4), nil).Once()
	f.rules.On("GetAllActive", ctx).
		Return([]*rule.Rule{buildSplitRule(t, 3, false)}, nil).Once()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.Stock.On("ConsumeAvailable", ctx, "W1", productID, "", 6).Return(nil).Once()
	f.uow.Stock.On("ConsumeAvailable", ctx, "W2", productID, "", 4).Return(nil).Once()
	f.uow.Nodes.On("IncrementDayOrders", ctx, "W1").Return(nil).Once()
	f.uow.Nodes.On("IncrementDayOrders", ctx, "W2").Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, allocation.Split, decision.Status())
	assert.Equal(t, "split-rule", decision.AppliedRule())
	require.Len(t, decision.Assignments(), 2)
	assert.Equal(t, "W1", decision.Assignments()[0].NodeCode)
	assert.Equal(t, 6, decision.Assignments()[0].Items[0].Quantity)
	assert.Equal(t, "W2", decision.Assignments()[1].NodeCode)
	assert.Equal(t, 4, decision.Assignments()[1].Items[0].Quantity)

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_BackorderCapturesShortfall(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 10, allocation.Overrides{})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 4), nil).Once()
	f.rules.On("GetAllActive", ctx).
		Return([]*rule.Rule{buildBackorderRule(t)}, nil).Once()

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.Stock.On("ConsumeAvailable", ctx, "W1", productID, "", 4).Return(nil).Once()
	f.uow.Nodes.On("IncrementDayOrders", ctx, "W1").Return(nil).Once()
	f.uow.Backorders.On("Add", ctx, mock.AnythingOfType("*backorder.Backorder")).
		Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, allocation.Backordered, decision.Status())
	require.Len(t, decision.Assignments(), 1)
	assert.Equal(t, 4, decision.Assignments()[0].Items[0].Quantity)
	require.Len(t, decision.Shortfalls(), 1)
	assert.Equal(t, 6, decision.Shortfalls()[0].Quantity)
	assert.NotEmpty(t, decision.Shortfalls()[0].BackorderID)

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_InsufficientInventoryFails(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 10, allocation.Overrides{})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 4), nil).Once()
	f.rules.On("GetAllActive", ctx).Return([]*rule.Rule{}, nil).Once()
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInsufficientInventory)
	require.NotNil(t, decision)

	assert.Equal(t, allocation.Failed, decision.Status())
	assert.NotEmpty(t, decision.FailureReason())
	assert.Empty(t, decision.Assignments())

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_NotServiceable(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 1, allocation.Overrides{})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).
		Return([]ports.ServiceableNode{}, nil).Once()
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNotServiceable)

	assert.Equal(t, allocation.Failed, decision.Status())
	assert.Equal(t, "NONE", decision.AppliedRule())

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_DryRunSkipsMutations(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 3, allocation.Overrides{DryRun: true})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 5), nil).Once()
	f.rules.On("GetAllActive", ctx).Return([]*rule.Rule{}, nil).Once()
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, allocation.Routed, decision.Status())
	assert.True(t, decision.IsDryRun())
	// No transaction may ever start on a dry run.
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_ForcedNodeNotServing(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 1, allocation.Overrides{ForcedNodeCode: "W9"})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
	}, nil).Once()
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNotServiceable)
	assert.Contains(t, decision.FailureReason(), "W9")

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_WriteFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 3, allocation.Overrides{})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 5), nil).Once()
	f.rules.On("GetAllActive", ctx).Return([]*rule.Rule{}, nil).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.Stock.On("ConsumeAvailable", ctx, "W1", productID, "", 3).
			Return(ports.ErrInsufficientStock).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(nil).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPartialWriteFailure)
	require.ErrorIs(t, err, ports.ErrInsufficientStock)

	assert.Equal(t, allocation.Failed, decision.Status())
	assert.Empty(t, decision.Assignments())

	f.assertExpectations(t)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestOrchestrateOrderCommandHandler_Handle_DecisionLogFailure(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := buildOrchestrateCommand(t, productID, 1, allocation.Overrides{DryRun: true})

	f := buildOrchestrationFixture(t)
	f.nodes.On("GetServing", ctx, mustPincode(t, "400001")).Return([]ports.ServiceableNode{
		buildServiceable(t, "W1", "400050", "400001", 1),
	}, nil).Once()
	f.stock.On("SnapshotNode", ctx, "W1", mock.Anything).
		Return(poolSnapshot("W1", productID, 5), nil).Once()
	f.rules.On("GetAllActive", ctx).Return([]*rule.Rule{}, nil).Once()

	logErr := errors.New("log store down")
	f.decisions.On("Add", mock.Anything, mock.AnythingOfType("*allocation.Decision")).
		Return(logErr).Once()

	decision, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, logErr)
	require.NotNil(t, decision)

	f.assertExpectations(t)
}

func TestOrchestrateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := buildOrchestrationFixture(t)
	_, err := f.handler.Handle(t.Context(), commands.OrchestrateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrOrchestrateOrderCommandIsNotConstructed)
}
