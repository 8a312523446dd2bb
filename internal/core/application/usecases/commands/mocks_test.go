package commands_test

import (
	"context"
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockNodeRepository struct{ mock.Mock }

func (m *MockNodeRepository) Add(_ context.Context, _ *node.Node) error    { return nil }
func (m *MockNodeRepository) Update(_ context.Context, _ *node.Node) error { return nil }
func (m *MockNodeRepository) Get(_ context.Context, _ kernel.UUID) (*node.Node, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockNodeRepository) GetByCode(_ context.Context, _ string) (*node.Node, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockNodeRepository) GetServing(ctx context.Context, destination kernel.Pincode) ([]ports.ServiceableNode, error) {
	args := m.Called(ctx, destination)
	return args.Get(0).([]ports.ServiceableNode), args.Error(1)
}
func (m *MockNodeRepository) AddCoverage(ctx context.Context, nodeCode string, coverage node.Coverage) error {
	args := m.Called(ctx, nodeCode, coverage)
	return args.Error(0)
}
func (m *MockNodeRepository) IncrementDayOrders(ctx context.Context, nodeCode string) error {
	args := m.Called(ctx, nodeCode)
	return args.Error(0)
}
func (m *MockNodeRepository) DecrementDayOrders(_ context.Context, _ string) error { return nil }
func (m *MockNodeRepository) ResetAllDayCounters(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRuleRepository struct{ mock.Mock }

func (m *MockRuleRepository) Add(ctx context.Context, aggregate *rule.Rule) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockRuleRepository) Update(_ context.Context, _ *rule.Rule) error { return nil }
func (m *MockRuleRepository) Get(_ context.Context, _ kernel.UUID) (*rule.Rule, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockRuleRepository) GetAllActive(ctx context.Context) ([]*rule.Rule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*rule.Rule), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) SnapshotNode(ctx context.Context, nodeCode string, productIDs []kernel.UUID) (inventory.NodeSnapshot, error) {
	args := m.Called(ctx, nodeCode, productIDs)
	return args.Get(0).(inventory.NodeSnapshot), args.Error(1)
}
func (m *MockStockRepository) Upsert(_ context.Context, _ inventory.StockRecord) error { return nil }
func (m *MockStockRepository) ConsumeAvailable(ctx context.Context, nodeCode string, productID kernel.UUID, channel string, qty int) error {
	args := m.Called(ctx, nodeCode, productID, channel, qty)
	return args.Error(0)
}
func (m *MockStockRepository) RestoreAvailable(ctx context.Context, nodeCode string, productID kernel.UUID, channel string, qty int) error {
	args := m.Called(ctx, nodeCode, productID, channel, qty)
	return args.Error(0)
}
func (m *MockStockRepository) AddIncoming(ctx context.Context, nodeCode string, productID kernel.UUID, qty int) error {
	args := m.Called(ctx, nodeCode, productID, qty)
	return args.Error(0)
}
func (m *MockStockRepository) TotalAvailable(ctx context.Context, productID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

type MockBackorderRepository struct{ mock.Mock }

func (m *MockBackorderRepository) Add(ctx context.Context, aggregate *backorder.Backorder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockBackorderRepository) Update(ctx context.Context, aggregate *backorder.Backorder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockBackorderRepository) Get(_ context.Context, _ kernel.UUID) (*backorder.Backorder, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockBackorderRepository) GetOpenByProduct(ctx context.Context, productID kernel.UUID) ([]*backorder.Backorder, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]*backorder.Backorder), args.Error(1)
}

type MockPreorderRepository struct{ mock.Mock }

func (m *MockPreorderRepository) Add(ctx context.Context, aggregate *backorder.Preorder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPreorderRepository) Update(ctx context.Context, aggregate *backorder.Preorder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPreorderRepository) Get(_ context.Context, _ kernel.UUID) (*backorder.Preorder, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPreorderRepository) NextPosition(ctx context.Context, productID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}
func (m *MockPreorderRepository) GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*backorder.Preorder, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]*backorder.Preorder), args.Error(1)
}
func (m *MockPreorderRepository) GetProductsWithActive(_ context.Context) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDecisionRepository struct {
	mock.Mock
	Recorded []*allocation.Decision
}

func (m *MockDecisionRepository) Add(ctx context.Context, aggregate *allocation.Decision) error {
	m.Recorded = append(m.Recorded, aggregate)
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockDecisionRepository) Get(_ context.Context, _ kernel.UUID) (*allocation.Decision, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDecisionRepository) GetByOrder(_ context.Context, _ kernel.UUID) ([]*allocation.Decision, error) {
	return nil, errors.New("not implemented in mock")
}

type MockSoftReservationStore struct{ mock.Mock }

func (m *MockSoftReservationStore) Hold(ctx context.Context, reservationID kernel.UUID, nodeCode string, productID kernel.UUID, channel string, qty int, ttl time.Duration) error {
	args := m.Called(ctx, reservationID, nodeCode, productID, channel, qty, ttl)
	return args.Error(0)
}
func (m *MockSoftReservationStore) Release(ctx context.Context, reservationID kernel.UUID) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}
func (m *MockSoftReservationStore) ReservedQty(_ context.Context, _ string, _ kernel.UUID, _ string) (int, error) {
	return 0, nil
}

// MockOrchestrationUoW satisfies every repo factory the command handlers
// need, so one mock type serves all unit of work shapes.
type MockOrchestrationUoW struct {
	mock.Mock
	Nodes      *MockNodeRepository
	Rules      *MockRuleRepository
	Stock      *MockStockRepository
	Backorders *MockBackorderRepository
}

func (m *MockOrchestrationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrchestrationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrchestrationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrchestrationUoW) NodeRepository() ports.NodeRepository           { return m.Nodes }
func (m *MockOrchestrationUoW) RuleRepository() ports.RuleRepository           { return m.Rules }
func (m *MockOrchestrationUoW) StockRepository() ports.StockRepository         { return m.Stock }
func (m *MockOrchestrationUoW) BackorderRepository() ports.BackorderRepository { return m.Backorders }

// MockPreorderUoW is the transaction mock for preorder command handlers.
type MockPreorderUoW struct {
	mock.Mock
	Preorders *MockPreorderRepository
	Stock     *MockStockRepository
}

func (m *MockPreorderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPreorderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPreorderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPreorderUoW) PreorderRepository() ports.PreorderRepository { return m.Preorders }
func (m *MockPreorderUoW) StockRepository() ports.StockRepository       { return m.Stock }

type mockOrchestrationUoWFactory struct{ uow *MockOrchestrationUoW }

func (f mockOrchestrationUoWFactory) Create() commands.OrchestrationUoW { return f.uow }

type mockReceiptUoWFactory struct{ uow *MockOrchestrationUoW }

func (f mockReceiptUoWFactory) Create() commands.ReceiptUoW { return f.uow }

type mockNodeUoWFactory struct{ uow *MockOrchestrationUoW }

func (f mockNodeUoWFactory) Create() commands.NodeUoW { return f.uow }

type mockRuleUoWFactory struct{ uow *MockOrchestrationUoW }

func (f mockRuleUoWFactory) Create() commands.RuleUoW { return f.uow }

type mockBackorderUoWFactory struct{ uow *MockOrchestrationUoW }

func (f mockBackorderUoWFactory) Create() commands.BackorderUoW { return f.uow }

type mockPreorderUoWFactory struct{ uow *MockPreorderUoW }

func (f mockPreorderUoWFactory) Create() commands.PreorderUoW { return f.uow }

type mockConversionUoWFactory struct{ uow *MockPreorderUoW }

func (f mockConversionUoWFactory) Create() commands.ConversionUoW { return f.uow }
