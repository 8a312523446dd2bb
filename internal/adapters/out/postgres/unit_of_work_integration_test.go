package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/backorderrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/noderepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/rulerepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/stockrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&noderepo.NodeDTO{},
		&noderepo.CoverageDTO{},
		&rulerepo.RuleDTO{},
		&stockrepo.StockDTO{},
		&backorderrepo.BackorderDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE nodes, node_coverage, routing_rules, stock_records, backorders",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.NodeRepository())
	suite.NotNil(uow1.StockRepository())
	suite.NotNil(uow2.RuleRepository())
	suite.NotNil(uow2.BackorderRepository())
	suite.NotNil(uow2.PreorderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testNode := suite.createTestNode("W1")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.NodeRepository().Add(ctx, testNode)
	suite.Require().NoError(err)

	retrieved, err := uow.NodeRepository().Get(ctx, testNode.ID())
	suite.Require().NoError(err)
	suite.Equal(testNode.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.NodeRepository().GetByCode(ctx, "W1")
	suite.Require().NoError(err)
	suite.Equal(testNode.ID(), retrieved.ID())
}

// TestUnitOfWork_AllocationWorkflow verifies node, stock, and backorder
// mutations within one transaction persist together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AllocationWorkflow() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	setupUow := suite.factory.Create()
	testNode := suite.createTestNode("W1")
	err := setupUow.NodeRepository().Add(ctx, testNode)
	suite.Require().NoError(err)
	err = setupUow.StockRepository().Upsert(ctx, inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 10,
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.StockRepository().ConsumeAvailable(ctx, "W1", productID, "", 4)
	suite.Require().NoError(err)

	err = uow.NodeRepository().IncrementDayOrders(ctx, "W1")
	suite.Require().NoError(err)

	testBackorder := suite.createTestBackorder(productID, 6)
	err = uow.BackorderRepository().Add(ctx, testBackorder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()

	snapshot, err := verifyUow.StockRepository().SnapshotNode(ctx, "W1", []kernel.UUID{productID})
	suite.Require().NoError(err)
	stock, ok := snapshot.StockFor(productID)
	suite.Require().True(ok)
	suite.Equal(6, stock.Pool.Available)
	suite.Equal(4, stock.Pool.Reserved)

	retrievedNode, err := verifyUow.NodeRepository().GetByCode(ctx, "W1")
	suite.Require().NoError(err)
	suite.Equal(1, retrievedNode.CurrentDayOrders())

	open, err := verifyUow.BackorderRepository().GetOpenByProduct(ctx, productID)
	suite.Require().NoError(err)
	suite.Require().Len(open, 1)
	suite.Equal(6, open[0].QtyRequested())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	setupUow := suite.factory.Create()
	err := setupUow.NodeRepository().Add(ctx, suite.createTestNode("W1"))
	suite.Require().NoError(err)
	err = setupUow.StockRepository().Upsert(ctx, inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 10,
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.StockRepository().ConsumeAvailable(ctx, "W1", productID, "", 7)
	suite.Require().NoError(err)

	err = uow.NodeRepository().IncrementDayOrders(ctx, "W1")
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()

	snapshot, err := verifyUow.StockRepository().SnapshotNode(ctx, "W1", []kernel.UUID{productID})
	suite.Require().NoError(err)
	stock, ok := snapshot.StockFor(productID)
	suite.Require().True(ok)
	suite.Equal(10, stock.Pool.Available)
	suite.Zero(stock.Pool.Reserved)

	retrievedNode, err := verifyUow.NodeRepository().GetByCode(ctx, "W1")
	suite.Require().NoError(err)
	suite.Zero(retrievedNode.CurrentDayOrders())
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	node1 := suite.createTestNode("W1")
	node2 := suite.createTestNode("W2")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.NodeRepository().Add(ctx, node1)
	suite.Require().NoError(err)

	err = uow2.NodeRepository().Add(ctx, node2)
	suite.Require().NoError(err)

	_, err = uow1.NodeRepository().Get(ctx, node1.ID())
	suite.Require().NoError(err, "UOW1 should see its own node")

	_, err = uow1.NodeRepository().Get(ctx, node2.ID())
	suite.Require().Error(err, "UOW1 should not see UOW2's uncommitted node")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.NodeRepository().Get(ctx, node1.ID())
	suite.Require().NoError(err, "Committed node should persist")

	_, err = newUow.NodeRepository().Get(ctx, node2.ID())
	suite.Require().Error(err, "Rolled-back node should not persist")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testNode := suite.createTestNode("W1")

	err := uow.NodeRepository().Add(ctx, testNode)
	suite.Require().NoError(err)

	retrieved, err := uow.NodeRepository().Get(ctx, testNode.ID())
	suite.Require().NoError(err)
	suite.Equal(testNode.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.NodeRepository().Get(ctx, testNode.ID())
	suite.Require().NoError(err)
	suite.Equal(testNode.ID(), retrieved.ID())
}

// TestUnitOfWork_InsufficientStockKeepsTransactionUsable verifies a failed
// conditional decrement does not poison the surrounding transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_InsufficientStockKeepsTransactionUsable() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	setupUow := suite.factory.Create()
	err := setupUow.StockRepository().Upsert(ctx, inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 2,
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.StockRepository().ConsumeAvailable(ctx, "W1", productID, "", 5)
	suite.Require().ErrorIs(err, ports.ErrInsufficientStock)

	err = uow.StockRepository().ConsumeAvailable(ctx, "W1", productID, "", 2)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	snapshot, err := verifyUow.StockRepository().SnapshotNode(ctx, "W1", []kernel.UUID{productID})
	suite.Require().NoError(err)
	stock, ok := snapshot.StockFor(productID)
	suite.Require().True(ok)
	suite.Zero(stock.Pool.Available)
	suite.Equal(2, stock.Pool.Reserved)
}

// createTestNode creates a valid node for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestNode(code string) *node.Node {
	pincode, err := kernel.NewPincode("110001")
	suite.Require().NoError(err)

	testNode, err := node.NewNode(kernel.NewUUID(), code, code+" warehouse", node.Warehouse, pincode, 0)
	suite.Require().NoError(err)
	return testNode
}

// createTestBackorder creates a valid backorder for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) createTestBackorder(
	productID kernel.UUID,
	quantity int,
) *backorder.Backorder {
	testBackorder, err := backorder.NewBackorder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		productID,
		quantity,
		5,
	)
	suite.Require().NoError(err)
	return testBackorder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
