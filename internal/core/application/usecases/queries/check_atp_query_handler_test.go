package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/noderepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/stockrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type CheckATPQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.CheckATPQueryHandler
}

func (suite *CheckATPQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
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
		&stockrepo.StockDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewCheckATPQueryHandler(db)
}

func (suite *CheckATPQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CheckATPQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE nodes, node_coverage, stock_records CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *CheckATPQueryHandlerTestSuite) TestHandle_NoServingNodes_ReturnsEmptyNodeList() {
	productID := kernel.NewUUID()
	query := suite.buildQuery(productID, 3, "")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Empty(result[0].Nodes)
	suite.Zero(result[0].TotalAvailable)
	suite.False(result[0].Fulfillable)
	suite.Empty(result[0].RecommendedNode)
}

func (suite *CheckATPQueryHandlerTestSuite) TestHandle_SharedPool_SubtractsReservations() {
	productID := kernel.NewUUID()
	suite.createServingNode("W1", 1)
	suite.upsertStock(inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 10, Reserved: 2,
	})

	result, err := suite.handler.Handle(context.Background(), suite.buildQuery(productID, 5, ""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Nodes, 1)
	suite.Equal("W1", result[0].Nodes[0].NodeCode)
	suite.Equal(8, result[0].Nodes[0].Available)
	suite.Equal(8, result[0].TotalAvailable)
	suite.True(result[0].Fulfillable)
	suite.Equal("W1", result[0].RecommendedNode)
}

func (suite *CheckATPQueryHandlerTestSuite) TestHandle_ChannelRecords_CountTowardTheirChannelOnly() {
	productID := kernel.NewUUID()
	suite.createServingNode("W1", 1)
	suite.upsertStock(inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 10, Reserved: 2,
	})
	suite.upsertStock(inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Channel: "WEB",
		Allocated: 10, Buffer: 2, Reserved: 3,
	})

	webResult, err := suite.handler.Handle(context.Background(), suite.buildQuery(productID, 13, "WEB"))
	suite.Require().NoError(err)
	suite.Require().Len(webResult, 1)
	suite.Equal(13, webResult[0].TotalAvailable)
	suite.True(webResult[0].Fulfillable)

	appResult, err := suite.handler.Handle(context.Background(), suite.buildQuery(productID, 13, "APP"))
	suite.Require().NoError(err)
	suite.Require().Len(appResult, 1)
	suite.Equal(8, appResult[0].TotalAvailable)
	suite.False(appResult[0].Fulfillable)
}

func (suite *CheckATPQueryHandlerTestSuite) TestHandle_RecommendsHighestRankedCoveringNode() {
	productID := kernel.NewUUID()
	suite.createServingNode("W1", 1)
	suite.createServingNode("W2", 2)
	suite.upsertStock(inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 3,
	})
	suite.upsertStock(inventory.StockRecord{
		NodeCode: "W2", ProductID: productID, Available: 9,
	})

	result, err := suite.handler.Handle(context.Background(), suite.buildQuery(productID, 5, ""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Nodes, 2)
	suite.Equal("W1", result[0].Nodes[0].NodeCode)
	suite.Equal("W2", result[0].RecommendedNode)
	suite.Equal(12, result[0].TotalAvailable)
}

func (suite *CheckATPQueryHandlerTestSuite) TestHandle_InactiveNodeIsExcluded() {
	productID := kernel.NewUUID()
	suite.createServingNode("W1", 1)
	suite.upsertStock(inventory.StockRecord{
		NodeCode: "W1", ProductID: productID, Available: 9,
	})

	err := suite.db.Exec("UPDATE nodes SET active = false WHERE code = ?", "W1").Error
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), suite.buildQuery(productID, 3, ""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Empty(result[0].Nodes)
}

func (suite *CheckATPQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.CheckATPQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrCheckATPQueryIsNotConstructed)
}

func (suite *CheckATPQueryHandlerTestSuite) buildQuery(
	productID kernel.UUID,
	quantity int,
	channel string,
) queries.CheckATPQuery {
	destination, err := kernel.NewPincode("400001")
	suite.Require().NoError(err)

	query, err := queries.NewCheckATPQuery(
		[]queries.ATPItem{{ProductID: productID, Quantity: quantity}},
		destination,
		channel,
	)
	suite.Require().NoError(err)
	return query
}

func (suite *CheckATPQueryHandlerTestSuite) createServingNode(code string, priorityRank int) {
	origin, err := kernel.NewPincode("110001")
	suite.Require().NoError(err)

	aggregate, err := node.NewNode(kernel.NewUUID(), code, code+" warehouse", node.Warehouse, origin, 0)
	suite.Require().NoError(err)

	destination, err := kernel.NewPincode("400001")
	suite.Require().NoError(err)

	coverage, err := node.NewCoverage(destination, true, true, priorityRank, 2, 50)
	suite.Require().NoError(err)

	repo := noderepo.NewGormNodeRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	suite.Require().NoError(repo.AddCoverage(context.Background(), code, coverage))
}

func (suite *CheckATPQueryHandlerTestSuite) upsertStock(record inventory.StockRecord) {
	repo := stockrepo.NewGormStockRepository(suite.db)
	suite.Require().NoError(repo.Upsert(context.Background(), record))
}

func TestCheckATPQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckATPQueryHandlerTestSuite))
}
