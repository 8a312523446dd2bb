package cmd

import (
	"log/slog"
	"os"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/in/http"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/cache/softres"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/decisionrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/lanerepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/noderepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/preorderrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/rulerepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/stockrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/pricing"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/services"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	softRes         *softres.InMemoryStore
	checker         services.AvailabilityChecker
	carrierSelector services.CarrierSelector
	carrierStrategy carrier.SelectionStrategy
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	fallbackMode, err := inventory.FallbackModeFromString(config.InventoryFallbackMode)
	if err != nil {
		return CompositionRoot{}, err
	}
	checker, err := services.NewAvailabilityChecker(config.ChannelAwareInventory, fallbackMode)
	if err != nil {
		return CompositionRoot{}, err
	}
	strategy, err := carrier.SelectionStrategyFromString(config.CarrierStrategy)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		softRes:    softres.NewInMemoryStore(),
		checker:    checker,
		carrierSelector: services.NewCarrierSelector(
			pricing.NewRateCardQuoteProvider(gormDB),
			lanerepo.NewGormLaneTable(gormDB),
		),
		carrierStrategy: strategy,
		logger:          slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// SoftReservationStore exposes the shared in-memory reservation store so
// main can start its janitor next to the cron jobs.
func (c *CompositionRoot) SoftReservationStore() *softres.InMemoryStore {
	return c.softRes
}

func (c *CompositionRoot) CreateOrchestrateOrderCommandHandler() commands.OrchestrateOrderCommandHandler {
	var f commands.OrchestrationUoWFactory = FuncOrchestrationUoWFactory(func() commands.OrchestrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOrchestrateOrderCommandHandler(
		f,
		noderepo.NewGormNodeRepository(c.gormDB, nopTracker{}),
		rulerepo.NewGormRuleRepository(c.gormDB, nopTracker{}),
		stockrepo.NewGormStockRepository(c.gormDB),
		c.softRes,
		decisionrepo.NewGormDecisionRepository(c.gormDB),
		c.checker,
		c.carrierSelector,
		c.carrierStrategy,
	)
}

func (c *CompositionRoot) CreateRegisterNodeCommandHandler() commands.RegisterNodeCommandHandler {
	var f commands.NodeUoWFactory = FuncNodeUoWFactory(func() commands.NodeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterNodeCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterRuleCommandHandler() commands.RegisterRuleCommandHandler {
	var f commands.RuleUoWFactory = FuncRuleUoWFactory(func() commands.RuleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocateIncomingStockCommandHandler() *commands.AllocateIncomingStockCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateIncomingStockCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBackorderCommandHandler() commands.CreateBackorderCommandHandler {
	var f commands.BackorderUoWFactory = FuncBackorderUoWFactory(func() commands.BackorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBackorderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePreorderCommandHandler() commands.CreatePreorderCommandHandler {
	var f commands.PreorderUoWFactory = FuncPreorderUoWFactory(func() commands.PreorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePreorderCommandHandler(f)
}

func (c *CompositionRoot) CreateConvertAvailablePreordersCommandHandler() commands.ConvertAvailablePreordersCommandHandler {
	var f commands.ConversionUoWFactory = FuncConversionUoWFactory(func() commands.ConversionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConvertAvailablePreordersCommandHandler(f)
}

func (c *CompositionRoot) CreateResetNodeCapacityCommandHandler() commands.ResetNodeCapacityCommandHandler {
	var f commands.NodeUoWFactory = FuncNodeUoWFactory(func() commands.NodeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetNodeCapacityCommandHandler(f)
}

func (c *CompositionRoot) CreateHoldReservationCommandHandler() commands.HoldReservationCommandHandler {
	return commands.NewHoldReservationCommandHandler(c.softRes)
}

func (c *CompositionRoot) CreateCheckATPQueryHandler() queries.CheckATPQueryHandler {
	return queries.NewCheckATPQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBackordersQueryHandler() queries.GetBackordersQueryHandler {
	return queries.NewGetBackordersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrchestrationLogsQueryHandler() queries.GetOrchestrationLogsQueryHandler {
	return queries.NewGetOrchestrationLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNodesQueryHandler() queries.GetNodesQueryHandler {
	return queries.NewGetNodesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateOrchestrateOrderCommandHandler(),
		c.CreateRegisterNodeCommandHandler(),
		c.CreateRegisterRuleCommandHandler(),
		c.CreateAllocateIncomingStockCommandHandler(),
		c.CreateCreateBackorderCommandHandler(),
		c.CreateCreatePreorderCommandHandler(),
		c.CreateHoldReservationCommandHandler(),
		c.CreateCheckATPQueryHandler(),
		c.CreateGetBackordersQueryHandler(),
		c.CreateGetOrchestrationLogsQueryHandler(),
		c.CreateGetNodesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateResetNodeCapacityCommandHandler(),
		c.CreateConvertAvailablePreordersCommandHandler(),
		preorderrepo.NewGormPreorderRepository(c.gormDB, nopTracker{}),
		c.logger,
	)
}

// nopTracker satisfies the repositories' aggregate tracker for read-only
// use outside a unit of work, where nothing has to be committed.
type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncNodeUoWFactory func() commands.NodeUoW

func (f FuncNodeUoWFactory) Create() commands.NodeUoW {
	return f()
}

type FuncRuleUoWFactory func() commands.RuleUoW

func (f FuncRuleUoWFactory) Create() commands.RuleUoW {
	return f()
}

type FuncBackorderUoWFactory func() commands.BackorderUoW

func (f FuncBackorderUoWFactory) Create() commands.BackorderUoW {
	return f()
}

type FuncPreorderUoWFactory func() commands.PreorderUoW

func (f FuncPreorderUoWFactory) Create() commands.PreorderUoW {
	return f()
}

type FuncConversionUoWFactory func() commands.ConversionUoW

func (f FuncConversionUoWFactory) Create() commands.ConversionUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}

type FuncOrchestrationUoWFactory func() commands.OrchestrationUoW

func (f FuncOrchestrationUoWFactory) Create() commands.OrchestrationUoW {
	return f()
}
