// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work scopes one business transaction: every repository
// obtained from it runs on the same database transaction, and the whole set
// of mutations commits or rolls back together.
//
// The orchestration log is deliberately not reachable from a unit of work.
// Decision records are written through their own repository on the root
// connection, so a rolled-back allocation still leaves its FAILED record.
package postgres

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/backorderrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/noderepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/preorderrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/rulerepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/stockrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations, using GORM's transaction capabilities to
// ensure data consistency and proper rollback handling.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.StockRepository().ConsumeAvailable(ctx, "W1", productID, "", 3); err != nil {
//	    return err
//	}
//	if err := uow.NodeRepository().IncrementDayOrders(ctx, "W1"); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// connection returns the active transaction, or the root connection when no
// transaction has been started.
func (uow *GormUnitOfWork) connection() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// NodeRepository provides node persistence operations within the unit of work.
func (uow *GormUnitOfWork) NodeRepository() ports.NodeRepository {
	return noderepo.NewGormNodeRepository(uow.connection(), uow)
}

// RuleRepository provides routing rule persistence operations within the unit of work.
func (uow *GormUnitOfWork) RuleRepository() ports.RuleRepository {
	return rulerepo.NewGormRuleRepository(uow.connection(), uow)
}

// StockRepository provides inventory persistence operations within the unit of work.
func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return stockrepo.NewGormStockRepository(uow.connection())
}

// BackorderRepository provides backorder persistence operations within the unit of work.
func (uow *GormUnitOfWork) BackorderRepository() ports.BackorderRepository {
	return backorderrepo.NewGormBackorderRepository(uow.connection(), uow)
}

// PreorderRepository provides preorder persistence operations within the unit of work.
func (uow *GormUnitOfWork) PreorderRepository() ports.PreorderRepository {
	return preorderrepo.NewGormPreorderRepository(uow.connection(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it when aggregates are added or
// updated; the tracked set enables post-commit processing such as domain
// event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
