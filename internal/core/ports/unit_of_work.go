package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The decision log is intentionally absent: decisions are written outside
// the business transaction so a rollback can never lose the audit record.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// NodeRepository returns a NodeRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	NodeRepository() NodeRepository

	// RuleRepository returns a RuleRepository instance bound to the current transaction.
	RuleRepository() RuleRepository

	// StockRepository returns a StockRepository instance bound to the current transaction.
	StockRepository() StockRepository

	// BackorderRepository returns a BackorderRepository instance bound to the current transaction.
	BackorderRepository() BackorderRepository

	// PreorderRepository returns a PreorderRepository instance bound to the current transaction.
	PreorderRepository() PreorderRepository
}
