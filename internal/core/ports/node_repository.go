package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
)

// ServiceableNode pairs a fulfillment node with its serviceability entry for
// one destination. It is the unit the candidate enumeration works with.
type ServiceableNode struct {
	Node     *node.Node
	Coverage node.Coverage
}

// NodeRepository defines the persistence contract for fulfillment node
// aggregates and their serviceability table.
type NodeRepository interface {
	// Add persists a new node aggregate to storage.
	Add(ctx context.Context, aggregate *node.Node) error

	// Update persists changes to an existing node aggregate.
	Update(ctx context.Context, aggregate *node.Node) error

	// Get retrieves a node aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*node.Node, error)

	// GetByCode retrieves a node aggregate by its operations-facing code.
	GetByCode(ctx context.Context, code string) (*node.Node, error)

	// GetServing retrieves every active, order-accepting node whose
	// serviceability table covers the destination, each paired with its
	// coverage row, in serviceability priority-rank order.
	GetServing(ctx context.Context, destination kernel.Pincode) ([]ServiceableNode, error)

	// AddCoverage persists a serviceability entry for a node.
	AddCoverage(ctx context.Context, nodeCode string, coverage node.Coverage) error

	// IncrementDayOrders atomically bumps a node's current-day order
	// counter, failing when the daily capacity would be exceeded.
	IncrementDayOrders(ctx context.Context, nodeCode string) error

	// DecrementDayOrders atomically undoes one IncrementDayOrders, used by
	// compensating rollback.
	DecrementDayOrders(ctx context.Context, nodeCode string) error

	// ResetAllDayCounters zeroes the current-day order counter of every
	// node. Invoked by the daily capacity-reset job.
	ResetAllDayCounters(ctx context.Context) error
}
