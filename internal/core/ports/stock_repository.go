package ports

import (
	"context"
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned when a conditional stock consumption
// finds fewer available units than requested. The condition is evaluated
// atomically in the store, making it the authoritative oversell guard.
var ErrInsufficientStock = errors.New("insufficient stock for consumption")

// StockRepository defines the persistence contract for durable inventory
// records: the shared-pool rows and the channel-scoped rows of every node.
type StockRepository interface {
	// SnapshotNode reads the durable stock records of the given products at
	// one node into an immutable snapshot. Soft reservations are merged in
	// by the caller from the reservation store.
	SnapshotNode(ctx context.Context, nodeCode string, productIDs []kernel.UUID) (inventory.NodeSnapshot, error)

	// Upsert writes one stock record, creating or replacing the row for its
	// (node, product, channel) key.
	Upsert(ctx context.Context, record inventory.StockRecord) error

	// ConsumeAvailable atomically moves qty units from available to
	// reserved on the row identified by nodeCode, productID and channel
	// (empty channel = shared pool). Returns ErrInsufficientStock when the
	// row holds fewer than qty available units; no partial consumption
	// occurs.
	ConsumeAvailable(ctx context.Context, nodeCode string, productID kernel.UUID, channel string, qty int) error

	// RestoreAvailable atomically undoes one ConsumeAvailable, used by
	// compensating rollback after a partial write failure.
	RestoreAvailable(ctx context.Context, nodeCode string, productID kernel.UUID, channel string, qty int) error

	// AddIncoming atomically adds qty received units to the shared-pool
	// row, creating it if absent. Invoked on stock receipts, before the
	// backorder drain runs.
	AddIncoming(ctx context.Context, nodeCode string, productID kernel.UUID, qty int) error

	// TotalAvailable sums the net shared-pool availability of a product
	// across every node. Used by preorder conversion to decide how far down
	// the queue stock reaches.
	TotalAvailable(ctx context.Context, productID kernel.UUID) (int, error)
}
