package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
)

// BackorderRepository defines the persistence contract for backorder
// aggregates.
type BackorderRepository interface {
	// Add persists a new backorder aggregate to storage.
	Add(ctx context.Context, aggregate *backorder.Backorder) error

	// Update persists changes to an existing backorder aggregate.
	Update(ctx context.Context, aggregate *backorder.Backorder) error

	// Get retrieves a backorder aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*backorder.Backorder, error)

	// GetOpenByProduct retrieves every PENDING or PARTIALLY_AVAILABLE
	// backorder for a product, ordered by priority ascending then creation
	// time ascending. This is the FIFO drain order for incoming stock.
	GetOpenByProduct(ctx context.Context, productID kernel.UUID) ([]*backorder.Backorder, error)
}

// PreorderRepository defines the persistence contract for preorder
// aggregates and their per-product queue positions.
type PreorderRepository interface {
	// Add persists a new preorder aggregate to storage.
	Add(ctx context.Context, aggregate *backorder.Preorder) error

	// Update persists changes to an existing preorder aggregate.
	Update(ctx context.Context, aggregate *backorder.Preorder) error

	// Get retrieves a preorder aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*backorder.Preorder, error)

	// NextPosition returns the next queue position for a product. Positions
	// are monotonically increasing per product and never reused.
	NextPosition(ctx context.Context, productID kernel.UUID) (int, error)

	// GetActiveByProduct retrieves every ACTIVE preorder for a product
	// ordered by queue position ascending.
	GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*backorder.Preorder, error)

	// GetProductsWithActive lists the products that currently have at
	// least one ACTIVE preorder. Drives the periodic conversion sweep.
	GetProductsWithActive(ctx context.Context) ([]kernel.UUID, error)
}
