package ports

import (
	"context"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
)

// SoftReservationStore holds ephemeral checkout-time stock reservations.
// Entries expire on their own; the store is not authoritative inventory, but
// its quantities are subtracted from available-to-promise to bound oversell
// between checkout and order confirmation.
//
// A lookup miss means zero reserved units, never an error. Implementations
// must be safe for concurrent use.
type SoftReservationStore interface {
	// Hold reserves qty units of a product at a node for the TTL. Channel
	// may be empty for a pool-level reservation. Repeated holds under the
	// same reservation ID refresh the TTL instead of stacking.
	Hold(ctx context.Context, reservationID kernel.UUID, nodeCode string, productID kernel.UUID, channel string, qty int, ttl time.Duration) error

	// Release drops a reservation before its TTL expires. Releasing an
	// unknown or already-expired reservation is a no-op.
	Release(ctx context.Context, reservationID kernel.UUID) error

	// ReservedQty sums the live reserved units for a (node, product,
	// channel) triple. Expired entries never count.
	ReservedQty(ctx context.Context, nodeCode string, productID kernel.UUID, channel string) (int, error)
}
