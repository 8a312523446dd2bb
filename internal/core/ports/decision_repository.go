package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
)

// DecisionRepository defines the persistence contract for the orchestration
// log. It is deliberately not part of the unit of work: the decision record
// must survive even when the business transaction rolls back, so it is
// written on its own connection after the transaction completes.
type DecisionRepository interface {
	// Add appends one immutable decision record to the log.
	Add(ctx context.Context, aggregate *allocation.Decision) error

	// Get retrieves a decision record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Decision, error)

	// GetByOrder retrieves every decision recorded for an order, newest
	// first. Retried orders produce several records.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*allocation.Decision, error)
}
