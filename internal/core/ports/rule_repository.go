package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
)

// RuleRepository defines the persistence contract for routing rule
// aggregates. Rules are configuration: long-lived, rarely mutated, loaded in
// full for every orchestration.
type RuleRepository interface {
	// Add persists a new rule aggregate to storage.
	Add(ctx context.Context, aggregate *rule.Rule) error

	// Update persists changes to an existing rule aggregate.
	Update(ctx context.Context, aggregate *rule.Rule) error

	// Get retrieves a rule aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rule.Rule, error)

	// GetAllActive retrieves every active rule, sorted ascending by
	// priority. Pincode patterns are parsed and validated at load time.
	GetAllActive(ctx context.Context) ([]*rule.Rule, error)
}
