package queries

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var (
	ErrGetNodesQueryIsNotConstructed = errors.New(
		"GetNodesQuery must be created via NewGetNodesQuery constructor",
	)
)

// GetNodesQuery retrieves all fulfillment nodes for the operations view.
//
// Example:
//
//	query := NewGetNodesQuery()
//	nodes, err := handler.Handle(ctx, query)
type GetNodesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNodesQuery creates a query to retrieve all nodes.
// This is a parameterless query that fetches the complete node list.
func NewGetNodesQuery() GetNodesQuery {
	return GetNodesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNodesQuery) Validate() error {
	return q.guard.Validate(ErrGetNodesQueryIsNotConstructed)
}

// GetNodesQueryResponse represents one fulfillment node in the read model.
type GetNodesQueryResponse struct {
	ID               kernel.UUID
	Code             string
	Name             string
	NodeType         string
	Pincode          string
	Active           bool
	AcceptingOrders  bool
	DailyCapacity    int
	CurrentDayOrders int
	PerformanceScore float64
}
