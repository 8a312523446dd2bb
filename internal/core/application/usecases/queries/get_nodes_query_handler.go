package queries

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNodesQueryHandler retrieves all fulfillment nodes from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetNodesQueryHandler struct {
	db *gorm.DB
}

// NewGetNodesQueryHandler creates a handler for node listing queries.
// Requires a GORM database connection for query execution.
func NewGetNodesQueryHandler(db *gorm.DB) GetNodesQueryHandler {
	return GetNodesQueryHandler{db: db}
}

// Handle executes the query to retrieve all nodes.
// Returns a slice of node read models sorted by code.
func (h GetNodesQueryHandler) Handle(
	ctx context.Context,
	query GetNodesQuery,
) ([]GetNodesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]GetNodesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			node_type,
			pincode,
			active,
			accepting_orders,
			daily_capacity,
			current_day_orders,
			performance_score
		FROM nodes
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetNodesQueryResponse
		var id uuid.UUID
		var nodeType int

		err = rows.Scan(
			&id,
			&response.Code,
			&response.Name,
			&nodeType,
			&response.Pincode,
			&response.Active,
			&response.AcceptingOrders,
			&response.DailyCapacity,
			&response.CurrentDayOrders,
			&response.PerformanceScore,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		response.NodeType = node.Type(nodeType).String()

		nodes = append(nodes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return nodes, nil
}
