package queries

import (
	"context"

	"gorm.io/gorm"
)

// CheckATPQueryHandler answers availability questions directly against the
// database. It reads the same stock records the allocation path consumes but
// never mutates them, so it is safe to call at any request rate.
//
// Channel-aware records are authoritative for their channel: availability is
// allocated minus buffer minus reserved. Shared-pool records contribute
// available minus reserved.
type CheckATPQueryHandler struct {
	db *gorm.DB
}

// NewCheckATPQueryHandler creates a handler for availability queries.
// Requires a GORM database connection for query execution.
func NewCheckATPQueryHandler(db *gorm.DB) CheckATPQueryHandler {
	return CheckATPQueryHandler{db: db}
}

// Handle computes per-item, per-node availability across the nodes serving
// the destination. Nodes come back in coverage priority order; the first one
// able to cover the full requested quantity becomes the recommendation.
func (h CheckATPQueryHandler) Handle(
	ctx context.Context,
	query CheckATPQuery,
) ([]ItemATPResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]ItemATPResponse, 0, len(query.Items()))

	for _, item := range query.Items() {
		nodes, err := h.nodeAvailability(ctx, query, item)
		if err != nil {
			return nil, err
		}

		response := ItemATPResponse{
			ProductID: item.ProductID,
			Requested: item.Quantity,
			Nodes:     nodes,
		}
		for _, node := range nodes {
			response.TotalAvailable += node.Available
			if response.RecommendedNode == "" && node.Available >= item.Quantity {
				response.RecommendedNode = node.NodeCode
			}
		}
		response.Fulfillable = response.TotalAvailable >= item.Quantity

		responses = append(responses, response)
	}

	return responses, nil
}

func (h CheckATPQueryHandler) nodeAvailability(
	ctx context.Context,
	query CheckATPQuery,
	item ATPItem,
) ([]NodeATPResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.node_code,
			COALESCE(SUM(
				CASE
					WHEN s.channel = '' THEN GREATEST(s.available - s.reserved, 0)
					ELSE GREATEST(s.allocated - s.buffer - s.reserved, 0)
				END
			), 0)
		FROM stock_records s
		JOIN node_coverage c ON c.node_code = s.node_code
		JOIN nodes n ON n.code = s.node_code
		WHERE c.pincode = ?
		  AND s.product_id = ?
		  AND (s.channel = '' OR s.channel = ?)
		  AND n.active
		  AND n.accepting_orders
		GROUP BY s.node_code, c.priority_rank
		ORDER BY c.priority_rank, s.node_code
	`, query.Destination().String(), item.ProductID.Bytes(), query.Channel()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nodes := make([]NodeATPResponse, 0)
	for rows.Next() {
		var node NodeATPResponse
		if err = rows.Scan(&node.NodeCode, &node.Available); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return nodes, nil
}
