package queries

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBackordersQueryHandler retrieves backorder read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetBackordersQueryHandler struct {
	db *gorm.DB
}

// NewGetBackordersQueryHandler creates a handler for backorder listing queries.
// Requires a GORM database connection for query execution.
func NewGetBackordersQueryHandler(db *gorm.DB) GetBackordersQueryHandler {
	return GetBackordersQueryHandler{db: db}
}

// Handle executes the query and returns backorders in drain order:
// priority ascending, then creation time.
func (h GetBackordersQueryHandler) Handle(
	ctx context.Context,
	query GetBackordersQuery,
) ([]GetBackordersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			product_id,
			qty_requested,
			qty_available,
			qty_allocated,
			priority,
			status,
			created_at
		FROM backorders
		WHERE 1 = 1
	`
	args := make([]interface{}, 0, 3)

	if query.ProductID() != nil {
		sql += " AND product_id = ?"
		args = append(args, query.ProductID().Bytes())
	}
	if query.OpenOnly() {
		sql += " AND status IN (?, ?)"
		args = append(args, int(backorder.Pending), int(backorder.PartiallyAvailable))
	}
	sql += " ORDER BY priority, created_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backorders := make([]GetBackordersQueryResponse, 0)

	for rows.Next() {
		var response GetBackordersQueryResponse
		var id, orderID, productID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&response.QuantityRequested,
			&response.QuantityAvailable,
			&response.QuantityAllocated,
			&response.Priority,
			&status,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if response.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		response.Status = backorder.Status(status).String()

		backorders = append(backorders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backorders, nil
}
