package queries

import (
	"context"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrchestrationLogsQueryHandler retrieves decision log entries from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrchestrationLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrchestrationLogsQueryHandler creates a handler for decision log queries.
// Requires a GORM database connection for query execution.
func NewGetOrchestrationLogsQueryHandler(db *gorm.DB) GetOrchestrationLogsQueryHandler {
	return GetOrchestrationLogsQueryHandler{db: db}
}

// Handle executes the query and returns decision log entries newest first.
func (h GetOrchestrationLogsQueryHandler) Handle(
	ctx context.Context,
	query GetOrchestrationLogsQuery,
) ([]GetOrchestrationLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			status,
			applied_rule,
			strategy,
			assignments,
			shortfalls,
			candidates,
			warnings,
			failure_reason,
			latency_micros,
			dry_run,
			created_at
		FROM orchestration_decisions
	`
	args := make([]interface{}, 0, 2)

	if query.OrderID() != nil {
		sql += " WHERE order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	sql += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]GetOrchestrationLogsQueryResponse, 0)

	for rows.Next() {
		var response GetOrchestrationLogsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&response.Status,
			&response.AppliedRule,
			&response.Strategy,
			&response.Assignments,
			&response.Shortfalls,
			&response.Candidates,
			&response.Warnings,
			&response.FailureReason,
			&response.LatencyMicros,
			&response.DryRun,
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

		logs = append(logs, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
