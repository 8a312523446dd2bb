package queries

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var (
	ErrGetOrchestrationLogsQueryIsNotConstructed = errors.New(
		"GetOrchestrationLogsQuery must be created via NewGetOrchestrationLogsQuery constructor",
	)
	ErrLogsLimitIsNotValid = errors.New("limit must be positive")
)

// maxLogsPageSize caps a single log listing.
const maxLogsPageSize = 500

// GetOrchestrationLogsQuery retrieves decision log entries, newest first,
// optionally filtered by order.
//
// Example:
//
//	query, err := NewGetOrchestrationLogsQuery(&orderID, 50)
//	if err != nil {
//	    return err
//	}
//	logs, err := handler.Handle(ctx, query)
type GetOrchestrationLogsQuery struct {
	orderID *kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetOrchestrationLogsQuery creates a decision log listing query.
// A nil orderID lists entries across all orders. Limits above the page cap
// are clamped.
func NewGetOrchestrationLogsQuery(orderID *kernel.UUID, limit int) (GetOrchestrationLogsQuery, error) {
	if limit <= 0 {
		return GetOrchestrationLogsQuery{}, ErrLogsLimitIsNotValid
	}
	if limit > maxLogsPageSize {
		limit = maxLogsPageSize
	}

	return GetOrchestrationLogsQuery{
		orderID: orderID,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order filter, nil when listing all orders.
func (q GetOrchestrationLogsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// Limit returns the maximum number of entries to return.
func (q GetOrchestrationLogsQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q GetOrchestrationLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrchestrationLogsQueryIsNotConstructed)
}

// GetOrchestrationLogsQueryResponse represents one decision log entry.
// The structured trace parts are passed through as raw JSON documents.
type GetOrchestrationLogsQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Status        string
	AppliedRule   string
	Strategy      string
	Assignments   json.RawMessage
	Shortfalls    json.RawMessage
	Candidates    json.RawMessage
	Warnings      json.RawMessage
	FailureReason string
	LatencyMicros int64
	DryRun        bool
	CreatedAt     time.Time
}
