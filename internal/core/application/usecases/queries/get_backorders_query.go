package queries

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var (
	ErrGetBackordersQueryIsNotConstructed = errors.New(
		"GetBackordersQuery must be created via NewGetBackordersQuery constructor",
	)
)

// GetBackordersQuery retrieves backorders, optionally filtered by product
// and restricted to open ones (pending or partially available).
//
// Example:
//
//	query := NewGetBackordersQuery(&productID, true)
//	backorders, err := handler.Handle(ctx, query)
type GetBackordersQuery struct {
	productID *kernel.UUID
	openOnly  bool

	guard guard.ConstructorGuard
}

// NewGetBackordersQuery creates a backorder listing query.
// A nil productID lists backorders across all products.
func NewGetBackordersQuery(productID *kernel.UUID, openOnly bool) GetBackordersQuery {
	return GetBackordersQuery{
		productID: productID,
		openOnly:  openOnly,
		guard:     guard.NewConstructorGuard(),
	}
}

// ProductID returns the product filter, nil when listing all products.
func (q GetBackordersQuery) ProductID() *kernel.UUID {
	return q.productID
}

// OpenOnly reports whether closed backorders are excluded.
func (q GetBackordersQuery) OpenOnly() bool {
	return q.openOnly
}

// Validate ensures the query was created through the constructor.
func (q GetBackordersQuery) Validate() error {
	return q.guard.Validate(ErrGetBackordersQueryIsNotConstructed)
}

// GetBackordersQueryResponse represents one backorder in the read model.
type GetBackordersQueryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	ProductID         kernel.UUID
	QuantityRequested int
	QuantityAvailable int
	QuantityAllocated int
	Priority          int
	Status            string
	CreatedAt         time.Time
}
