// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var (
	ErrCheckATPQueryIsNotConstructed = errors.New(
		"CheckATPQuery must be created via NewCheckATPQuery constructor",
	)
	ErrATPItemsAreRequired    = errors.New("at least one item is required")
	ErrATPQuantityIsNotValid  = errors.New("item quantity must be positive")
	ErrATPProductIDIsNotValid = errors.New("item product id is not valid")
)

// ATPItem names one product line to check availability for.
type ATPItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CheckATPQuery computes available-to-promise quantities for a set of items
// against the nodes serving a destination pincode. A non-empty channel
// restricts channel-aware records to that sales channel; shared-pool records
// always count.
//
// Example:
//
//	query, err := NewCheckATPQuery(
//	    []ATPItem{{ProductID: productID, Quantity: 3}},
//	    destination,
//	    "WEB",
//	)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
type CheckATPQuery struct {
	items       []ATPItem
	destination kernel.Pincode
	channel     string

	guard guard.ConstructorGuard
}

// NewCheckATPQuery creates a validated availability query.
// Every item needs a valid product id and a positive quantity.
func NewCheckATPQuery(items []ATPItem, destination kernel.Pincode, channel string) (CheckATPQuery, error) {
	if len(items) == 0 {
		return CheckATPQuery{}, ErrATPItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return CheckATPQuery{}, ErrATPProductIDIsNotValid
		}
		if item.Quantity <= 0 {
			return CheckATPQuery{}, ErrATPQuantityIsNotValid
		}
	}
	if err := destination.Validate(); err != nil {
		return CheckATPQuery{}, err
	}

	return CheckATPQuery{
		items:       items,
		destination: destination,
		channel:     channel,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Items returns the product lines to check.
func (q CheckATPQuery) Items() []ATPItem {
	return q.items
}

// Destination returns the delivery pincode.
func (q CheckATPQuery) Destination() kernel.Pincode {
	return q.destination
}

// Channel returns the sales channel filter, empty for shared pool only.
func (q CheckATPQuery) Channel() string {
	return q.channel
}

// Validate ensures the query was created through the constructor.
func (q CheckATPQuery) Validate() error {
	return q.guard.Validate(ErrCheckATPQueryIsNotConstructed)
}

// NodeATPResponse is the per-node availability of one product.
type NodeATPResponse struct {
	NodeCode  string
	Available int
}

// ItemATPResponse is the availability read model for one requested item.
// RecommendedNode is the highest-ranked serving node able to cover the
// full quantity, or empty when no single node can.
type ItemATPResponse struct {
	ProductID       kernel.UUID
	Requested       int
	TotalAvailable  int
	Fulfillable     bool
	RecommendedNode string
	Nodes           []NodeATPResponse
}
