package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrConvertAvailablePreordersCommandIsNotConstructed = errors.New(
	"ConvertAvailablePreordersCommand must be created via NewConvertAvailablePreordersCommand constructor",
)

// ConvertAvailablePreordersCommand represents a conversion sweep for one
// product: walk its preorder queue in position order and convert entries
// while pool stock covers them.
type ConvertAvailablePreordersCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConvertAvailablePreordersCommand creates a conversion sweep command.
func NewConvertAvailablePreordersCommand(productID kernel.UUID) (ConvertAvailablePreordersCommand, error) {
	if err := productID.Validate(); err != nil {
		return ConvertAvailablePreordersCommand{}, err
	}

	return ConvertAvailablePreordersCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConvertAvailablePreordersCommand) Validate() error {
	return c.guard.Validate(ErrConvertAvailablePreordersCommandIsNotConstructed)
}

// ProductID returns the product whose queue is swept.
func (c ConvertAvailablePreordersCommand) ProductID() kernel.UUID {
	return c.productID
}
