package commands

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrCreatePreorderCommandIsNotConstructed = errors.New(
	"CreatePreorderCommand must be created via NewCreatePreorderCommand constructor",
)

// CreatePreorderCommand represents a customer joining a product's preorder
// queue before the product becomes sellable.
type CreatePreorderCommand struct { //nolint:recvcheck //using for validation
	preorderID kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID
	qty        int

	guard guard.ConstructorGuard
}

// NewCreatePreorderCommand creates a preorder command. The queue position
// is assigned by the handler, not the caller.
func NewCreatePreorderCommand(
	preorderID kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	qty int,
) (CreatePreorderCommand, error) {
	cmd := CreatePreorderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPreorderID(preorderID),
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return CreatePreorderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePreorderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePreorderCommandIsNotConstructed)
}

// PreorderID returns the identifier for the new preorder.
func (c CreatePreorderCommand) PreorderID() kernel.UUID {
	return c.preorderID
}

// CustomerID returns the queueing customer.
func (c CreatePreorderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the product being waited for.
func (c CreatePreorderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the queued unit count.
func (c CreatePreorderCommand) Qty() int {
	return c.qty
}

func (c *CreatePreorderCommand) setPreorderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.preorderID = id
	return nil
}

func (c *CreatePreorderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreatePreorderCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *CreatePreorderCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}
