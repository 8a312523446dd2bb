package commands

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrCreateBackorderCommandIsNotConstructed = errors.New(
	"CreateBackorderCommand must be created via NewCreateBackorderCommand constructor",
)

// CreateBackorderCommand represents an explicit request to capture demand
// for later fulfillment, outside the orchestration pipeline.
type CreateBackorderCommand struct { //nolint:recvcheck //using for validation
	backorderID kernel.UUID
	orderID     kernel.UUID
	productID   kernel.UUID
	qty         int
	priority    int

	guard guard.ConstructorGuard
}

// NewCreateBackorderCommand creates a backorder capture command.
func NewCreateBackorderCommand(
	backorderID kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	qty int,
	priority int,
) (CreateBackorderCommand, error) {
	cmd := CreateBackorderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBackorderID(backorderID),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQty(qty),
		cmd.setPriority(priority),
	); err != nil {
		return CreateBackorderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBackorderCommand) Validate() error {
	return c.guard.Validate(ErrCreateBackorderCommandIsNotConstructed)
}

// BackorderID returns the identifier for the new backorder.
func (c CreateBackorderCommand) BackorderID() kernel.UUID {
	return c.backorderID
}

// OrderID returns the order whose demand is being captured.
func (c CreateBackorderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product the demand is for.
func (c CreateBackorderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the captured quantity.
func (c CreateBackorderCommand) Qty() int {
	return c.qty
}

// Priority returns the drain-queue priority, lower drains first.
func (c CreateBackorderCommand) Priority() int {
	return c.priority
}

func (c *CreateBackorderCommand) setBackorderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.backorderID = id
	return nil
}

func (c *CreateBackorderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateBackorderCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *CreateBackorderCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *CreateBackorderCommand) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is negative", priority))
	}
	c.priority = priority
	return nil
}
