package commands

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrAllocateIncomingStockCommandIsNotConstructed = errors.New(
	"AllocateIncomingStockCommand must be created via NewAllocateIncomingStockCommand constructor",
)

// AllocateIncomingStockCommand represents a stock receipt: qty units of a
// product arrived at a node and should first drain the product's backorder
// queue, with any leftover added to the node's shared pool.
type AllocateIncomingStockCommand struct { //nolint:recvcheck //using for validation
	nodeCode  string
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewAllocateIncomingStockCommand creates a stock receipt command.
func NewAllocateIncomingStockCommand(nodeCode string, productID kernel.UUID, qty int) (AllocateIncomingStockCommand, error) {
	cmd := AllocateIncomingStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNodeCode(nodeCode),
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return AllocateIncomingStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateIncomingStockCommand) Validate() error {
	return c.guard.Validate(ErrAllocateIncomingStockCommandIsNotConstructed)
}

// NodeCode returns the receiving node's code.
func (c AllocateIncomingStockCommand) NodeCode() string {
	return c.nodeCode
}

// ProductID returns the received product.
func (c AllocateIncomingStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the received unit count.
func (c AllocateIncomingStockCommand) Qty() int {
	return c.qty
}

func (c *AllocateIncomingStockCommand) setNodeCode(nodeCode string) error {
	if nodeCode == "" {
		return errs.NewValueIsRequiredError("node code")
	}
	c.nodeCode = nodeCode
	return nil
}

func (c *AllocateIncomingStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AllocateIncomingStockCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}
