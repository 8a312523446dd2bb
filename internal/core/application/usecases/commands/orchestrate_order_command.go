package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrchestrateOrderCommandIsNotConstructed = errors.New(
	"OrchestrateOrderCommand must be created via NewOrchestrateOrderCommand constructor",
)

// LineItemInput is one requested line of an orchestration command.
type LineItemInput struct {
	ProductID    kernel.UUID
	Quantity     int
	UnitPrice    decimal.Decimal
	UnitWeightKg decimal.Decimal
}

// OrchestrateOrderCommand represents a request to allocate one order to
// fulfillment nodes. It carries a fully validated allocation request,
// including any operator overrides.
//
// Example:
//
//	cmd, err := NewOrchestrateOrderCommand(orderID, "400001", "WEB",
//	    node.ChannelB2C, allocation.Prepaid, items, allocation.Overrides{})
//	if err != nil {
//	    return fmt.Errorf("invalid allocation request: %w", err)
//	}
//
//	decision, err := handler.Handle(ctx, cmd)
type OrchestrateOrderCommand struct { //nolint:recvcheck //using for validation
	request *allocation.Request

	guard guard.ConstructorGuard
}

// NewOrchestrateOrderCommand creates an orchestration command. Every input
// is validated here, once, so the handler works with a well-formed request.
func NewOrchestrateOrderCommand(
	orderID kernel.UUID,
	destination string,
	channelCode string,
	tradeChannel node.Channel,
	paymentMode allocation.PaymentMode,
	items []LineItemInput,
	overrides allocation.Overrides,
) (OrchestrateOrderCommand, error) {
	pincode, err := kernel.NewPincode(destination)
	if err != nil {
		return OrchestrateOrderCommand{}, err
	}

	lineItems := make([]allocation.LineItem, 0, len(items))
	for _, input := range items {
		item, err := allocation.NewLineItem(input.ProductID, input.Quantity,
			input.UnitPrice, input.UnitWeightKg)
		if err != nil {
			return OrchestrateOrderCommand{}, err
		}
		lineItems = append(lineItems, item)
	}

	request, err := allocation.NewRequest(orderID, pincode, channelCode,
		tradeChannel, paymentMode, lineItems)
	if err != nil {
		return OrchestrateOrderCommand{}, err
	}
	request.SetOverrides(overrides)

	return OrchestrateOrderCommand{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OrchestrateOrderCommand) Validate() error {
	return c.guard.Validate(ErrOrchestrateOrderCommandIsNotConstructed)
}

// Request returns the validated allocation request.
func (c OrchestrateOrderCommand) Request() *allocation.Request {
	return c.request
}
