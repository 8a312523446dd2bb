package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

var ErrHoldReservationCommandIsNotConstructed = errors.New(
	"HoldReservationCommand must be created via NewHoldReservationCommand constructor",
)

// HoldReservationCommand represents a checkout-time soft hold on stock,
// placed before the order is confirmed. The hold expires on its own; it is
// never durable.
type HoldReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	nodeCode      string
	productID     kernel.UUID
	channel       string
	qty           int
	ttl           time.Duration

	guard guard.ConstructorGuard
}

// NewHoldReservationCommand creates a soft reservation command. Channel may
// be empty for a pool-level hold; a zero TTL falls back to the store's
// default at the adapter level, so it must be positive here.
func NewHoldReservationCommand(
	reservationID kernel.UUID,
	nodeCode string,
	productID kernel.UUID,
	channel string,
	qty int,
	ttl time.Duration,
) (HoldReservationCommand, error) {
	cmd := HoldReservationCommand{
		channel: channel,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setNodeCode(nodeCode),
		cmd.setProductID(productID),
		cmd.setQty(qty),
		cmd.setTTL(ttl),
	); err != nil {
		return HoldReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldReservationCommand) Validate() error {
	return c.guard.Validate(ErrHoldReservationCommandIsNotConstructed)
}

// ReservationID returns the hold's identifier, used to release or refresh it.
func (c HoldReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// NodeCode returns the node holding the stock.
func (c HoldReservationCommand) NodeCode() string {
	return c.nodeCode
}

// ProductID returns the held product.
func (c HoldReservationCommand) ProductID() kernel.UUID {
	return c.productID
}

// Channel returns the sales channel scope, empty for a pool-level hold.
func (c HoldReservationCommand) Channel() string {
	return c.channel
}

// Qty returns the held unit count.
func (c HoldReservationCommand) Qty() int {
	return c.qty
}

// TTL returns how long the hold lives.
func (c HoldReservationCommand) TTL() time.Duration {
	return c.ttl
}

func (c *HoldReservationCommand) setReservationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.reservationID = id
	return nil
}

func (c *HoldReservationCommand) setNodeCode(nodeCode string) error {
	if nodeCode == "" {
		return errs.NewValueIsRequiredError("node code")
	}
	c.nodeCode = nodeCode
	return nil
}

func (c *HoldReservationCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *HoldReservationCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *HoldReservationCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not greater than 0", ttl))
	}
	c.ttl = ttl
	return nil
}

// HoldReservationCommandHandler places soft reservations in the ephemeral
// store. No transaction is involved; the store is not authoritative stock.
type HoldReservationCommandHandler struct {
	store ports.SoftReservationStore
}

// NewHoldReservationCommandHandler creates a handler for soft reservations.
func NewHoldReservationCommandHandler(store ports.SoftReservationStore) HoldReservationCommandHandler {
	return HoldReservationCommandHandler{store: store}
}

// Handle places or refreshes the hold.
func (h *HoldReservationCommandHandler) Handle(ctx context.Context, cmd HoldReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.Hold(ctx, cmd.ReservationID(), cmd.NodeCode(),
		cmd.ProductID(), cmd.Channel(), cmd.Qty(), cmd.TTL())
}

// ReleaseReservation drops a hold before it expires, typically when checkout
// is abandoned. Releasing an unknown hold is a no-op.
func (h *HoldReservationCommandHandler) ReleaseReservation(ctx context.Context, reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}
	return h.store.Release(ctx, reservationID)
}
