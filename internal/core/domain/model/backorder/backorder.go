package backorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

// Domain errors for backorder operations.
var (
	// ErrBackorderIsNotConstructed is returned when using an improperly initialized Backorder.
	ErrBackorderIsNotConstructed = errors.New("Backorder must be created via NewBackorder constructor")
	// ErrBackorderAlreadyAllocated is returned when applying stock to a fully covered backorder.
	ErrBackorderAlreadyAllocated = errors.New("backorder is already fully allocated")
)

// Backorder captures demand that could not be met at orchestration time.
// It is fulfilled later, FIFO within its priority tier, as incoming stock
// arrives. The record is mutated only by the incoming-stock allocation
// routine and is never deleted.
type Backorder struct {
	// id uniquely identifies the backorder
	id kernel.UUID
	// orderID is the order whose shortfall this backorder captures
	orderID kernel.UUID
	// productID is the product the demand is for
	productID kernel.UUID
	// qtyRequested is the shortfall quantity captured at creation
	qtyRequested int
	// qtyAvailable is the quantity covered by incoming stock so far
	qtyAvailable int
	// qtyAllocated is the quantity locked in once the backorder is fully covered
	qtyAllocated int
	// priority orders backorders within the drain queue, lower drains first
	priority int
	// status tracks the lifecycle: PENDING -> PARTIALLY_AVAILABLE -> ALLOCATED
	status Status
	// createdAt breaks priority ties, earlier drains first
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewBackorder captures a shortfall of qtyRequested units of productID
// for orderID. The backorder starts PENDING with nothing covered.
func NewBackorder(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	qtyRequested int,
	priority int,
) (*Backorder, error) {
	backorder := &Backorder{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		backorder.setID(id),
		backorder.setOrderID(orderID),
		backorder.setProductID(productID),
		backorder.setQtyRequested(qtyRequested),
		backorder.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return backorder, nil
}

// RestoreBackorder reconstructs a Backorder from persistence without
// replaying business rules.
func RestoreBackorder(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	qtyRequested int,
	qtyAvailable int,
	qtyAllocated int,
	priority int,
	status Status,
	createdAt time.Time,
) (*Backorder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	backorder := &Backorder{
		id:           id,
		orderID:      orderID,
		productID:    productID,
		qtyRequested: qtyRequested,
		qtyAvailable: qtyAvailable,
		qtyAllocated: qtyAllocated,
		priority:     priority,
		status:       status,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := backorder.id.Validate(); err != nil {
		return nil, err
	}

	return backorder, nil
}

// Validate checks if the Backorder was properly constructed using the constructor.
func (b *Backorder) Validate() error {
	return b.guard.Validate(ErrBackorderIsNotConstructed)
}

// ID returns the backorder's unique identifier.
func (b *Backorder) ID() kernel.UUID {
	return b.id
}

// OrderID returns the order whose shortfall this backorder captures.
func (b *Backorder) OrderID() kernel.UUID {
	return b.orderID
}

// ProductID returns the product the demand is for.
func (b *Backorder) ProductID() kernel.UUID {
	return b.productID
}

// QtyRequested returns the shortfall quantity captured at creation.
func (b *Backorder) QtyRequested() int {
	return b.qtyRequested
}

// QtyAvailable returns the quantity covered by incoming stock so far.
func (b *Backorder) QtyAvailable() int {
	return b.qtyAvailable
}

// QtyAllocated returns the quantity locked in once fully covered.
func (b *Backorder) QtyAllocated() int {
	return b.qtyAllocated
}

// Priority returns the drain-queue priority, lower drains first.
func (b *Backorder) Priority() int {
	return b.priority
}

// Status returns the backorder's lifecycle status.
func (b *Backorder) Status() Status {
	return b.status
}

// CreatedAt returns the capture time, used as a FIFO tie-breaker.
func (b *Backorder) CreatedAt() time.Time {
	return b.createdAt
}

// RemainingNeed returns how many units are still uncovered.
func (b *Backorder) RemainingNeed() int {
	return b.qtyRequested - b.qtyAvailable
}

// ApplyIncoming consumes up to incomingQty units of newly received stock
// and returns how many units were actually consumed. The status moves to
// PARTIALLY_AVAILABLE on a partial cover and to ALLOCATED once the full
// requested quantity is covered.
func (b *Backorder) ApplyIncoming(incomingQty int) (int, error) {
	if incomingQty <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("incoming quantity",
			fmt.Errorf("%d is not greater than 0", incomingQty))
	}
	if !b.status.IsOpen() {
		return 0, ErrBackorderAlreadyAllocated
	}

	consumed := min(b.RemainingNeed(), incomingQty)
	b.qtyAvailable += consumed

	if b.qtyAvailable >= b.qtyRequested {
		b.qtyAllocated = b.qtyRequested
		b.status = Allocated
	} else {
		b.status = PartiallyAvailable
	}

	return consumed, nil
}

func (b *Backorder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Backorder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

func (b *Backorder) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	b.productID = productID
	return nil
}

func (b *Backorder) setQtyRequested(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requested quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	b.qtyRequested = qty
	return nil
}

func (b *Backorder) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is negative", priority))
	}
	b.priority = priority
	return nil
}
