package backorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

// ErrPreorderIsNotConstructed is returned when using an improperly initialized Preorder.
var ErrPreorderIsNotConstructed = errors.New("Preorder must be created via NewPreorder constructor")

// PreorderStatus represents the one-way preorder lifecycle: ACTIVE -> CONVERTED.
type PreorderStatus int

const (
	// UnknownPreorderStatus represents an invalid or undefined status.
	UnknownPreorderStatus PreorderStatus = iota

	// PreorderActive means the preorder is waiting for the product to become available.
	PreorderActive

	// PreorderConverted means the preorder has been turned into a regular order.
	PreorderConverted
)

// getValidPreorderStatusStrings returns a map of only valid PreorderStatus values.
func getValidPreorderStatusStrings() map[PreorderStatus]string {
	return map[PreorderStatus]string{
		PreorderActive:    "ACTIVE",
		PreorderConverted: "CONVERTED",
	}
}

// Validate checks if the PreorderStatus value is valid.
func (s PreorderStatus) Validate() error {
	if _, ok := getValidPreorderStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("preorder status",
			fmt.Errorf("%d is not a valid preorder status", s))
	}
	return nil
}

// String returns the persistence name of the status.
func (s PreorderStatus) String() string {
	if str, ok := getValidPreorderStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// PreorderStatusFromString parses a persistence name into a PreorderStatus.
func PreorderStatusFromString(value string) (PreorderStatus, error) {
	for status, str := range getValidPreorderStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return UnknownPreorderStatus, errs.NewValueIsInvalidErrorWithCause("preorder status",
		fmt.Errorf("%q is not a valid preorder status", value))
}

// Preorder is queued demand for a product that is not yet sellable.
// Each preorder holds a queue position that is monotonically increasing
// per product; conversions run in position order when stock lands.
type Preorder struct {
	// id uniquely identifies the preorder
	id kernel.UUID
	// customerID is the customer waiting for the product
	customerID kernel.UUID
	// productID is the product being waited for
	productID kernel.UUID
	// quantity is the number of units reserved in the queue
	quantity int
	// position is the per-product queue position, assigned at creation
	position int
	// status is the one-way lifecycle: ACTIVE -> CONVERTED
	status PreorderStatus
	// convertedAt is set exactly once, on the first successful Convert
	convertedAt *time.Time
	// createdAt is the queue-entry time
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPreorder places quantity units of productID in the product's preorder
// queue at the given position. Positions are assigned by the caller and
// must be monotonically increasing per product.
func NewPreorder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	position int,
) (*Preorder, error) {
	preorder := &Preorder{
		status:    PreorderActive,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		preorder.setID(id),
		preorder.setCustomerID(customerID),
		preorder.setProductID(productID),
		preorder.setQuantity(quantity),
		preorder.setPosition(position),
	); err != nil {
		return nil, err
	}

	return preorder, nil
}

// RestorePreorder reconstructs a Preorder from persistence without
// replaying business rules.
func RestorePreorder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	position int,
	status PreorderStatus,
	convertedAt *time.Time,
	createdAt time.Time,
) (*Preorder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	preorder := &Preorder{
		id:          id,
		customerID:  customerID,
		productID:   productID,
		quantity:    quantity,
		position:    position,
		status:      status,
		convertedAt: convertedAt,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := preorder.id.Validate(); err != nil {
		return nil, err
	}

	return preorder, nil
}

// Validate checks if the Preorder was properly constructed using the constructor.
func (p *Preorder) Validate() error {
	return p.guard.Validate(ErrPreorderIsNotConstructed)
}

// ID returns the preorder's unique identifier.
func (p *Preorder) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the waiting customer.
func (p *Preorder) CustomerID() kernel.UUID {
	return p.customerID
}

// ProductID returns the product being waited for.
func (p *Preorder) ProductID() kernel.UUID {
	return p.productID
}

// Quantity returns the queued unit count.
func (p *Preorder) Quantity() int {
	return p.quantity
}

// Position returns the per-product queue position.
func (p *Preorder) Position() int {
	return p.position
}

// Status returns the preorder's lifecycle status.
func (p *Preorder) Status() PreorderStatus {
	return p.status
}

// ConvertedAt returns when the preorder was converted, or nil while active.
func (p *Preorder) ConvertedAt() *time.Time {
	return p.convertedAt
}

// CreatedAt returns the queue-entry time.
func (p *Preorder) CreatedAt() time.Time {
	return p.createdAt
}

// IsActive reports whether the preorder is still waiting for stock.
func (p *Preorder) IsActive() bool {
	return p.status == PreorderActive
}

// Convert marks the preorder as turned into a regular order. The transition
// is one-way and idempotent: converting an already-converted preorder is a
// no-op, not an error.
func (p *Preorder) Convert() {
	if p.status == PreorderConverted {
		return
	}
	now := time.Now().UTC()
	p.status = PreorderConverted
	p.convertedAt = &now
}

func (p *Preorder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Preorder) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Preorder) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	p.productID = productID
	return nil
}

func (p *Preorder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Preorder) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("position",
			fmt.Errorf("%d is not greater than 0", position))
	}
	p.position = position
	return nil
}
