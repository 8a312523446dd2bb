package node

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

// ErrCoverageIsNotConstructed is returned when using an improperly initialized Coverage.
var ErrCoverageIsNotConstructed = errors.New("Coverage must be created via NewCoverage constructor")

// Coverage is one row of the serviceability table: the terms under which a
// node services a destination pincode. It is an immutable value object owned
// by operations configuration and read by the engine to enumerate candidate
// nodes for a destination.
//
// The priority rank is a static preference order (1 = most preferred) used by
// the scorer as a proximity proxy when geographic coordinates are missing.
type Coverage struct { //nolint:recvcheck //using for validation
	pincode        kernel.Pincode
	codAllowed     bool
	prepaidAllowed bool
	priorityRank   int
	transitDays    int
	shippingCost   float64
	guard          guard.ConstructorGuard
}

// NewCoverage creates a serviceability entry for a destination pincode.
//
// Parameters:
//   - pincode: Destination postal code covered
//   - codAllowed: Whether cash-on-delivery is supported on this lane
//   - prepaidAllowed: Whether prepaid orders are supported on this lane
//   - priorityRank: Static preference order, 1 = most preferred (must be >= 1)
//   - transitDays: Estimated delivery days (must be >= 1)
//   - shippingCost: Configured shipping cost for the lane (must not be negative)
func NewCoverage(
	pincode kernel.Pincode,
	codAllowed bool,
	prepaidAllowed bool,
	priorityRank int,
	transitDays int,
	shippingCost float64,
) (Coverage, error) {
	coverage := Coverage{
		codAllowed:     codAllowed,
		prepaidAllowed: prepaidAllowed,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coverage.setPincode(pincode),
		coverage.setPriorityRank(priorityRank),
		coverage.setTransitDays(transitDays),
		coverage.setShippingCost(shippingCost),
	); err != nil {
		return Coverage{}, err
	}

	return coverage, nil
}

// Validate checks if the Coverage was properly constructed using the constructor.
func (c Coverage) Validate() error {
	return c.guard.Validate(ErrCoverageIsNotConstructed)
}

// Pincode returns the covered destination postal code.
func (c Coverage) Pincode() kernel.Pincode {
	return c.pincode
}

// CODAllowed reports whether cash-on-delivery is supported on this lane.
func (c Coverage) CODAllowed() bool {
	return c.codAllowed
}

// PrepaidAllowed reports whether prepaid orders are supported on this lane.
func (c Coverage) PrepaidAllowed() bool {
	return c.prepaidAllowed
}

// PriorityRank returns the static preference order (1 = most preferred).
func (c Coverage) PriorityRank() int {
	return c.priorityRank
}

// TransitDays returns the estimated delivery days for the lane.
func (c Coverage) TransitDays() int {
	return c.transitDays
}

// ShippingCost returns the configured shipping cost for the lane.
func (c Coverage) ShippingCost() float64 {
	return c.shippingCost
}

func (c *Coverage) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	c.pincode = pincode
	return nil
}

func (c *Coverage) setPriorityRank(rank int) error {
	if rank < 1 {
		return errs.NewValueIsInvalidErrorWithCause("priority rank",
			fmt.Errorf("%d is not greater than 0", rank))
	}
	c.priorityRank = rank
	return nil
}

func (c *Coverage) setTransitDays(days int) error {
	if days < 1 {
		return errs.NewValueIsInvalidErrorWithCause("transit days",
			fmt.Errorf("%d is not greater than 0", days))
	}
	c.transitDays = days
	return nil
}

func (c *Coverage) setShippingCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipping cost",
			fmt.Errorf("%f is negative", cost))
	}
	c.shippingCost = cost
	return nil
}
