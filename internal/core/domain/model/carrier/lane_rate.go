package carrier

import (
	"errors"
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLaneRateIsNotConstructed is returned when using an improperly initialized LaneRate.
var ErrLaneRateIsNotConstructed = errors.New("LaneRate must be created via NewLaneRate constructor")

// LaneRate is one row of the legacy static lane table: a flat carrier rate
// for an origin-destination pincode pair. The table is the total fallback
// when the rate-quote provider is unavailable or returns nothing.
type LaneRate struct { //nolint:recvcheck //using for validation
	origin       kernel.Pincode
	destination  kernel.Pincode
	carrierCode  string
	carrierName  string
	rate         decimal.Decimal
	codAvailable bool
	transitDays  int
	guard        guard.ConstructorGuard
}

// NewLaneRate creates a legacy lane table entry.
func NewLaneRate(
	origin kernel.Pincode,
	destination kernel.Pincode,
	carrierCode string,
	carrierName string,
	rate decimal.Decimal,
	codAvailable bool,
	transitDays int,
) (LaneRate, error) {
	lane := LaneRate{
		codAvailable: codAvailable,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lane.setOrigin(origin),
		lane.setDestination(destination),
		lane.setCarrier(carrierCode, carrierName),
		lane.setRate(rate),
		lane.setTransitDays(transitDays),
	); err != nil {
		return LaneRate{}, err
	}

	return lane, nil
}

// Validate checks if the LaneRate was properly constructed using the constructor.
func (l LaneRate) Validate() error {
	return l.guard.Validate(ErrLaneRateIsNotConstructed)
}

// Origin returns the lane's origin pincode.
func (l LaneRate) Origin() kernel.Pincode {
	return l.origin
}

// Destination returns the lane's destination pincode.
func (l LaneRate) Destination() kernel.Pincode {
	return l.destination
}

// CarrierCode returns the carrier's short code.
func (l LaneRate) CarrierCode() string {
	return l.carrierCode
}

// CarrierName returns the carrier's display name.
func (l LaneRate) CarrierName() string {
	return l.carrierName
}

// Rate returns the flat shipping rate for the lane.
func (l LaneRate) Rate() decimal.Decimal {
	return l.rate
}

// CODAvailable reports whether the carrier collects cash on delivery on this lane.
func (l LaneRate) CODAvailable() bool {
	return l.codAvailable
}

// TransitDays returns the fixed transit estimate for the lane.
func (l LaneRate) TransitDays() int {
	return l.transitDays
}

func (l *LaneRate) setOrigin(origin kernel.Pincode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	l.origin = origin
	return nil
}

func (l *LaneRate) setDestination(destination kernel.Pincode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	l.destination = destination
	return nil
}

func (l *LaneRate) setCarrier(code, name string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("carrier code")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}
	l.carrierCode = code
	l.carrierName = name
	return nil
}

func (l *LaneRate) setRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%s is negative", rate))
	}
	l.rate = rate
	return nil
}

func (l *LaneRate) setTransitDays(days int) error {
	if days < 1 {
		return errs.NewValueIsInvalidErrorWithCause("transit days",
			fmt.Errorf("%d is not greater than 0", days))
	}
	l.transitDays = days
	return nil
}
