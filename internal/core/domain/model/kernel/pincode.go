package kernel

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

// pincodeLength is the number of digits in a valid postal pincode.
const pincodeLength = 6

// ErrPincodeIsNotConstructed is returned when attempting to use an improperly initialized Pincode.
// Pincodes must be created using the NewPincode constructor to ensure validity.
var ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode must be created via NewPincode constructor")

// Pincode represents a six-digit destination postal code.
// Pincode is an immutable value object; the zero value is invalid and fails
// validation. Rule predicates match pincodes against exact values, prefix
// wildcards and inclusive ranges, and serviceability lookups are keyed by them.
//
// Example:
//
//	pin, err := kernel.NewPincode("400001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pin) // Output: 400001
type Pincode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPincode creates a Pincode from its string form.
// The value must consist of exactly six ASCII digits and must not start with zero.
//
// Returns:
//   - Pincode: A valid pincode instance
//   - error: Validation error if the value is malformed
func NewPincode(value string) (Pincode, error) {
	pincode := Pincode{
		guard: guard.NewConstructorGuard(),
	}

	if err := pincode.setValue(value); err != nil {
		return Pincode{}, err
	}

	return pincode, nil
}

// Validate checks if the Pincode was properly constructed using the constructor.
// The zero value of Pincode is invalid and will fail this validation.
func (p Pincode) Validate() error {
	return p.guard.Validate(ErrPincodeIsNotConstructed)
}

// String returns the six-digit string form of the pincode.
// This method implements the fmt.Stringer interface.
func (p Pincode) String() string {
	return p.value
}

// IsEqual compares two pincodes for equality.
// Both pincodes must be properly constructed for the comparison to succeed.
func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

// setValue validates and sets the pincode string.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (p *Pincode) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("pincode")
	}

	if len(value) != pincodeLength {
		return errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q is not %d characters long", value, pincodeLength))
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	if value[0] == '0' {
		return errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q starts with zero", value))
	}

	p.value = value
	return nil
}
