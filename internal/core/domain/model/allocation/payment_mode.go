package allocation

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// PaymentMode is how the customer pays for the order.
// Cash-on-delivery restricts which lanes and carriers may be used.
type PaymentMode int

const (
	// UnknownPaymentMode represents an invalid or undefined payment mode.
	// This value (0) helps catch uninitialized PaymentMode values.
	UnknownPaymentMode PaymentMode = iota

	// Prepaid means the order was paid online before allocation.
	Prepaid

	// COD means cash is collected on delivery.
	COD
)

// getPaymentModeStrings returns a map of PaymentMode values to their string representations.
func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		UnknownPaymentMode: "UNKNOWN",
		Prepaid:            "PREPAID",
		COD:                "COD",
	}
}

// getValidPaymentModeStrings returns a map of only valid PaymentMode values.
func getValidPaymentModeStrings() map[PaymentMode]string {
	//nolint:exhaustive // UnknownPaymentMode is intentionally excluded as it's invalid
	return map[PaymentMode]string{
		Prepaid: "PREPAID",
		COD:     "COD",
	}
}

// Validate checks if the PaymentMode value is valid.
func (m PaymentMode) Validate() error {
	if _, ok := getValidPaymentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment mode",
			fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the configuration name of the payment mode.
// This method implements the fmt.Stringer interface.
func (m PaymentMode) String() string {
	if str, ok := getPaymentModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentModeFromString parses a configuration name into a PaymentMode.
func PaymentModeFromString(value string) (PaymentMode, error) {
	for mode, str := range getValidPaymentModeStrings() {
		if str == value {
			return mode, nil
		}
	}
	return UnknownPaymentMode, errs.NewValueIsInvalidErrorWithCause("payment mode",
		fmt.Errorf("%q is not a valid payment mode", value))
}
