package allocation

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// Status is the terminal outcome of an orchestration decision.
//
// A decision ends in exactly one of:
//
//	Routed      a single node covers the whole order
//	Split       several nodes cover the order together
//	Backordered the shortfall was captured for later fulfillment
//	Failed      the order could not be allocated under the applied rule
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Routed means a single node fulfills the entire order.
	Routed

	// Split means the order is partitioned across multiple nodes.
	Split

	// Backordered means unmet demand was captured as a backorder.
	Backordered

	// Failed means the order could not be allocated.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Routed:        "ROUTED",
		Split:         "SPLIT",
		Backordered:   "BACKORDER",
		Failed:        "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Routed:      "ROUTED",
		Split:       "SPLIT",
		Backordered: "BACKORDER",
		Failed:      "FAILED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("decision status",
			fmt.Errorf("%d is not a valid decision status", s))
	}
	return nil
}

// String returns the wire name of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("decision status",
		fmt.Errorf("%q is not a valid decision status", value))
}
