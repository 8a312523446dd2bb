package backorder

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// Status represents the lifecycle of a backorder.
// Backorders are never deleted, only status-transitioned:
// PENDING -> PARTIALLY_AVAILABLE -> ALLOCATED.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending means no incoming stock has been applied yet.
	Pending

	// PartiallyAvailable means some but not all of the requested
	// quantity has been covered by incoming stock.
	PartiallyAvailable

	// Allocated means the full requested quantity has been covered.
	Allocated
)

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:            "PENDING",
		PartiallyAvailable: "PARTIALLY_AVAILABLE",
		Allocated:          "ALLOCATED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("backorder status",
			fmt.Errorf("%d is not a valid backorder status", s))
	}
	return nil
}

// String returns the persistence name of the status.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a persistence name into a Status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("backorder status",
		fmt.Errorf("%q is not a valid backorder status", value))
}

// IsOpen reports whether the backorder still needs incoming stock.
func (s Status) IsOpen() bool {
	return s == Pending || s == PartiallyAvailable
}
