package node

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// Type represents the kind of physical location a fulfillment node is.
// The type does not change node behavior inside the engine; it is carried for
// operations reporting and for serviceability configuration.
type Type int

const (
	// UnknownType represents an invalid or undefined node type.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Warehouse is a dedicated fulfillment center.
	Warehouse

	// Store is a retail store that also ships orders.
	Store

	// Dealer is a partner dealership location.
	Dealer

	// ThreePL is a third-party logistics site.
	ThreePL
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Warehouse:   "Warehouse",
		Store:       "Store",
		Dealer:      "Dealer",
		ThreePL:     "ThreePL",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Warehouse: "Warehouse",
		Store:     "Store",
		Dealer:    "Dealer",
		ThreePL:   "ThreePL",
	}
}

// Validate checks if the Type value is valid.
// Valid types are: Warehouse, Store, Dealer, ThreePL.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("node type",
			fmt.Errorf("%d is not a valid node type", t))
	}
	return nil
}

// String returns the human-readable name of the node type.
// This method implements the fmt.Stringer interface and is safe to call
// on any Type value, including invalid ones.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses a node type from its string representation.
// Returns an error for unknown values.
func TypeFromString(value string) (Type, error) {
	for nodeType, str := range getValidTypeStrings() {
		if str == value {
			return nodeType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("node type",
		fmt.Errorf("%q is not a valid node type", value))
}
