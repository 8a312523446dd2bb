package rule

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// Strategy determines how a routing rule picks among eligible nodes.
type Strategy int

const (
	// UnknownStrategy represents an invalid or undefined strategy.
	// This value (0) helps catch uninitialized Strategy values.
	UnknownStrategy Strategy = iota

	// Nearest prefers the node closest to the destination.
	Nearest

	// RoundRobin spreads load evenly across eligible nodes.
	RoundRobin

	// FIFO routes to the first eligible node in enumeration order.
	FIFO

	// Fixed routes only to the rule's designated node.
	Fixed

	// Priority prefers the node with the best static priority rank.
	Priority

	// CostOptimized prefers the node with the lowest configured shipping cost.
	CostOptimized
)

// getStrategyStrings returns a map of Strategy values to their string representations.
func getStrategyStrings() map[Strategy]string {
	return map[Strategy]string{
		UnknownStrategy: "UNKNOWN",
		Nearest:         "NEAREST",
		RoundRobin:      "ROUND_ROBIN",
		FIFO:            "FIFO",
		Fixed:           "FIXED",
		Priority:        "PRIORITY",
		CostOptimized:   "COST_OPTIMIZED",
	}
}

// getValidStrategyStrings returns a map of only valid Strategy values.
func getValidStrategyStrings() map[Strategy]string {
	//nolint:exhaustive // UnknownStrategy is intentionally excluded as it's invalid
	return map[Strategy]string{
		Nearest:       "NEAREST",
		RoundRobin:    "ROUND_ROBIN",
		FIFO:          "FIFO",
		Fixed:         "FIXED",
		Priority:      "PRIORITY",
		CostOptimized: "COST_OPTIMIZED",
	}
}

// Validate checks if the Strategy value is valid.
func (s Strategy) Validate() error {
	if _, ok := getValidStrategyStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("strategy",
			fmt.Errorf("%d is not a valid strategy", s))
	}
	return nil
}

// String returns the configuration name of the strategy.
// This method implements the fmt.Stringer interface and is safe to call
// on any Strategy value, including invalid ones.
func (s Strategy) String() string {
	if str, ok := getStrategyStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StrategyFromString parses a configuration name into a Strategy.
// Used when loading rules from persistence or operator input.
func StrategyFromString(value string) (Strategy, error) {
	for strategy, str := range getValidStrategyStrings() {
		if str == value {
			return strategy, nil
		}
	}
	return UnknownStrategy, errs.NewValueIsInvalidErrorWithCause("strategy",
		fmt.Errorf("%q is not a valid strategy", value))
}
