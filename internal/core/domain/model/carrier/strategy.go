package carrier

import (
	"fmt"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// SelectionStrategy determines how the selector picks among eligible quotes.
type SelectionStrategy int

const (
	// UnknownSelectionStrategy represents an invalid or undefined strategy.
	UnknownSelectionStrategy SelectionStrategy = iota

	// CheapestFirst picks the quote with the lowest total cost.
	CheapestFirst

	// FastestFirst picks the quote with the shortest maximum transit days.
	FastestFirst

	// BestSLA picks the quote with the best on-time performance.
	BestSLA

	// Balanced applies a blended score across cost, speed and reliability.
	Balanced
)

// getValidSelectionStrategyStrings returns a map of only valid SelectionStrategy values.
func getValidSelectionStrategyStrings() map[SelectionStrategy]string {
	return map[SelectionStrategy]string{
		CheapestFirst: "CHEAPEST_FIRST",
		FastestFirst:  "FASTEST_FIRST",
		BestSLA:       "BEST_SLA",
		Balanced:      "BALANCED",
	}
}

// Validate checks if the SelectionStrategy value is valid.
func (s SelectionStrategy) Validate() error {
	if _, ok := getValidSelectionStrategyStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier selection strategy",
			fmt.Errorf("%d is not a valid carrier selection strategy", s))
	}
	return nil
}

// String returns the configuration name of the strategy.
func (s SelectionStrategy) String() string {
	if str, ok := getValidSelectionStrategyStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// SelectionStrategyFromString parses a configuration name into a SelectionStrategy.
func SelectionStrategyFromString(value string) (SelectionStrategy, error) {
	for strategy, str := range getValidSelectionStrategyStrings() {
		if str == value {
			return strategy, nil
		}
	}
	return UnknownSelectionStrategy, errs.NewValueIsInvalidErrorWithCause(
		"carrier selection strategy",
		fmt.Errorf("%q is not a valid carrier selection strategy", value))
}
