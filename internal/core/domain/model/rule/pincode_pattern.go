package rule

import (
	"fmt"
	"strings"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

// ErrPincodePatternIsNotConstructed is returned when using an improperly initialized PincodePattern.
var ErrPincodePatternIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode pattern must be created via ParsePincodePattern")

// patternKind distinguishes the three supported pattern forms.
type patternKind int

const (
	patternExact patternKind = iota + 1
	patternPrefix
	patternRange
)

// PincodePattern is a destination predicate parsed once at rule load time.
// Three forms are supported:
//
//   - exact:  "400001"          matches that pincode only
//   - prefix: "400*"            matches any pincode starting with "400"
//   - range:  "400001-400099"   matches pincodes in the inclusive range
//
// Patterns arrive as free-form configuration strings; parsing and validating
// them here keeps the per-request match a cheap string comparison.
type PincodePattern struct {
	kind      patternKind
	raw       string
	exact     string
	prefix    string
	rangeFrom string
	rangeTo   string
	guard     guard.ConstructorGuard
}

// ParsePincodePattern parses a configuration string into a PincodePattern.
// Returns a validation error for malformed patterns so misconfiguration is
// caught at rule load time rather than per request.
func ParsePincodePattern(raw string) (PincodePattern, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PincodePattern{}, errs.NewValueIsRequiredError("pincode pattern")
	}

	pattern := PincodePattern{
		raw:   trimmed,
		guard: guard.NewConstructorGuard(),
	}

	switch {
	case strings.HasSuffix(trimmed, "*"):
		prefix := strings.TrimSuffix(trimmed, "*")
		if prefix == "" || len(prefix) > 5 || !isDigits(prefix) {
			return PincodePattern{}, invalidPattern(trimmed)
		}
		pattern.kind = patternPrefix
		pattern.prefix = prefix

	case strings.Contains(trimmed, "-"):
		from, to, _ := strings.Cut(trimmed, "-")
		if len(from) != 6 || len(to) != 6 || !isDigits(from) || !isDigits(to) || from > to {
			return PincodePattern{}, invalidPattern(trimmed)
		}
		pattern.kind = patternRange
		pattern.rangeFrom = from
		pattern.rangeTo = to

	default:
		if len(trimmed) != 6 || !isDigits(trimmed) {
			return PincodePattern{}, invalidPattern(trimmed)
		}
		pattern.kind = patternExact
		pattern.exact = trimmed
	}

	return pattern, nil
}

// Validate checks if the pattern was properly constructed via ParsePincodePattern.
func (p PincodePattern) Validate() error {
	return p.guard.Validate(ErrPincodePatternIsNotConstructed)
}

// Matches reports whether the destination pincode satisfies the pattern.
// Range comparison is lexicographic, which is correct because pincodes are
// fixed-length digit strings.
func (p PincodePattern) Matches(pincode kernel.Pincode) bool {
	value := pincode.String()

	switch p.kind {
	case patternExact:
		return value == p.exact
	case patternPrefix:
		return strings.HasPrefix(value, p.prefix)
	case patternRange:
		return value >= p.rangeFrom && value <= p.rangeTo
	default:
		return false
	}
}

// String returns the original configuration form of the pattern.
// This method implements the fmt.Stringer interface.
func (p PincodePattern) String() string {
	return p.raw
}

func invalidPattern(raw string) error {
	return errs.NewValueIsInvalidErrorWithCause("pincode pattern",
		fmt.Errorf("%q is not an exact, prefix or range pattern", raw))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
