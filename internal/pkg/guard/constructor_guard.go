// Package guard implements the constructor-guard pattern used across the domain
// model. Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so aggregates and value objects can enforce creation through
// their factory functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its designated
// constructor. The zero value is "not constructed" and fails validation,
// which prevents direct struct literals from bypassing invariant checks.
//
// Example:
//
//	type Rule struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRule(name string) (Rule, error) {
//	    if name == "" {
//	        return Rule{}, errors.New("name is required")
//	    }
//	    return Rule{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rule) Validate() error {
//	    return r.guard.Validate(ErrRuleIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
