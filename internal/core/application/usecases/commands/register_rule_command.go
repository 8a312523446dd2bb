package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRegisterRuleCommandIsNotConstructed = errors.New(
	"RegisterRuleCommand must be created via NewRegisterRuleCommand constructor",
)

// RuleInput carries the loosely typed rule configuration as operations
// submits it. Parsing and validation into the rule aggregate happens once,
// in the command constructor.
type RuleInput struct {
	Name             string
	Priority         int
	Strategy         string
	Channels         []string
	PaymentMode      *string
	MinOrderValue    *decimal.Decimal
	MaxOrderValue    *decimal.Decimal
	PincodePatterns  []string
	TargetNode       string
	PreferredNodes   []string
	ExcludedNodes    []string
	SplitAllowed     bool
	MaxSplits        int
	MinSplitValue    decimal.Decimal
	BackorderAllowed bool
}

// RegisterRuleCommand represents operations configuring a new routing rule.
type RegisterRuleCommand struct { //nolint:recvcheck //using for validation
	aggregate *rule.Rule

	guard guard.ConstructorGuard
}

// NewRegisterRuleCommand parses the raw rule configuration into a validated
// rule aggregate.
func NewRegisterRuleCommand(ruleID kernel.UUID, input RuleInput) (RegisterRuleCommand, error) {
	strategy, err := rule.StrategyFromString(input.Strategy)
	if err != nil {
		return RegisterRuleCommand{}, err
	}

	var paymentMode *allocation.PaymentMode
	if input.PaymentMode != nil {
		mode, err := allocation.PaymentModeFromString(*input.PaymentMode)
		if err != nil {
			return RegisterRuleCommand{}, err
		}
		paymentMode = &mode
	}

	patterns := make([]rule.PincodePattern, 0, len(input.PincodePatterns))
	for _, raw := range input.PincodePatterns {
		pattern, err := rule.ParsePincodePattern(raw)
		if err != nil {
			return RegisterRuleCommand{}, err
		}
		patterns = append(patterns, pattern)
	}

	predicate, err := rule.NewPredicate(input.Channels, paymentMode,
		input.MinOrderValue, input.MaxOrderValue, patterns,
		input.TargetNode, input.PreferredNodes, input.ExcludedNodes)
	if err != nil {
		return RegisterRuleCommand{}, err
	}

	splitPolicy := rule.SplitPolicy{}
	if input.SplitAllowed {
		splitPolicy, err = rule.NewSplitPolicy(true, input.MaxSplits, input.MinSplitValue)
		if err != nil {
			return RegisterRuleCommand{}, err
		}
	}

	aggregate, err := rule.NewRule(ruleID, input.Name, input.Priority, strategy,
		predicate, splitPolicy, rule.NewBackorderPolicy(input.BackorderAllowed))
	if err != nil {
		return RegisterRuleCommand{}, err
	}

	return RegisterRuleCommand{
		aggregate: aggregate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRuleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRuleCommandIsNotConstructed)
}

// Rule returns the validated rule aggregate.
func (c RegisterRuleCommand) Rule() *rule.Rule {
	return c.aggregate
}
