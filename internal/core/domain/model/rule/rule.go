package rule

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// ChannelWildcard in a rule's channel set matches every sales channel.
	ChannelWildcard = "ALL"

	// DefaultRuleName is the name of the synthetic fallback rule.
	DefaultRuleName = "DEFAULT-NEAREST"

	// defaultRulePriority sorts the synthetic fallback rule after every
	// configured rule.
	defaultRulePriority = math.MaxInt32
)

// Domain errors for routing rules.
var (
	// ErrRuleIsNotConstructed is returned when using an improperly initialized Rule.
	ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")
	// ErrRuleNameIsRequired is returned when attempting to create a rule without a name.
	ErrRuleNameIsRequired = errs.NewValueIsRequiredError("rule name")
	// ErrValueBandInverted is returned when a rule's minimum order value exceeds its maximum.
	ErrValueBandInverted = errs.NewValueIsInvalidError("order value band: min exceeds max")
)

// Predicate is the applicability condition of a routing rule. A rule applies
// to a request only when every configured part of the predicate is satisfied;
// unset parts match anything.
//
// The source configuration stores these conditions as free-form
// comma-separated strings and nullable columns; parsing and validating them
// into this explicit value object happens once at rule load time.
type Predicate struct {
	channels       []string
	paymentMode    *allocation.PaymentMode
	minOrderValue  *decimal.Decimal
	maxOrderValue  *decimal.Decimal
	patterns       []PincodePattern
	targetNode     string
	preferredNodes []string
	excludedNodes  []string
}

// NewPredicate assembles a rule predicate.
//
// Parameters:
//   - channels: Matching sales channel codes; empty, or containing
//     ChannelWildcard, matches every channel
//   - paymentMode: Required payment mode; nil matches both modes
//   - minOrderValue, maxOrderValue: Inclusive order-value band; nil bounds are open
//   - patterns: Destination pincode patterns; empty matches every destination
//   - targetNode: Designated node code for the FIXED strategy (may be empty)
//   - preferredNodes: Node codes receiving a scoring bonus
//   - excludedNodes: Node codes removed from candidacy under this rule
func NewPredicate(
	channels []string,
	paymentMode *allocation.PaymentMode,
	minOrderValue, maxOrderValue *decimal.Decimal,
	patterns []PincodePattern,
	targetNode string,
	preferredNodes []string,
	excludedNodes []string,
) (Predicate, error) {
	if paymentMode != nil {
		if err := paymentMode.Validate(); err != nil {
			return Predicate{}, err
		}
	}

	if minOrderValue != nil && maxOrderValue != nil && minOrderValue.GreaterThan(*maxOrderValue) {
		return Predicate{}, ErrValueBandInverted
	}

	for _, pattern := range patterns {
		if err := pattern.Validate(); err != nil {
			return Predicate{}, err
		}
	}

	return Predicate{
		channels:       channels,
		paymentMode:    paymentMode,
		minOrderValue:  minOrderValue,
		maxOrderValue:  maxOrderValue,
		patterns:       patterns,
		targetNode:     targetNode,
		preferredNodes: preferredNodes,
		excludedNodes:  excludedNodes,
	}, nil
}

// Channels returns the matching sales channel codes.
func (p Predicate) Channels() []string {
	return p.channels
}

// PaymentMode returns the required payment mode, or nil when any mode matches.
func (p Predicate) PaymentMode() *allocation.PaymentMode {
	return p.paymentMode
}

// MinOrderValue returns the lower bound of the order-value band, or nil when open.
func (p Predicate) MinOrderValue() *decimal.Decimal {
	return p.minOrderValue
}

// MaxOrderValue returns the upper bound of the order-value band, or nil when open.
func (p Predicate) MaxOrderValue() *decimal.Decimal {
	return p.maxOrderValue
}

// Patterns returns the destination pincode patterns.
func (p Predicate) Patterns() []PincodePattern {
	return p.patterns
}

// TargetNode returns the designated node code for the FIXED strategy.
func (p Predicate) TargetNode() string {
	return p.targetNode
}

// PreferredNodes returns the node codes receiving a scoring bonus.
func (p Predicate) PreferredNodes() []string {
	return p.preferredNodes
}

// ExcludedNodes returns the node codes removed from candidacy.
func (p Predicate) ExcludedNodes() []string {
	return p.excludedNodes
}

// SplitPolicy governs whether and how an order may be partitioned across nodes.
type SplitPolicy struct {
	allowed       bool
	maxSplits     int
	minSplitValue decimal.Decimal
}

// NewSplitPolicy creates a split policy.
// When splitting is allowed, maxSplits must be at least 2 and minSplitValue
// must not be negative.
func NewSplitPolicy(allowed bool, maxSplits int, minSplitValue decimal.Decimal) (SplitPolicy, error) {
	if !allowed {
		return SplitPolicy{}, nil
	}

	if maxSplits < 2 {
		return SplitPolicy{}, errs.NewValueIsInvalidErrorWithCause("max splits",
			fmt.Errorf("%d is not at least 2", maxSplits))
	}

	if minSplitValue.IsNegative() {
		return SplitPolicy{}, errs.NewValueIsInvalidErrorWithCause("min split value",
			fmt.Errorf("%s is negative", minSplitValue))
	}

	return SplitPolicy{allowed: true, maxSplits: maxSplits, minSplitValue: minSplitValue}, nil
}

// Allowed reports whether the order may be split.
func (s SplitPolicy) Allowed() bool {
	return s.allowed
}

// MaxSplits returns the maximum number of contributing nodes.
func (s SplitPolicy) MaxSplits() int {
	return s.maxSplits
}

// MinSplitValue returns the minimum monetary subtotal a split must carry.
func (s SplitPolicy) MinSplitValue() decimal.Decimal {
	return s.minSplitValue
}

// BackorderPolicy governs whether unmet demand may be captured as a backorder.
type BackorderPolicy struct {
	allowed bool
}

// NewBackorderPolicy creates a backorder policy.
func NewBackorderPolicy(allowed bool) BackorderPolicy {
	return BackorderPolicy{allowed: allowed}
}

// Allowed reports whether backordering is permitted.
func (b BackorderPolicy) Allowed() bool {
	return b.allowed
}

// Rule is a routing/allocation rule: an ordered applicability predicate plus
// the strategy and policies the engine applies when the rule matches.
// Rules are owned by operations configuration; the engine only reads them.
//
// Invariant: at most one rule is applied per orchestration. Rules are tried
// in ascending priority order until one yields a usable outcome.
type Rule struct {
	// id uniquely identifies the rule
	id kernel.UUID
	// name is the operations-facing rule name
	name string
	// priority orders rule evaluation; lower values are tried first
	priority int
	// active marks the rule as enabled
	active bool
	// predicate is the applicability condition
	predicate Predicate
	// strategy determines how the rule picks among eligible nodes
	strategy Strategy
	// splitPolicy governs order partitioning
	splitPolicy SplitPolicy
	// backorderPolicy governs shortfall capture
	backorderPolicy BackorderPolicy
	// guard ensures the rule was properly constructed
	guard guard.ConstructorGuard
}

// NewRule creates a routing rule.
//
// A FIXED-strategy rule without a target node is deliberately constructible:
// the engine treats it as a rule misconfiguration at evaluation time and
// falls through to the next rule, which is the required runtime behavior for
// bad configuration.
func NewRule(
	id kernel.UUID,
	name string,
	priority int,
	strategy Strategy,
	predicate Predicate,
	splitPolicy SplitPolicy,
	backorderPolicy BackorderPolicy,
) (*Rule, error) {
	r := &Rule{
		active:          true,
		predicate:       predicate,
		splitPolicy:     splitPolicy,
		backorderPolicy: backorderPolicy,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPriority(priority),
		r.setStrategy(strategy),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// DefaultRule returns the synthetic fallback rule: NEAREST strategy, lowest
// possible priority, matching every request, with splitting and backordering
// disabled. The matcher appends it so the engine always has a strategy.
func DefaultRule() *Rule {
	r, err := NewRule(kernel.NewUUID(), DefaultRuleName, defaultRulePriority,
		Nearest, Predicate{}, SplitPolicy{}, NewBackorderPolicy(false))
	if err != nil {
		// Construction from constants cannot fail.
		panic(err)
	}
	return r
}

// RestoreRule reconstructs a Rule aggregate from persistent storage.
func RestoreRule(
	id kernel.UUID,
	name string,
	priority int,
	active bool,
	strategy Strategy,
	predicate Predicate,
	splitPolicy SplitPolicy,
	backorderPolicy BackorderPolicy,
) (*Rule, error) {
	r, err := NewRule(id, name, priority, strategy, predicate, splitPolicy, backorderPolicy)
	if err != nil {
		return nil, err
	}

	r.active = active
	return r, nil
}

// Validate ensures the Rule instance was properly constructed through a constructor.
func (r *Rule) Validate() error {
	if r == nil {
		return ErrRuleIsNotConstructed
	}
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// Name returns the operations-facing rule name.
func (r *Rule) Name() string {
	return r.name
}

// Priority returns the evaluation order; lower values are tried first.
func (r *Rule) Priority() int {
	return r.priority
}

// IsActive reports whether the rule is enabled.
func (r *Rule) IsActive() bool {
	return r.active
}

// Predicate returns the applicability condition.
func (r *Rule) Predicate() Predicate {
	return r.predicate
}

// Strategy returns how the rule picks among eligible nodes.
func (r *Rule) Strategy() Strategy {
	return r.strategy
}

// SplitPolicy returns the order partitioning policy.
func (r *Rule) SplitPolicy() SplitPolicy {
	return r.splitPolicy
}

// BackorderPolicy returns the shortfall capture policy.
func (r *Rule) BackorderPolicy() BackorderPolicy {
	return r.backorderPolicy
}

// Deactivate disables the rule.
func (r *Rule) Deactivate() {
	r.active = false
}

// AppliesTo reports whether the rule's predicate is satisfied by the request.
// Every configured predicate part must hold; unset parts match anything.
func (r *Rule) AppliesTo(request *allocation.Request) bool {
	if !r.active {
		return false
	}

	if !r.matchesChannel(request.ChannelCode()) {
		return false
	}

	if r.predicate.paymentMode != nil && *r.predicate.paymentMode != request.PaymentMode() {
		return false
	}

	value := request.OrderValue()
	if r.predicate.minOrderValue != nil && value.LessThan(*r.predicate.minOrderValue) {
		return false
	}
	if r.predicate.maxOrderValue != nil && value.GreaterThan(*r.predicate.maxOrderValue) {
		return false
	}

	return r.matchesDestination(request.Destination())
}

// IsNodeExcluded reports whether the rule removes the node from candidacy.
func (r *Rule) IsNodeExcluded(nodeCode string) bool {
	return slices.Contains(r.predicate.excludedNodes, nodeCode)
}

// IsNodePreferred reports whether the node receives the preferred-node bonus.
func (r *Rule) IsNodePreferred(nodeCode string) bool {
	return slices.Contains(r.predicate.preferredNodes, nodeCode)
}

func (r *Rule) matchesChannel(channelCode string) bool {
	if len(r.predicate.channels) == 0 {
		return true
	}

	for _, channel := range r.predicate.channels {
		if channel == ChannelWildcard || channel == channelCode {
			return true
		}
	}
	return false
}

func (r *Rule) matchesDestination(destination kernel.Pincode) bool {
	if len(r.predicate.patterns) == 0 {
		return true
	}

	for _, pattern := range r.predicate.patterns {
		if pattern.Matches(destination) {
			return true
		}
	}
	return false
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setName(name string) error {
	if name == "" {
		return ErrRuleNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rule) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is negative", priority))
	}
	r.priority = priority
	return nil
}

func (r *Rule) setStrategy(strategy Strategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}
	r.strategy = strategy
	return nil
}
