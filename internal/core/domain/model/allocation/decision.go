package allocation

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDecisionIsNotConstructed is returned when using an improperly initialized Decision.
var ErrDecisionIsNotConstructed = errors.New("Decision must be created via NewDecision constructor")

// ItemAllocation is one allocated line of an assignment: how many units of a
// product a node ships, and which inventory source (channel record or shared
// pool) those units were promised from.
type ItemAllocation struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Source    string `json:"source"`
}

// Carrier proposal modes recorded in CarrierInfo.
const (
	// CarrierModeRateQuote marks a proposal from the live rate-quote provider.
	CarrierModeRateQuote = "RATE_QUOTE"
	// CarrierModeLegacyLane marks a proposal from the static fallback lane table.
	CarrierModeLegacyLane = "LEGACY_LANE"
)

// CarrierInfo is the advisory carrier proposal attached to an assignment.
// Mode names where the proposal came from: "RATE_QUOTE" for the rate-quote
// provider, "LEGACY_LANE" for the static fallback table.
type CarrierInfo struct {
	Code           string                     `json:"code"`
	Name           string                     `json:"name"`
	Mode           string                     `json:"mode"`
	TotalCost      decimal.Decimal            `json:"total_cost"`
	CostBreakdown  map[string]decimal.Decimal `json:"cost_breakdown,omitempty"`
	TransitDaysMin int                        `json:"transit_days_min"`
	TransitDaysMax int                        `json:"transit_days_max"`
}

// Assignment is the chosen outcome for one node: the line items it ships,
// their monetary subtotal, and the proposed carrier (if any).
type Assignment struct {
	NodeCode string           `json:"node_code"`
	Items    []ItemAllocation `json:"items"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Carrier  *CarrierInfo     `json:"carrier,omitempty"`
}

// ItemShortfall is unmet demand captured as a backorder.
type ItemShortfall struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	BackorderID string `json:"backorder_id,omitempty"`
}

// Decision is the terminal, immutable output of one Orchestrate call.
// Exactly one decision is recorded per call, success or failure, capturing
// the applied rule, every scored candidate, the chosen outcome, advisory
// warnings and the processing latency. It is the sole source of truth for
// debugging misallocations.
//
// A decision cannot be mutated after construction; the orchestration log
// persists it verbatim.
type Decision struct {
	id            kernel.UUID
	orderID       kernel.UUID
	status        Status
	appliedRule   string
	strategy      string
	assignments   []Assignment
	shortfalls    []ItemShortfall
	candidates    []NodeScore
	warnings      []string
	failureReason string
	latency       time.Duration
	dryRun        bool
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NewDecision creates an immutable orchestration decision.
//
// Parameters:
//   - id: Unique decision identifier
//   - orderID: The order the decision is about
//   - status: Terminal outcome
//   - appliedRule: Name of the routing rule that produced the outcome
//   - strategy: Wire name of the strategy the rule applied
//   - assignments: Chosen node(s) with allocated items and carriers
//   - shortfalls: Backordered demand, if any
//   - candidates: Every scored candidate considered, not just the winner
//   - warnings: Advisory degradations encountered along the way
//   - failureReason: Structured reason when status is Failed
//   - latency: Processing duration of the Orchestrate call
//   - dryRun: Whether the call was side-effect free
func NewDecision(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	appliedRule string,
	strategy string,
	assignments []Assignment,
	shortfalls []ItemShortfall,
	candidates []NodeScore,
	warnings []string,
	failureReason string,
	latency time.Duration,
	dryRun bool,
) (*Decision, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	if appliedRule == "" {
		return nil, errs.NewValueIsRequiredError("applied rule")
	}

	if status == Failed && failureReason == "" {
		return nil, errs.NewValueIsRequiredError("failure reason")
	}

	return &Decision{
		id:            id,
		orderID:       orderID,
		status:        status,
		appliedRule:   appliedRule,
		strategy:      strategy,
		assignments:   assignments,
		shortfalls:    shortfalls,
		candidates:    candidates,
		warnings:      warnings,
		failureReason: failureReason,
		latency:       latency,
		dryRun:        dryRun,
		createdAt:     time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreDecision reconstructs a Decision from the orchestration log.
func RestoreDecision(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	appliedRule string,
	strategy string,
	assignments []Assignment,
	shortfalls []ItemShortfall,
	candidates []NodeScore,
	warnings []string,
	failureReason string,
	latency time.Duration,
	dryRun bool,
	createdAt time.Time,
) (*Decision, error) {
	decision, err := NewDecision(id, orderID, status, appliedRule, strategy,
		assignments, shortfalls, candidates, warnings, failureReason, latency, dryRun)
	if err != nil {
		return nil, err
	}

	decision.createdAt = createdAt
	return decision, nil
}

// Validate ensures the Decision was properly constructed through a constructor.
func (d *Decision) Validate() error {
	if d == nil {
		return ErrDecisionIsNotConstructed
	}
	return d.guard.Validate(ErrDecisionIsNotConstructed)
}

// ID returns the decision's unique identifier.
func (d *Decision) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order the decision is about.
func (d *Decision) OrderID() kernel.UUID {
	return d.orderID
}

// Status returns the terminal outcome.
func (d *Decision) Status() Status {
	return d.status
}

// AppliedRule returns the name of the routing rule that produced the outcome.
func (d *Decision) AppliedRule() string {
	return d.appliedRule
}

// Strategy returns the wire name of the applied strategy.
func (d *Decision) Strategy() string {
	return d.strategy
}

// Assignments returns the chosen node(s) with allocated items and carriers.
// The returned slice must not be mutated by callers.
func (d *Decision) Assignments() []Assignment {
	return d.assignments
}

// Shortfalls returns the backordered demand, if any.
func (d *Decision) Shortfalls() []ItemShortfall {
	return d.shortfalls
}

// Candidates returns every scored candidate considered.
func (d *Decision) Candidates() []NodeScore {
	return d.candidates
}

// Warnings returns the advisory degradations encountered along the way.
func (d *Decision) Warnings() []string {
	return d.warnings
}

// FailureReason returns the structured reason when the decision failed.
func (d *Decision) FailureReason() string {
	return d.failureReason
}

// Latency returns the processing duration of the Orchestrate call.
func (d *Decision) Latency() time.Duration {
	return d.latency
}

// IsDryRun reports whether the call was side-effect free.
func (d *Decision) IsDryRun() bool {
	return d.dryRun
}

// CreatedAt returns when the decision was recorded.
func (d *Decision) CreatedAt() time.Time {
	return d.createdAt
}
