package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/backorder"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/carrier"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/services"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Terminal orchestration failures surfaced to the caller alongside the
// FAILED decision record.
var (
	// ErrNotServiceable means no covering node exists for the destination.
	ErrNotServiceable = errors.New("destination is not serviceable")
	// ErrInsufficientInventory means no node or node combination covers the
	// demand under the applied policies.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrPartialWriteFailure means a mutation failed after a node was
	// selected; every applied mutation was rolled back and the order is
	// safely retryable.
	ErrPartialWriteFailure = errors.New("allocation write failed, mutations rolled back")
)

// defaultBackorderPriority is assigned to backorders captured by the
// orchestrator itself. Operator-created backorders choose their own.
const defaultBackorderPriority = 100

// OrchestrateOrderCommandHandler runs the full allocation pipeline for one
// order: candidate enumeration, rule matching, scoring, split planning,
// backorder capture, inventory consumption and carrier proposal.
//
// Exactly one decision record is written per call, success or failure, on a
// connection outside the business transaction, so a rollback can never lose
// the audit trail.
type OrchestrateOrderCommandHandler struct {
	uowFactory OrchestrationUoWFactory
	nodes      ports.NodeRepository
	rules      ports.RuleRepository
	stock      ports.StockRepository
	softRes    ports.SoftReservationStore
	decisions  ports.DecisionRepository

	checker services.AvailabilityChecker
	matcher services.RuleMatcher
	scorer  services.NodeScorer
	planner services.SplitPlanner
	carrier services.CarrierSelector

	carrierStrategy carrier.SelectionStrategy
}

// NewOrchestrateOrderCommandHandler wires the orchestration pipeline.
// The node, rule and stock repositories are used for the read-only phase;
// every mutation goes through a unit of work from uowFactory.
func NewOrchestrateOrderCommandHandler(
	uowFactory OrchestrationUoWFactory,
	nodes ports.NodeRepository,
	rules ports.RuleRepository,
	stock ports.StockRepository,
	softRes ports.SoftReservationStore,
	decisions ports.DecisionRepository,
	checker services.AvailabilityChecker,
	carrierSelector services.CarrierSelector,
	carrierStrategy carrier.SelectionStrategy,
) OrchestrateOrderCommandHandler {
	return OrchestrateOrderCommandHandler{
		uowFactory:      uowFactory,
		nodes:           nodes,
		rules:           rules,
		stock:           stock,
		softRes:         softRes,
		decisions:       decisions,
		checker:         checker,
		matcher:         services.NewRuleMatcher(),
		scorer:          services.NewNodeScorer(checker),
		planner:         services.NewSplitPlanner(),
		carrier:         carrierSelector,
		carrierStrategy: carrierStrategy,
	}
}

// outcome accumulates the result of the pipeline before it is frozen into
// an immutable decision record.
type outcome struct {
	status        allocation.Status
	appliedRule   string
	strategy      string
	assignments   []allocation.Assignment
	shortfalls    []allocation.ItemShortfall
	candidates    []allocation.NodeScore
	warnings      []string
	failureReason string
	err           error
}

func (o *outcome) fail(reason string, err error) {
	o.status = allocation.Failed
	o.failureReason = reason
	o.err = err
	if o.appliedRule == "" {
		o.appliedRule = "NONE"
	}
}

// Handle runs the allocation pipeline and returns the recorded decision.
// Business failures return the FAILED decision together with a sentinel
// error; the decision is logged in every case.
func (h *OrchestrateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd OrchestrateOrderCommand,
) (*allocation.Decision, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	request := cmd.Request()
	result := h.orchestrate(ctx, request)

	decision, err := allocation.NewDecision(
		kernel.NewUUID(),
		request.OrderID(),
		result.status,
		result.appliedRule,
		result.strategy,
		result.assignments,
		result.shortfalls,
		result.candidates,
		result.warnings,
		result.failureReason,
		time.Since(start),
		request.IsDryRun(),
	)
	if err != nil {
		return nil, err
	}

	// The log is never skipped, even when the caller's context is already
	// gone by the time the pipeline finishes.
	if logErr := h.decisions.Add(context.WithoutCancel(ctx), decision); logErr != nil {
		return decision, errors.Join(result.err, logErr)
	}

	return decision, result.err
}

func (h *OrchestrateOrderCommandHandler) orchestrate(
	ctx context.Context,
	request *allocation.Request,
) outcome {
	var result outcome

	candidates, ok := h.enumerateCandidates(ctx, request, &result)
	if !ok {
		return result
	}

	activeRules, err := h.rules.GetAllActive(ctx)
	if err != nil {
		result.fail(fmt.Sprintf("loading routing rules: %v", err), err)
		return result
	}

	for _, r := range h.matcher.MatchRules(request, activeRules) {
		if h.tryRule(request, r, candidates, &result) {
			break
		}
	}

	if result.status == allocation.UnknownStatus {
		result.fail("no node or node combination covers the demand under the applied policies",
			ErrInsufficientInventory)
		return result
	}

	if !request.IsDryRun() {
		if err := h.applyMutations(ctx, request, &result); err != nil {
			assignments := result.assignments
			result.assignments = nil
			result.shortfalls = nil
			result.fail(fmt.Sprintf("allocation write failed after selecting %s: %v",
				assignmentNodes(assignments), err), errors.Join(ErrPartialWriteFailure, err))
			return result
		}
	}

	h.proposeCarriers(ctx, request, candidates, &result)
	return result
}

// enumerateCandidates loads the serviceable nodes for the destination,
// filters them by channel capability, payment support and daily capacity,
// honors a forced-node override, and captures an availability snapshot per
// survivor. It returns false after recording a failure in result.
func (h *OrchestrateOrderCommandHandler) enumerateCandidates(
	ctx context.Context,
	request *allocation.Request,
	result *outcome,
) ([]services.Candidate, bool) {
	serviceable, err := h.nodes.GetServing(ctx, request.Destination())
	if err != nil {
		result.fail(fmt.Sprintf("loading serviceable nodes: %v", err), err)
		return nil, false
	}

	eligible := make([]ports.ServiceableNode, 0, len(serviceable))
	for _, entry := range serviceable {
		if !entry.Node.IsEligible(request.TradeChannel()) || !entry.Node.HasDayCapacity() {
			continue
		}
		if request.PaymentMode() == allocation.COD && !entry.Coverage.CODAllowed() {
			continue
		}
		if request.PaymentMode() == allocation.Prepaid && !entry.Coverage.PrepaidAllowed() {
			continue
		}
		eligible = append(eligible, entry)
	}

	if forced := request.Overrides().ForcedNodeCode; forced != "" {
		forcedEntry := eligible[:0]
		for _, entry := range eligible {
			if entry.Node.Code() == forced {
				forcedEntry = append(forcedEntry, entry)
				break
			}
		}
		eligible = forcedEntry
		if len(eligible) == 0 {
			result.fail(fmt.Sprintf("forced node %s does not serve destination %s",
				forced, request.Destination()), ErrNotServiceable)
			return nil, false
		}
	}

	if len(eligible) == 0 {
		result.fail(fmt.Sprintf("no node serves destination %s", request.Destination()),
			ErrNotServiceable)
		return nil, false
	}

	candidates := make([]services.Candidate, 0, len(eligible))
	for _, entry := range eligible {
		snapshot, err := h.stock.SnapshotNode(ctx, entry.Node.Code(), request.ProductIDs())
		if err != nil {
			result.fail(fmt.Sprintf("reading stock of node %s: %v", entry.Node.Code(), err), err)
			return nil, false
		}

		h.mergeSoftReservations(ctx, request, &snapshot, result)
		candidates = append(candidates, services.Candidate{
			Node:     entry.Node,
			Coverage: entry.Coverage,
			Snapshot: snapshot,
		})
	}

	return candidates, true
}

// mergeSoftReservations folds the live cache-held reservations into the
// snapshot. A store failure degrades to zero reserved units with a warning:
// availability wins over hard failure, with oversell bounded by the TTL.
func (h *OrchestrateOrderCommandHandler) mergeSoftReservations(
	ctx context.Context,
	request *allocation.Request,
	snapshot *inventory.NodeSnapshot,
	result *outcome,
) {
	for _, productID := range request.ProductIDs() {
		stock, ok := snapshot.Products[productID]
		if !ok {
			continue
		}
		if stock.SoftReserved == nil {
			stock.SoftReserved = make(map[string]int, 2)
		}

		for _, channel := range []string{request.ChannelCode(), ""} {
			qty, err := h.softRes.ReservedQty(ctx, snapshot.NodeCode, productID, channel)
			if err != nil {
				result.warnings = append(result.warnings, fmt.Sprintf(
					"soft reservation lookup failed for %s at %s: %v; assuming zero",
					productID, snapshot.NodeCode, err))
				continue
			}
			stock.SoftReserved[channel] = qty
		}

		snapshot.Products[productID] = stock
	}
}

// tryRule evaluates one rule and reports whether it produced a usable
// outcome. Rule misconfigurations are recorded as warnings and fall through
// to the next rule.
func (h *OrchestrateOrderCommandHandler) tryRule(
	request *allocation.Request,
	r *rule.Rule,
	candidates []services.Candidate,
	result *outcome,
) bool {
	scored, err := h.scorer.ScoreNodes(request, r, candidates, nil)
	if err != nil {
		result.warnings = append(result.warnings, fmt.Sprintf(
			"rule %s is misconfigured: %v; trying next rule", r.Name(), err))
		return false
	}
	if len(scored) == 0 {
		return false
	}
	result.candidates = scored

	if best, ok := h.scorer.BestNode(scored); ok {
		result.status = allocation.Routed
		result.assignments = []allocation.Assignment{fullAssignment(request, best)}
		h.markApplied(r, result)
		return true
	}

	splitPolicy, splitAllowed := effectiveSplitPolicy(request, r)
	if splitAllowed {
		assignments, err := h.planner.PlanSplit(request, scored, splitPolicy)
		if err == nil {
			result.status = allocation.Split
			result.assignments = assignments
			h.markApplied(r, result)
			return true
		}
		if !errors.Is(err, services.ErrSplitNotPossible) {
			result.warnings = append(result.warnings, fmt.Sprintf(
				"split planning under rule %s: %v", r.Name(), err))
		}
	}

	if backorderAllowed(request, r) {
		maxNodes := 1
		if splitAllowed {
			maxNodes = splitPolicy.MaxSplits()
		}
		assignments, shortfalls := planPartial(request, scored, maxNodes)
		result.status = allocation.Backordered
		result.assignments = assignments
		result.shortfalls = shortfalls
		h.markApplied(r, result)
		return true
	}

	return false
}

func (h *OrchestrateOrderCommandHandler) markApplied(r *rule.Rule, result *outcome) {
	result.appliedRule = r.Name()
	result.strategy = r.Strategy().String()
}

// applyMutations consumes stock, bumps day counters and captures backorders
// inside one transaction. Any failure rolls everything back.
func (h *OrchestrateOrderCommandHandler) applyMutations(
	ctx context.Context,
	request *allocation.Request,
	result *outcome,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	for _, assignment := range result.assignments {
		for _, item := range assignment.Items {
			productID, err := kernel.UUIDFromString(item.ProductID)
			if err != nil {
				return err
			}
			channel := ""
			if item.Source == inventory.SourceChannel {
				channel = request.ChannelCode()
			}
			if err := stockRepo.ConsumeAvailable(ctx, assignment.NodeCode, productID, channel, item.Quantity); err != nil {
				return err
			}
		}
	}

	nodeRepo := uow.NodeRepository()
	for _, assignment := range result.assignments {
		if err := nodeRepo.IncrementDayOrders(ctx, assignment.NodeCode); err != nil {
			return err
		}
	}

	backorderRepo := uow.BackorderRepository()
	for i, shortfall := range result.shortfalls {
		productID, err := kernel.UUIDFromString(shortfall.ProductID)
		if err != nil {
			return err
		}
		captured, err := backorder.NewBackorder(kernel.NewUUID(), request.OrderID(),
			productID, shortfall.Quantity, defaultBackorderPriority)
		if err != nil {
			return err
		}
		if err := backorderRepo.Add(ctx, captured); err != nil {
			return err
		}
		result.shortfalls[i].BackorderID = captured.ID().String()
	}

	return uow.Commit(ctx)
}

// proposeCarriers attaches an advisory carrier to every assignment. Carrier
// degradation never fails the allocation; it only adds warnings.
func (h *OrchestrateOrderCommandHandler) proposeCarriers(
	ctx context.Context,
	request *allocation.Request,
	candidates []services.Candidate,
	result *outcome,
) {
	origins := make(map[string]kernel.Pincode, len(candidates))
	for _, candidate := range candidates {
		origins[candidate.Node.Code()] = candidate.Node.Pincode()
	}

	for i, assignment := range result.assignments {
		origin, ok := origins[assignment.NodeCode]
		if !ok {
			continue
		}

		info, warnings := h.carrier.SelectCarrier(ctx, origin, request.Destination(),
			request.PaymentMode(), packageFor(request, assignment), h.carrierStrategy)
		result.warnings = append(result.warnings, warnings...)
		result.assignments[i].Carrier = info
	}
}

// fullAssignment builds the single-node assignment covering every line item.
func fullAssignment(request *allocation.Request, best allocation.NodeScore) allocation.Assignment {
	items := make([]allocation.ItemAllocation, 0, len(request.Items()))
	for _, item := range request.Items() {
		items = append(items, allocation.ItemAllocation{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Source:    sourceOf(best, item.ProductID().String()),
		})
	}

	return allocation.Assignment{
		NodeCode: best.NodeCode,
		Items:    items,
		Subtotal: request.OrderValue(),
	}
}

// planPartial greedily allocates whatever the ranked nodes can supply, up to
// maxNodes contributors, and reports the rest as shortfalls. Unlike split
// planning it tolerates uncovered demand; it only runs when backordering is
// permitted.
func planPartial(
	request *allocation.Request,
	ranked []allocation.NodeScore,
	maxNodes int,
) ([]allocation.Assignment, []allocation.ItemShortfall) {
	items := request.Items()
	remaining := make([]int, len(items))
	for i, item := range items {
		remaining[i] = item.Quantity()
	}

	var assignments []allocation.Assignment
	for _, candidate := range ranked {
		if len(assignments) >= maxNodes {
			break
		}

		var allocated []allocation.ItemAllocation
		subtotal := decimal.Zero
		for i, item := range items {
			if remaining[i] == 0 {
				continue
			}
			qty := min(remaining[i], candidate.AvailableFor(item.ProductID().String()))
			if qty == 0 {
				continue
			}
			remaining[i] -= qty
			subtotal = subtotal.Add(item.UnitPrice().Mul(decimal.NewFromInt(int64(qty))))
			allocated = append(allocated, allocation.ItemAllocation{
				ProductID: item.ProductID().String(),
				Quantity:  qty,
				Source:    sourceOf(candidate, item.ProductID().String()),
			})
		}

		if len(allocated) > 0 {
			assignments = append(assignments, allocation.Assignment{
				NodeCode: candidate.NodeCode,
				Items:    allocated,
				Subtotal: subtotal,
			})
		}
	}

	var shortfalls []allocation.ItemShortfall
	for i, item := range items {
		if remaining[i] > 0 {
			shortfalls = append(shortfalls, allocation.ItemShortfall{
				ProductID: item.ProductID().String(),
				Quantity:  remaining[i],
			})
		}
	}

	return assignments, shortfalls
}

// effectiveSplitPolicy resolves the rule's split policy against the
// operator override. A forced split on a rule that forbids it gets a
// permissive policy bounded by the line-item count.
func effectiveSplitPolicy(request *allocation.Request, r *rule.Rule) (rule.SplitPolicy, bool) {
	forced := request.Overrides().ForceSplit
	if forced == nil {
		return r.SplitPolicy(), r.SplitPolicy().Allowed()
	}
	if !*forced {
		return rule.SplitPolicy{}, false
	}
	if r.SplitPolicy().Allowed() {
		return r.SplitPolicy(), true
	}

	maxSplits := max(len(request.Items()), 2)
	policy, err := rule.NewSplitPolicy(true, maxSplits, decimal.Zero)
	if err != nil {
		return rule.SplitPolicy{}, false
	}
	return policy, true
}

func backorderAllowed(request *allocation.Request, r *rule.Rule) bool {
	if forced := request.Overrides().ForceBackorder; forced != nil {
		return *forced
	}
	return r.BackorderPolicy().Allowed()
}

func sourceOf(score allocation.NodeScore, productID string) string {
	for _, item := range score.Items {
		if item.ProductID == productID {
			return item.Source
		}
	}
	return inventory.SourceNone
}

func packageFor(request *allocation.Request, assignment allocation.Assignment) carrier.Package {
	weights := make(map[string]decimal.Decimal, len(request.Items()))
	for _, item := range request.Items() {
		weights[item.ProductID().String()] = item.UnitWeightKg()
	}

	total := decimal.Zero
	for _, item := range assignment.Items {
		total = total.Add(weights[item.ProductID].Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return carrier.Package{WeightKg: total}
}

func assignmentNodes(assignments []allocation.Assignment) string {
	codes := make([]byte, 0, 32)
	for i, assignment := range assignments {
		if i > 0 {
			codes = append(codes, ',')
		}
		codes = append(codes, assignment.NodeCode...)
	}
	return string(codes)
}
