package services

import (
	"errors"
	"sort"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
)

// ErrFixedTargetMissing is returned when a FIXED-strategy rule has no
// designated target node. The orchestrator treats it as a rule
// misconfiguration and falls through to the next rule.
var ErrFixedTargetMissing = errors.New("FIXED strategy rule has no target node")

const (
	// maxComponentScore is the ceiling of every individual scoring factor.
	maxComponentScore = 100.0

	// preferredNodeBonus is added to the total of nodes on the rule's
	// preferred list.
	preferredNodeBonus = 25.0

	// partialInventoryCeiling caps the inventory component of a node that
	// cannot cover the complete order, keeping any full-cover node above
	// every partial-cover node on that factor.
	partialInventoryCeiling = 50.0

	// proximityFullScoreKm and proximityCutoffKm bound the geographic
	// proximity interpolation: at or under the former scores the maximum,
	// at or beyond the latter scores zero.
	proximityFullScoreKm = 50.0
	proximityCutoffKm    = 2000.0
)

// Candidate bundles everything the scorer needs to know about one node:
// the node itself, its serviceability row for the destination, and the
// availability snapshot captured before scoring began.
type Candidate struct {
	Node     *node.Node
	Coverage node.Coverage
	Snapshot inventory.NodeSnapshot
}

// factorWeights is the per-strategy weighting of the scoring factors.
// Weights sum to 1 so component scores and totals share the same scale.
type factorWeights struct {
	proximity   float64
	inventory   float64
	cost        float64
	sla         float64
	capacity    float64
	performance float64
}

// NodeScorer ranks candidate nodes for a request under a rule's strategy.
// Scoring is pure in-memory computation over captured snapshots and never
// blocks.
type NodeScorer struct {
	checker AvailabilityChecker
}

// NewNodeScorer creates a NodeScorer using the given availability checker.
func NewNodeScorer(checker AvailabilityChecker) NodeScorer {
	return NodeScorer{checker: checker}
}

// ScoreNodes scores every candidate and returns them ranked descending by
// total score. Ties keep the candidate enumeration order, so ranking is
// deterministic. Candidates on the rule's excluded list are dropped before
// scoring.
//
// For the FIXED strategy only the rule's designated node is scored; a FIXED
// rule without a target returns ErrFixedTargetMissing. The destination
// geolocation is optional; without it (or without node coordinates)
// proximity falls back to the serviceability priority rank.
func (s NodeScorer) ScoreNodes(
	request *allocation.Request,
	r *rule.Rule,
	candidates []Candidate,
	destination *kernel.GeoPoint,
) ([]allocation.NodeScore, error) {
	eligible := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if r.IsNodeExcluded(candidate.Node.Code()) {
			continue
		}
		eligible = append(eligible, candidate)
	}

	if r.Strategy() == rule.Fixed {
		target := r.Predicate().TargetNode()
		if target == "" {
			return nil, ErrFixedTargetMissing
		}

		fixed := eligible[:0]
		for _, candidate := range eligible {
			if candidate.Node.Code() == target {
				fixed = append(fixed, candidate)
				break
			}
		}
		eligible = fixed
	}

	maxCost := 0.0
	for _, candidate := range eligible {
		if cost := candidate.Coverage.ShippingCost(); cost > maxCost {
			maxCost = cost
		}
	}

	weights := weightsFor(r.Strategy())
	scores := make([]allocation.NodeScore, 0, len(eligible))
	for _, candidate := range eligible {
		scores = append(scores, s.scoreCandidate(request, r, candidate, weights, maxCost, destination))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})

	return scores, nil
}

// BestNode returns the first ranked entry that can fulfill the complete
// order, or false when no single node covers it.
func (s NodeScorer) BestNode(ranked []allocation.NodeScore) (allocation.NodeScore, bool) {
	for _, score := range ranked {
		if score.CanFulfillAll {
			return score, true
		}
	}
	return allocation.NodeScore{}, false
}

func (s NodeScorer) scoreCandidate(
	request *allocation.Request,
	r *rule.Rule,
	candidate Candidate,
	weights factorWeights,
	maxCost float64,
	destination *kernel.GeoPoint,
) allocation.NodeScore {
	items, canFulfillAll := s.checker.CheckItems(candidate.Snapshot, request)

	score := allocation.NodeScore{
		NodeCode:         candidate.Node.Code(),
		ProximityScore:   proximityScore(r.Strategy(), candidate, destination),
		InventoryScore:   inventoryScore(items, canFulfillAll),
		CostScore:        costScore(candidate.Coverage.ShippingCost(), maxCost),
		SLAScore:         maxComponentScore / float64(candidate.Coverage.TransitDays()),
		CapacityScore:    capacityScore(candidate.Node),
		PerformanceScore: candidate.Node.PerformanceScore(),
		CanFulfillAll:    canFulfillAll,
		Items:            items,
	}

	if r.IsNodePreferred(candidate.Node.Code()) {
		score.PreferredBonus = preferredNodeBonus
	}

	score.TotalScore = weights.proximity*score.ProximityScore +
		weights.inventory*score.InventoryScore +
		weights.cost*score.CostScore +
		weights.sla*score.SLAScore +
		weights.capacity*score.CapacityScore +
		weights.performance*score.PerformanceScore +
		score.PreferredBonus

	return score
}

// proximityScore interpolates geographic distance when both endpoints carry
// coordinates, and otherwise derives the score from the inverse of the
// serviceability priority rank. The PRIORITY strategy always uses the rank.
func proximityScore(strategy rule.Strategy, candidate Candidate, destination *kernel.GeoPoint) float64 {
	if strategy != rule.Priority && destination != nil && candidate.Node.GeoLocation() != nil {
		distance, err := destination.DistanceKm(*candidate.Node.GeoLocation())
		if err == nil {
			switch {
			case distance <= proximityFullScoreKm:
				return maxComponentScore
			case distance >= proximityCutoffKm:
				return 0
			default:
				return maxComponentScore * (proximityCutoffKm - distance) /
					(proximityCutoffKm - proximityFullScoreKm)
			}
		}
	}

	return maxComponentScore / float64(candidate.Coverage.PriorityRank())
}

// inventoryScore gives a full-cover node the maximum, and a partial-cover
// node a score proportional to the covered demand fraction, capped below
// every full-cover node.
func inventoryScore(items []allocation.ItemAvailability, canFulfillAll bool) float64 {
	if canFulfillAll {
		return maxComponentScore
	}

	requested, covered := 0, 0
	for _, item := range items {
		requested += item.Requested
		covered += min(item.Available, item.Requested)
	}
	if requested == 0 {
		return 0
	}

	return partialInventoryCeiling * float64(covered) / float64(requested)
}

func costScore(cost, maxCost float64) float64 {
	if maxCost == 0 {
		return maxComponentScore
	}
	return maxComponentScore * (1 - cost/maxCost)
}

func capacityScore(n *node.Node) float64 {
	if n.DailyCapacity() == 0 {
		return maxComponentScore
	}

	remaining := float64(n.DailyCapacity()-n.CurrentDayOrders()) / float64(n.DailyCapacity())
	if remaining < 0 {
		remaining = 0
	}
	return maxComponentScore * remaining
}

// weightsFor returns the factor weighting for a strategy. FIFO carries zero
// weights so the stable sort preserves candidate enumeration order, and
// FIXED scoring is pass/fail so its weights only shape the recorded trace.
func weightsFor(strategy rule.Strategy) factorWeights {
	switch strategy {
	case rule.CostOptimized:
		return factorWeights{proximity: 0.05, inventory: 0.30, cost: 0.45, sla: 0.05, capacity: 0.05, performance: 0.10}
	case rule.RoundRobin:
		return factorWeights{inventory: 0.30, capacity: 0.60, performance: 0.10}
	case rule.FIFO:
		return factorWeights{}
	default:
		return factorWeights{proximity: 0.40, inventory: 0.30, cost: 0.05, sla: 0.05, capacity: 0.10, performance: 0.10}
	}
}
