package services

import (
	"errors"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"

	"github.com/shopspring/decimal"
)

// Split planning failures. Both mean no acceptable multi-node cover exists;
// the caller falls through to backorder handling when the rule permits it.
var (
	// ErrSplitNotAllowed is returned when the rule's split policy forbids splitting.
	ErrSplitNotAllowed = errors.New("split is not allowed by the applied rule")
	// ErrSplitNotPossible is returned when no combination of nodes under the
	// split constraints covers the complete order.
	ErrSplitNotPossible = errors.New("no split plan covers the complete order")
)

// SplitPlanner partitions an order across several nodes when no single node
// covers it. Greedy bin-packing over the ranked candidates: a later node can
// never consume units already promised from an earlier one, and the plan is
// all-or-nothing. A plan that would silently drop items is rejected outright.
type SplitPlanner struct{}

// NewSplitPlanner creates a new SplitPlanner instance.
func NewSplitPlanner() SplitPlanner {
	return SplitPlanner{}
}

// PlanSplit builds a multi-node assignment covering every line item of the
// request, walking rankedNodes in score order.
//
// A node contributes only if its allocated subtotal meets the policy's
// minimum split value; a tentative allocation below the floor is discarded
// and its demand returned to the tracker. Planning stops once all demand is
// covered or the policy's maximum node count is reached. Any demand left
// uncovered rejects the entire plan.
func (p SplitPlanner) PlanSplit(
	request *allocation.Request,
	rankedNodes []allocation.NodeScore,
	policy rule.SplitPolicy,
) ([]allocation.Assignment, error) {
	if !policy.Allowed() {
		return nil, ErrSplitNotAllowed
	}

	items := request.Items()
	remaining := make([]int, len(items))
	for i, item := range items {
		remaining[i] = item.Quantity()
	}

	assignments := make([]allocation.Assignment, 0, policy.MaxSplits())
	for _, candidate := range rankedNodes {
		if len(assignments) >= policy.MaxSplits() {
			break
		}
		if allCovered(remaining) {
			break
		}

		allocated := make([]allocation.ItemAllocation, 0, len(items))
		allocatedQty := make([]int, len(items))
		nodeAvailable := make(map[string]int, len(items))
		subtotal := decimal.Zero

		for i, item := range items {
			if remaining[i] == 0 {
				continue
			}

			// The node's availability is itself consumed within the plan, so
			// two line items for the same product share one budget.
			productID := item.ProductID().String()
			if _, seen := nodeAvailable[productID]; !seen {
				nodeAvailable[productID] = candidate.AvailableFor(productID)
			}

			qty := min(remaining[i], nodeAvailable[productID])
			if qty == 0 {
				continue
			}

			nodeAvailable[productID] -= qty
			remaining[i] -= qty
			allocatedQty[i] = qty
			subtotal = subtotal.Add(item.UnitPrice().Mul(decimal.NewFromInt(int64(qty))))
			allocated = append(allocated, allocation.ItemAllocation{
				ProductID: item.ProductID().String(),
				Quantity:  qty,
				Source:    sourceFor(candidate, item.ProductID().String()),
			})
		}

		if len(allocated) == 0 {
			continue
		}

		// No partial split below the value floor: the tentative allocation
		// is discarded and its demand returned to the tracker.
		if subtotal.LessThan(policy.MinSplitValue()) {
			for i, qty := range allocatedQty {
				remaining[i] += qty
			}
			continue
		}

		assignments = append(assignments, allocation.Assignment{
			NodeCode: candidate.NodeCode,
			Items:    allocated,
			Subtotal: subtotal,
		})
	}

	if !allCovered(remaining) {
		return nil, ErrSplitNotPossible
	}

	return assignments, nil
}

func allCovered(remaining []int) bool {
	for _, qty := range remaining {
		if qty > 0 {
			return false
		}
	}
	return true
}

func sourceFor(score allocation.NodeScore, productID string) string {
	for _, item := range score.Items {
		if item.ProductID == productID {
			return item.Source
		}
	}
	return ""
}
