package services

import (
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/inventory"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pincode, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pincode
}

func buildNode(t *testing.T, code string, originPincode string) *node.Node {
	t.Helper()
	n, err := node.NewNode(kernel.NewUUID(), code, code+" warehouse",
		node.Warehouse, mustPincode(t, originPincode), 0)
	require.NoError(t, err)
	return n
}

func buildCoverage(t *testing.T, destination string, priorityRank, transitDays int, shippingCost float64) node.Coverage {
	t.Helper()
	coverage, err := node.NewCoverage(mustPincode(t, destination), true, true,
		priorityRank, transitDays, shippingCost)
	require.NoError(t, err)
	return coverage
}

func buildCandidate(t *testing.T, code, origin, destination string,
	priorityRank int, stock map[kernel.UUID]int,
) Candidate {
	t.Helper()
	products := make(map[kernel.UUID]inventory.ProductStock, len(stock))
	for productID, available := range stock {
		products[productID] = inventory.ProductStock{
			Pool: &inventory.PoolRecord{Available: available},
		}
	}

	return Candidate{
		Node:     buildNode(t, code, origin),
		Coverage: buildCoverage(t, destination, priorityRank, 2, 50),
		Snapshot: inventory.NodeSnapshot{NodeCode: code, Products: products},
	}
}

func lineItem(t *testing.T, productID kernel.UUID, qty int) allocation.LineItem {
	t.Helper()
	item, err := allocation.NewLineItem(productID, qty,
		decimal.NewFromInt(100), decimal.NewFromFloat(0.5))
	require.NoError(t, err)
	return item
}

// buildRequestWithItems keeps the given line-item order, so tests can carry
// several line items for the same product.
func buildRequestWithItems(t *testing.T, destination string, items []allocation.LineItem) *allocation.Request {
	t.Helper()
	request, err := allocation.NewRequest(kernel.NewUUID(),
		mustPincode(t, destination), "WEB", node.ChannelB2C,
		allocation.Prepaid, items)
	require.NoError(t, err)
	return request
}

func buildRequest(t *testing.T, destination string, items map[kernel.UUID]int) *allocation.Request {
	t.Helper()
	lineItems := make([]allocation.LineItem, 0, len(items))
	for productID, qty := range items {
		item, err := allocation.NewLineItem(productID, qty,
			decimal.NewFromInt(100), decimal.NewFromFloat(0.5))
		require.NoError(t, err)
		lineItems = append(lineItems, item)
	}

	request, err := allocation.NewRequest(kernel.NewUUID(),
		mustPincode(t, destination), "WEB", node.ChannelB2C,
		allocation.Prepaid, lineItems)
	require.NoError(t, err)
	return request
}

func buildRule(t *testing.T, strategy rule.Strategy, predicate rule.Predicate) *rule.Rule {
	t.Helper()
	r, err := rule.NewRule(kernel.NewUUID(), "test-rule", 10, strategy,
		predicate, rule.SplitPolicy{}, rule.NewBackorderPolicy(false))
	require.NoError(t, err)
	return r
}

func buildScorer(t *testing.T) NodeScorer {
	t.Helper()
	checker, err := NewAvailabilityChecker(false, inventory.SharedPool)
	require.NoError(t, err)
	return NewNodeScorer(checker)
}
