package services

import (
	"testing"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ScoreNodes_NearestRoutesToStockedCloserNode(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 3})
	r := buildRule(t, rule.Nearest, rule.Predicate{})

	candidates := []Candidate{
		buildCandidate(t, "W1", "400070", "400001", 1, map[kernel.UUID]int{productP: 5}),
		buildCandidate(t, "W2", "110001", "400001", 2, map[kernel.UUID]int{productP: 0}),
	}

	scorer := buildScorer(t)
	ranked, err := scorer.ScoreNodes(request, r, candidates, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	best, ok := scorer.BestNode(ranked)
	require.True(t, ok)
	assert.Equal(t, "W1", best.NodeCode)
	assert.True(t, best.CanFulfillAll)
	assert.Equal(t, 5, best.AvailableFor(productP.String()))
}

func Test_ScoreNodes_NoSingleNodeCoversOrder(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 10})
	r := buildRule(t, rule.Nearest, rule.Predicate{})

	candidates := []Candidate{
		buildCandidate(t, "W1", "400070", "400001", 1, map[kernel.UUID]int{productP: 3}),
		buildCandidate(t, "W2", "110001", "400001", 2, map[kernel.UUID]int{productP: 1}),
	}

	scorer := buildScorer(t)
	ranked, err := scorer.ScoreNodes(request, r, candidates, nil)
	require.NoError(t, err)

	_, ok := scorer.BestNode(ranked)
	assert.False(t, ok)
}

func Test_ScoreNodes_GeoProximityBeatsRank(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 1})
	r := buildRule(t, rule.Nearest, rule.Predicate{})

	// Mumbai destination; W-NEAR is in Mumbai, W-FAR in Delhi. Both carry
	// stock and identical ranks, so distance decides.
	near := buildCandidate(t, "W-NEAR", "400070", "400001", 1, map[kernel.UUID]int{productP: 5})
	nearGeo, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)
	require.NoError(t, near.Node.SetGeoLocation(nearGeo))

	far := buildCandidate(t, "W-FAR", "110001", "400001", 1, map[kernel.UUID]int{productP: 5})
	farGeo, err := kernel.NewGeoPoint(28.6139, 77.2090)
	require.NoError(t, err)
	require.NoError(t, far.Node.SetGeoLocation(farGeo))

	destination, err := kernel.NewGeoPoint(19.0176, 72.8562)
	require.NoError(t, err)

	scorer := buildScorer(t)
	ranked, err := scorer.ScoreNodes(request, r, []Candidate{far, near}, &destination)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "W-NEAR", ranked[0].NodeCode)
	assert.Greater(t, ranked[0].ProximityScore, ranked[1].ProximityScore)
}

func Test_ScoreNodes_PreferredBonusBreaksEvenMatch(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 1})

	predicate, err := rule.NewPredicate(nil, nil, nil, nil, nil, "", []string{"W2"}, nil)
	require.NoError(t, err)
	r := buildRule(t, rule.Priority, predicate)

	candidates := []Candidate{
		buildCandidate(t, "W1", "400070", "400001", 1, map[kernel.UUID]int{productP: 5}),
		buildCandidate(t, "W2", "400080", "400001", 1, map[kernel.UUID]int{productP: 5}),
	}

	ranked, err := buildScorer(t).ScoreNodes(request, r, candidates, nil)
	require.NoError(t, err)

	assert.Equal(t, "W2", ranked[0].NodeCode)
	assert.Equal(t, preferredNodeBonus, ranked[0].PreferredBonus)
}

func Test_ScoreNodes_ExcludedNodeDropped(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 1})

	predicate, err := rule.NewPredicate(nil, nil, nil, nil, nil, "", nil, []string{"W1"})
	require.NoError(t, err)
	r := buildRule(t, rule.Nearest, predicate)

	candidates := []Candidate{
		buildCandidate(t, "W1", "400070", "400001", 1, map[kernel.UUID]int{productP: 5}),
		buildCandidate(t, "W2", "400080", "400001", 2, map[kernel.UUID]int{productP: 5}),
	}

	ranked, err := buildScorer(t).ScoreNodes(request, r, candidates, nil)
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, "W2", ranked[0].NodeCode)
}

func Test_ScoreNodes_Fixed(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 1})

	candidates := []Candidate{
		buildCandidate(t, "W1", "400070", "400001", 1, map[kernel.UUID]int{productP: 5}),
		buildCandidate(t, "W2", "400080", "400001", 2, map[kernel.UUID]int{productP: 5}),
	}

	t.Run("only the designated node is scored", func(t *testing.T) {
		predicate, err := rule.NewPredicate(nil, nil, nil, nil, nil, "W2", nil, nil)
		require.NoError(t, err)
		r := buildRule(t, rule.Fixed, predicate)

		ranked, err := buildScorer(t).ScoreNodes(request, r, candidates, nil)
		require.NoError(t, err)

		require.Len(t, ranked, 1)
		assert.Equal(t, "W2", ranked[0].NodeCode)
	})

	t.Run("missing target is a misconfiguration", func(t *testing.T) {
		r := buildRule(t, rule.Fixed, rule.Predicate{})

		_, err := buildScorer(t).ScoreNodes(request, r, candidates, nil)
		assert.ErrorIs(t, err, ErrFixedTargetMissing)
	})
}

func Test_ScoreNodes_FIFOKeepsEnumerationOrder(t *testing.T) {
	productP := kernel.NewUUID()
	request := buildRequest(t, "400001", map[kernel.UUID]int{productP: 1})
	r := buildRule(t, rule.FIFO, rule.Predicate{})

	candidates := []Candidate{
		buildCandidate(t, "W3", "400070", "400001", 3, map[kernel.UUID]int{productP: 5}),
		buildCandidate(t, "W1", "400080", "400001", 1, map[kernel.UUID]int{productP: 5}),
	}

	ranked, err := buildScorer(t).ScoreNodes(request, r, candidates, nil)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "W3", ranked[0].NodeCode)
	assert.Equal(t, "W1", ranked[1].NodeCode)
}
