package objective_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
)

func score(vs ...float32) genome.Score { return genome.NewScore(vs) }

func TestDominatesMinimize(t *testing.T) {
	o := objective.Multi(objective.Minimize, objective.Minimize)

	assert.True(t, o.Dominates(score(1, 1), score(2, 2)))
	assert.False(t, o.Dominates(score(2, 2), score(1, 1)))
	assert.False(t, o.Dominates(score(1, 2), score(2, 1)))
	assert.False(t, o.Dominates(score(1, 1), score(1, 1)))
}

func TestDominatesMixedDirections(t *testing.T) {
	o := objective.Multi(objective.Minimize, objective.Maximize)

	assert.True(t, o.Dominates(score(1, 5), score(2, 4)))
	assert.False(t, o.Dominates(score(1, 4), score(2, 5)))
}

func TestIsBetterSingleMinimize(t *testing.T) {
	o := objective.Single(objective.Minimize)
	assert.True(t, o.IsBetter(score(1), score(2)))
	assert.False(t, o.IsBetter(score(2), score(1)))
}

func TestIsBetterSingleMaximize(t *testing.T) {
	o := objective.Single(objective.Maximize)
	assert.True(t, o.IsBetter(score(2), score(1)))
	assert.False(t, o.IsBetter(score(1), score(2)))
}

func TestRankPeelsFrontsByDomination(t *testing.T) {
	o := objective.Multi(objective.Minimize, objective.Minimize)
	scores := []genome.Score{
		score(1, 1), // front 0
		score(2, 2), // front 1 (dominated by 0)
		score(0, 3), // front 0 (non-dominated vs 1,1)
		score(3, 3), // front 2 (dominated by 2,2)
	}

	ranks := objective.Rank(scores, o)

	assert.Equal(t, 0, ranks[0])
	assert.Equal(t, 0, ranks[2])
	assert.True(t, ranks[1] >= 1)
	assert.True(t, ranks[3] > ranks[1])
}

func TestCrowdingDistanceBoundariesAreInfinite(t *testing.T) {
	scores := []genome.Score{
		score(0, 10),
		score(5, 5),
		score(10, 0),
	}

	distances := objective.CrowdingDistance(scores)

	require.Len(t, distances, 3)
	assert.True(t, math.IsInf(float64(distances[0]), 1))
	assert.True(t, math.IsInf(float64(distances[2]), 1))
	assert.False(t, math.IsInf(float64(distances[1]), 0))
	assert.True(t, distances[1] > 0)
}

func TestCrowdingDistanceZeroRangeDimensionSkipped(t *testing.T) {
	scores := []genome.Score{
		score(1, 5),
		score(1, 3),
		score(1, 9),
	}

	distances := objective.CrowdingDistance(scores)

	for _, d := range distances {
		assert.False(t, math.IsNaN(float64(d)))
	}
}

func TestWeightsFavorsLowerRankAndHigherCrowding(t *testing.T) {
	o := objective.Multi(objective.Minimize, objective.Minimize)
	scores := []genome.Score{
		score(0, 0), // best front, boundary
		score(1, 1), // dominated, worse rank
		score(5, 5), // dominated, worse rank
	}

	weights := objective.Weights(scores, o)

	require.Len(t, weights, 3)
	assert.True(t, weights[0] >= weights[1])
	assert.True(t, weights[0] >= weights[2])
}

func newScoredPopulation(scores ...genome.Score) *genome.Population {
	individuals := make([]*genome.Phenotype, len(scores))
	for i, s := range scores {
		ph := genome.NewPhenotype(genome.NewGenotype(nil), 0)
		ph.SetScore(s)
		individuals[i] = ph
	}
	return genome.NewPopulation(individuals)
}

func TestSortSingleObjectiveAscending(t *testing.T) {
	o := objective.Single(objective.Minimize)
	p := newScoredPopulation(score(3), score(1), score(2))

	o.Sort(p)

	s0, _ := p.Get(0).Score()
	s2, _ := p.Get(2).Score()
	assert.Equal(t, float32(1), s0.AsF32())
	assert.Equal(t, float32(3), s2.AsF32())
}

func TestSortMultiObjectiveRanksBestFrontFirst(t *testing.T) {
	o := objective.Multi(objective.Minimize, objective.Minimize)
	p := newScoredPopulation(score(5, 5), score(1, 1), score(9, 9))

	o.Sort(p)

	best, _ := p.Get(0).Score()
	assert.Equal(t, []float32{1, 1}, best.Values())
}

func TestSortIsIdempotentOnceMarkedSorted(t *testing.T) {
	o := objective.Single(objective.Minimize)
	p := newScoredPopulation(score(3), score(1), score(2))

	o.Sort(p)
	require.True(t, p.IsSorted())
	before := p.Individuals()[0]

	o.Sort(p)
	assert.Same(t, before, p.Individuals()[0])
}
