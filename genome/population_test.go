package genome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/genome"
)

func newEvaluatedPopulation(scores ...float32) *genome.Population {
	individuals := make([]*genome.Phenotype, len(scores))
	for i, s := range scores {
		ph := genome.NewPhenotype(genome.NewGenotype(nil), 0)
		ph.SetScore(genome.ScoreFromFloat32(s))
		individuals[i] = ph
	}
	return genome.NewPopulation(individuals)
}

func TestPopulationSortBySetsSortedFlag(t *testing.T) {
	p := newEvaluatedPopulation(3, 1, 2)
	assert.False(t, p.IsSorted())

	p.SortBy(func(a, b *genome.Phenotype) bool {
		sa, _ := a.Score()
		sb, _ := b.Score()
		return sa.Less(sb)
	})

	require.True(t, p.IsSorted())
	s0, _ := p.Get(0).Score()
	s2, _ := p.Get(2).Score()
	assert.Equal(t, float32(1), s0.AsF32())
	assert.Equal(t, float32(3), s2.AsF32())
}

func TestPopulationSortByIsNoOpWhenAlreadySorted(t *testing.T) {
	p := newEvaluatedPopulation(1, 2, 3)
	p.SortBy(func(a, b *genome.Phenotype) bool {
		sa, _ := a.Score()
		sb, _ := b.Score()
		return sa.Less(sb)
	})
	before := p.Individuals()[0]

	// A less func that would reverse order must not run, since the
	// population is already marked sorted.
	p.SortBy(func(a, b *genome.Phenotype) bool { return true })

	assert.Same(t, before, p.Individuals()[0])
}

func TestPopulationGetMutClearsSorted(t *testing.T) {
	p := newEvaluatedPopulation(1, 2, 3)
	p.SortBy(func(a, b *genome.Phenotype) bool {
		sa, _ := a.Score()
		sb, _ := b.Score()
		return sa.Less(sb)
	})
	require.True(t, p.IsSorted())

	p.GetMut(0)
	assert.False(t, p.IsSorted())
}

func TestPopulationReplaceAllMarksSorted(t *testing.T) {
	p := newEvaluatedPopulation(1, 2, 3)
	reordered := []*genome.Phenotype{p.Get(2), p.Get(1), p.Get(0)}

	p.ReplaceAll(reordered)

	assert.True(t, p.IsSorted())
	assert.Same(t, reordered[0], p.Get(0))
}

func TestPopulationScoresSkipsUnevaluated(t *testing.T) {
	individuals := []*genome.Phenotype{
		genome.NewPhenotype(genome.NewGenotype(nil), 0),
		genome.NewPhenotype(genome.NewGenotype(nil), 0),
	}
	individuals[0].SetScore(genome.ScoreFromFloat32(5))
	p := genome.NewPopulation(individuals)

	scores := p.Scores()
	require.Len(t, scores, 1)
	assert.Equal(t, float32(5), scores[0].AsF32())
}

func TestPopulationClonePreservesSortedState(t *testing.T) {
	p := newEvaluatedPopulation(1, 2, 3)
	p.SortBy(func(a, b *genome.Phenotype) bool {
		sa, _ := a.Score()
		sb, _ := b.Score()
		return sa.Less(sb)
	})

	clone := p.Clone()
	assert.True(t, clone.IsSorted())
	assert.Equal(t, p.Len(), clone.Len())
}
