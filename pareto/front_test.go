package pareto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/pareto"
)

func minMin() objective.Objective { return objective.Multi(objective.Minimize, objective.Minimize) }

func phenotype(scores ...float32) *genome.Phenotype {
	return phenotypeAt(0, scores...)
}

func phenotypeAt(generation int, scores ...float32) *genome.Phenotype {
	ph := genome.NewPhenotype(genome.NewGenotype(nil), generation)
	ph.SetScore(genome.NewScore(scores))
	return ph
}

func scoreOf(p *genome.Phenotype) (genome.Score, bool) { return p.Score() }

func TestFrontDominatesRejectsWhenAnyMemberDominates(t *testing.T) {
	front := pareto.New(1, 10, scoreOf)
	a := phenotype(1, 1)
	ok, removed := front.Dominates(a, minMin())
	require.True(t, ok)
	require.Empty(t, removed)
	front.Clean([]*genome.Phenotype{a}, nil)

	worse := phenotype(2, 2)
	ok, removed = front.Dominates(worse, minMin())
	assert.False(t, ok)
	assert.Empty(t, removed)
}

func TestFrontDominatesReturnsDominatedMembers(t *testing.T) {
	front := pareto.New(1, 10, scoreOf)
	a := phenotype(2, 2)
	front.Clean([]*genome.Phenotype{a}, nil)

	better := phenotype(1, 1)
	ok, removed := front.Dominates(better, minMin())
	require.True(t, ok)
	require.Len(t, removed, 1)
	assert.Same(t, a, removed[0])
}

func TestFrontCleanTrimsByLowestCrowdingDistance(t *testing.T) {
	front := pareto.New(1, 3, scoreOf)
	members := []*genome.Phenotype{
		phenotype(0, 4),
		phenotype(1, 3),
		phenotype(2, 2),
		phenotype(3, 1),
		phenotype(4, 0),
	}
	front.Clean(members, nil)

	assert.LessOrEqual(t, front.Len(), 3)
	assert.GreaterOrEqual(t, front.Len(), 1)

	kept := front.Members()
	for i := 0; i < len(kept); i++ {
		for j := i + 1; j < len(kept); j++ {
			si, _ := kept[i].Score()
			sj, _ := kept[j].Score()
			assert.False(t, minMin().Dominates(si, sj))
			assert.False(t, minMin().Dominates(sj, si))
		}
	}
}

func TestFrontCleanRemovesByIdentity(t *testing.T) {
	front := pareto.New(1, 10, scoreOf)
	a := phenotype(1, 1)
	b := phenotype(2, 0)
	front.Clean([]*genome.Phenotype{a, b}, nil)
	require.Equal(t, 2, front.Len())

	front.Clean(nil, []*genome.Phenotype{a})
	require.Equal(t, 1, front.Len())
	assert.Same(t, b, front.Members()[0])
}

func TestFrontIncrementalInsertionStaysNonDominated(t *testing.T) {
	front := pareto.New(1, 1000, scoreOf)
	points := [][2]float32{
		{5, 1}, {1, 5}, {3, 3}, {4, 4}, {2, 2},
		{0, 6}, {6, 0}, {3, 1}, {1, 3}, {2, 5},
	}

	for _, pt := range points {
		p := phenotype(pt[0], pt[1])
		ok, removed := front.Dominates(p, minMin())
		if ok {
			front.Clean([]*genome.Phenotype{p}, removed)
		}

		members := front.Members()
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				si, _ := members[i].Score()
				sj, _ := members[j].Score()
				assert.False(t, minMin().Dominates(si, sj))
				assert.False(t, minMin().Dominates(sj, si))
			}
		}
	}
}
