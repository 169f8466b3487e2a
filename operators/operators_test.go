package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/operators"
	"github.com/aram/geneticengine/random"
)

func intPopulation(rng *random.Source, n, genesPerChromosome int) *genome.Population {
	individuals := make([]*genome.Phenotype, n)
	for i := range individuals {
		c := genome.NewRandomIntChromosome(rng, genesPerChromosome, 0, 10, 0, 10)
		ph := genome.NewPhenotype(genome.NewGenotype([]genome.Chromosome{c}), 0)
		ph.SetScore(genome.ScoreFromInt(i))
		individuals[i] = ph
	}
	return genome.NewPopulation(individuals)
}

func TestTournamentSelectorReturnsRequestedCount(t *testing.T) {
	rng := random.NewSeeded(11)
	population := intPopulation(rng, 10, 3)
	selector := operators.NewTournamentSelector(3, rng)

	selected := selector.Select(population, objective.Single(objective.Maximize), 5)
	assert.Equal(t, 5, selected.Len())
}

func TestRouletteSelectorReturnsRequestedCount(t *testing.T) {
	rng := random.NewSeeded(12)
	population := intPopulation(rng, 10, 3)
	selector := operators.NewRouletteSelector(rng)

	selected := selector.Select(population, objective.Single(objective.Maximize), 7)
	assert.Equal(t, 7, selected.Len())
}

func TestRankSelectorReturnsRequestedCount(t *testing.T) {
	rng := random.NewSeeded(13)
	population := intPopulation(rng, 10, 3)
	selector := operators.NewRankSelector(rng)

	selected := selector.Select(population, objective.Single(objective.Maximize), 4)
	assert.Equal(t, 4, selected.Len())
}

func TestUniformMutatorWithZeroRateNeverTouchesGenotypes(t *testing.T) {
	rng := random.NewSeeded(14)
	population := intPopulation(rng, 5, 4)
	before := make([][]int, population.Len())
	for i := 0; i < population.Len(); i++ {
		before[i] = population.Get(i).Genotype().Chromosome(0).(*genome.IntChromosome).Values()
	}

	mutator := operators.NewUniformMutator(0)
	mutator.Apply(population, 1, rng)

	for i := 0; i < population.Len(); i++ {
		after := population.Get(i).Genotype().Chromosome(0).(*genome.IntChromosome).Values()
		assert.Equal(t, before[i], after)
		_, ok := population.Get(i).Score()
		assert.True(t, ok, "rate=0 mutation must not invalidate any phenotype's score")
	}
}

func TestOrderCrossoverProducesValidPermutations(t *testing.T) {
	rng := random.NewSeeded(15)
	n := 6
	c1 := genome.NewIntChromosome(permutationGenes(rng, n))
	c2 := genome.NewIntChromosome(permutationGenes(rng, n))

	crossover := operators.NewOrderCrossover(1)
	changed := crossover.CrossChromosomes(c1, c2, rng)
	require.Greater(t, changed, 0)

	assertIsPermutation(t, c1.Values(), n)
	assertIsPermutation(t, c2.Values(), n)
}

func permutationGenes(rng *random.Source, n int) []genome.IntGene {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	genes := make([]genome.IntGene, n)
	for i, v := range perm {
		genes[i] = genome.NewIntGene(v, 0, n-1)
	}
	return genes
}

func assertIsPermutation(t *testing.T, values []int, n int) {
	t.Helper()
	seen := make(map[int]bool, n)
	for _, v := range values {
		assert.False(t, seen[v], "duplicate value %d in permutation", v)
		seen[v] = true
	}
	assert.Len(t, seen, n)
}

func TestSwapMutatorPreservesPermutationValidity(t *testing.T) {
	rng := random.NewSeeded(16)
	n := 8
	c := genome.NewIntChromosome(permutationGenes(rng, n))
	ph := genome.NewPhenotype(genome.NewGenotype([]genome.Chromosome{c}), 0)
	ph.SetScore(genome.ScoreFromInt(0))
	population := genome.NewPopulation([]*genome.Phenotype{ph})

	mutator := operators.NewSwapMutator(1)
	mutator.Apply(population, 1, rng)

	assertIsPermutation(t, c.Values(), n)
	_, ok := ph.Score()
	assert.False(t, ok, "a rate=1 swap must invalidate the phenotype")
}
