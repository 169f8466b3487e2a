package genome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/genome"
)

func TestPhenotypeUnevaluatedByDefault(t *testing.T) {
	ph := genome.NewPhenotype(genome.NewGenotype(nil), 0)
	assert.False(t, ph.IsEvaluated())

	_, ok := ph.Score()
	assert.False(t, ok)
}

func TestPhenotypeSetScoreMarksEvaluated(t *testing.T) {
	ph := genome.NewPhenotype(genome.NewGenotype(nil), 0)
	ph.SetScore(genome.ScoreFromFloat32(9))

	score, ok := ph.Score()
	require.True(t, ok)
	assert.Equal(t, float32(9), score.AsF32())
	assert.True(t, ph.IsEvaluated())
}

func TestPhenotypeInvalidateClearsScoreAndRestampsGeneration(t *testing.T) {
	ph := genome.NewPhenotype(genome.NewGenotype(nil), 0)
	ph.SetScore(genome.ScoreFromFloat32(1))

	ph.Invalidate(5)

	assert.False(t, ph.IsEvaluated())
	assert.Equal(t, 5, ph.Generation())
}

func TestPhenotypeTakeGenotypeLeavesZeroGenotype(t *testing.T) {
	chrom := genome.NewIntChromosome([]genome.IntGene{genome.NewIntGene(1, 0, 10)})
	g := genome.NewGenotype([]genome.Chromosome{chrom})
	ph := genome.NewPhenotype(g, 0)

	taken := ph.TakeGenotype()

	assert.False(t, taken.IsZero())
	assert.True(t, ph.Genotype().IsZero())

	ph.SetGenotype(taken)
	assert.False(t, ph.Genotype().IsZero())
}

func TestPhenotypeAge(t *testing.T) {
	ph := genome.NewPhenotype(genome.NewGenotype(nil), 3)
	assert.Equal(t, 7, ph.Age(10))
}

func TestPhenotypeCloneIsIndependentScore(t *testing.T) {
	ph := genome.NewPhenotype(genome.NewGenotype(nil), 0)
	ph.SetScore(genome.ScoreFromFloat32(1))

	clone := ph.Clone()
	clone.SetScore(genome.ScoreFromFloat32(2))

	original, _ := ph.Score()
	cloned, _ := clone.Score()
	assert.Equal(t, float32(1), original.AsF32())
	assert.Equal(t, float32(2), cloned.AsF32())
}

func TestPhenotypeCloneDeepCopiesGenotypeGenes(t *testing.T) {
	chrom := genome.NewIntChromosome([]genome.IntGene{genome.NewIntGene(1, 0, 10)})
	ph := genome.NewPhenotype(genome.NewGenotype([]genome.Chromosome{chrom}), 0)
	ph.SetScore(genome.ScoreFromFloat32(1))

	clone := ph.Clone()

	// Mutating the clone's chromosome in place - the same thing an
	// alterer's SetGene does - must never be visible through the
	// original's genotype, even though both started from the same
	// IntChromosome.
	clone.Genotype().Chromosome(0).SetGene(0, genome.NewIntGene(99, 0, 10))

	originalValue := ph.Genotype().Chromosome(0).Gene(0).Allele().(int)
	clonedValue := clone.Genotype().Chromosome(0).Gene(0).Allele().(int)
	assert.Equal(t, 1, originalValue)
	assert.Equal(t, 99, clonedValue)

	// The original's score must still be intact: a mutation to the
	// clone's genotype has no business invalidating a phenotype it was
	// never applied to.
	score, ok := ph.Score()
	require.True(t, ok)
	assert.Equal(t, float32(1), score.AsF32())
}
