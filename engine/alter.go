package engine

import (
	"time"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/random"
	"github.com/aram/geneticengine/stats"
)

// minPopulationSizeForCrossover and minParentsForCrossover mirror the
// reference's MIN_POPULATION_SIZE/MIN_NUM_PARENTS constants in
// original_source/crates/radiate-core/src/alter.rs: crossover is
// skipped, without error, when the population is too small to draw
// distinct parents from.
const (
	minPopulationSizeForCrossover = 3
	minParentsForCrossover        = 2
)

// Alter mutates a Population in place and returns any metrics produced.
// Mutate and Crossover (below) are the two concrete shapes the engine
// drives by default; a bespoke Alter can implement this interface
// directly for anything else.
type Alter interface {
	// Rate is the alterer's intended activation probability/fraction.
	Rate() float32
	// Name identifies the alterer for metric keys.
	Name() string
	// Apply mutates population in place, tagging any phenotype it
	// touches with Invalidate(generation), and returns the metrics it
	// produced.
	Apply(population *genome.Population, generation int, rng *random.Source) []stats.Metric
}

// GeneMutator mutates a single gene, used by the default Mutate driver.
// The reference implementation (operators.UniformMutator) draws a fresh
// sibling gene via Gene.NewInstance - a bespoke mutator can implement
// MutateGene for domain-specific perturbation (e.g. bounded jitter
// instead of a fresh draw).
type GeneMutator interface {
	Rate() float32
	Name() string
	MutateGene(g genome.Gene, rng *random.Source) genome.Gene
}

// RunMutate drives a GeneMutator across a population: for every gene in
// every chromosome of every phenotype, flip a rate-weighted coin and
// replace the gene if it hits. Any phenotype touched is invalidated
// for generation, per the conservative "invalidate on any touch" policy
// (spec §9 Open Questions) - even if the replacement gene happens to
// carry the same allele.
func RunMutate(m GeneMutator, population *genome.Population, generation int, rng *random.Source) []stats.Metric {
	timer := time.Now()
	rate := m.Rate()
	count := 0

	population.RangeMut(func(_ int, ph *genome.Phenotype) {
		g := ph.Genotype()
		touched := false
		for ci := 0; ci < g.Len(); ci++ {
			c := g.Chromosome(ci)
			for gi := 0; gi < c.Len(); gi++ {
				if rng.Bool(rate) {
					c.SetGene(gi, m.MutateGene(c.Gene(gi), rng))
					count++
					touched = true
				}
			}
		}
		if touched {
			ph.Invalidate(generation)
		}
	})

	metric := stats.NewMetric(m.Name()).Upsert(stats.Operation{Value: float32(count), Elapsed: time.Since(timer)})
	return []stats.Metric{metric}
}

// ChromosomeCrossover crosses two chromosomes gene-by-gene, used by the
// default Crossover driver.
type ChromosomeCrossover interface {
	Rate() float32
	Name() string
	// CrossChromosomes mutates one and two in place, returning the
	// number of genes it altered.
	CrossChromosomes(one, two genome.Chromosome, rng *random.Source) int
}

// RunCrossover drives a ChromosomeCrossover across a population,
// following the reference's default crossover algorithm: for each
// index i, flip a rate-weighted coin; on a hit, draw a distinct partner
// via random.IndividualIndexes and cross one randomly chosen chromosome
// pair between the two phenotypes. Skips entirely, without error, when
// the population is too small (spec §4.6.3).
func RunCrossover(c ChromosomeCrossover, population *genome.Population, generation int, rng *random.Source) []stats.Metric {
	timer := time.Now()
	rate := c.Rate()
	count := 0

	n := population.Len()
	if n > minPopulationSizeForCrossover {
		for i := 0; i < n; i++ {
			if !rng.Bool(rate) {
				continue
			}
			indexes := rng.IndividualIndexes(i, n, minParentsForCrossover)
			if len(indexes) < minParentsForCrossover {
				continue
			}
			one, two := population.GetPairMut(indexes[0], indexes[1])
			geno1, geno2 := one.Genotype(), two.Genotype()
			minLen := geno1.Len()
			if geno2.Len() < minLen {
				minLen = geno2.Len()
			}
			if minLen == 0 {
				continue
			}
			chromIdx := rng.Range(0, minLen)
			changed := c.CrossChromosomes(geno1.Chromosome(chromIdx), geno2.Chromosome(chromIdx), rng)
			if changed > 0 {
				one.Invalidate(generation)
				two.Invalidate(generation)
				count += changed
			}
		}
	}

	metric := stats.NewMetric(c.Name()).Upsert(stats.Operation{Value: float32(count), Elapsed: time.Since(timer)})
	return []stats.Metric{metric}
}
