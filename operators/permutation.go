package operators

import (
	"time"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/random"
	"github.com/aram/geneticengine/stats"
)

// SwapMutator swaps two random gene positions within a single-chromosome
// permutation individual, preserving permutation validity (unlike a
// per-gene GeneMutator, which would redraw one gene independently and
// risk a duplicate). Grounded in the teacher's TSPChromosome.Mutate
// (original ga/tsp.go), generalized from City slices to any
// PermutationCodec-encoded chromosome.
type SwapMutator struct {
	rate float32
}

func NewSwapMutator(rate float32) *SwapMutator {
	return &SwapMutator{rate: rate}
}

func (m *SwapMutator) Rate() float32 { return m.rate }
func (m *SwapMutator) Name() string  { return "swap_mutator" }

func (m *SwapMutator) Apply(population *genome.Population, generation int, rng *random.Source) []stats.Metric {
	timer := time.Now()
	count := 0

	population.RangeMut(func(_ int, ph *genome.Phenotype) {
		if !rng.Bool(m.rate) {
			return
		}
		g := ph.Genotype()
		c := g.Chromosome(0)
		n := c.Len()
		if n < 2 {
			return
		}
		i := rng.Choose(n)
		j := rng.Choose(n)
		for j == i {
			j = rng.Choose(n)
		}
		gi, gj := c.Gene(i), c.Gene(j)
		c.SetGene(i, gj)
		c.SetGene(j, gi)
		count++
		ph.Invalidate(generation)
	})

	metric := stats.NewMetric(m.Name()).Upsert(stats.Operation{Value: float32(count), Elapsed: time.Since(timer)})
	return []stats.Metric{metric}
}

// OrderCrossover implements OX1 (order crossover) for single-chromosome
// permutation individuals: a random segment is copied verbatim from one
// parent, then the remaining positions are filled from the other parent
// in order, skipping values already placed. Ported from the teacher's
// TSPChromosome.Crossover (original ga/tsp.go), generalized from a City
// route to a plain int permutation and extended to produce two children
// (one per parent order) instead of one, matching
// engine.RunCrossover's both-invalidated contract.
type OrderCrossover struct {
	rate float32
}

func NewOrderCrossover(rate float32) *OrderCrossover {
	return &OrderCrossover{rate: rate}
}

func (c *OrderCrossover) Rate() float32 { return c.rate }
func (c *OrderCrossover) Name() string  { return "order_crossover" }

func (c *OrderCrossover) CrossChromosomes(one, two genome.Chromosome, rng *random.Source) int {
	n := one.Len()
	if two.Len() != n || n < 2 {
		return 0
	}

	parent1 := extractInts(one)
	parent2 := extractInts(two)

	start := rng.Choose(n)
	end := rng.Choose(n)
	if start > end {
		start, end = end, start
	}

	child1 := orderCrossoverChild(parent1, parent2, start, end)
	child2 := orderCrossoverChild(parent2, parent1, start, end)

	for i := 0; i < n; i++ {
		one.SetGene(i, genome.NewIntGene(child1[i], 0, n-1))
		two.SetGene(i, genome.NewIntGene(child2[i], 0, n-1))
	}
	return n
}

func orderCrossoverChild(primary, secondary []int, start, end int) []int {
	n := len(primary)
	child := make([]int, n)
	inChild := make(map[int]bool, n)
	for i := start; i <= end; i++ {
		child[i] = primary[i]
		inChild[primary[i]] = true
	}

	childIndex := (end + 1) % n
	for i := 0; i < n; i++ {
		idx := (end + 1 + i) % n
		v := secondary[idx]
		if !inChild[v] {
			child[childIndex] = v
			childIndex = (childIndex + 1) % n
		}
	}
	return child
}

func extractInts(c genome.Chromosome) []int {
	out := make([]int, c.Len())
	for i := 0; i < c.Len(); i++ {
		out[i] = c.Gene(i).Allele().(int)
	}
	return out
}
