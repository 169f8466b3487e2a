package operators

import (
	"github.com/aram/geneticengine/engine"
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/random"
	"github.com/aram/geneticengine/stats"
)

// UniformMutator replaces a gene with a fresh sibling drawn from
// Gene.NewInstance at a fixed per-gene rate. The simplest possible
// GeneMutator, driven by engine.RunMutate.
type UniformMutator struct {
	rate float32
}

func NewUniformMutator(rate float32) *UniformMutator {
	return &UniformMutator{rate: rate}
}

func (m *UniformMutator) Rate() float32 { return m.rate }
func (m *UniformMutator) Name() string  { return "uniform_mutator" }

func (m *UniformMutator) MutateGene(g genome.Gene, rng *random.Source) genome.Gene {
	return g.NewInstance(rng)
}

func (m *UniformMutator) Apply(population *genome.Population, generation int, rng *random.Source) []stats.Metric {
	return engine.RunMutate(m, population, generation, rng)
}

// UniformCrossover swaps each gene pair between two chromosomes with
// probability 0.5, the classic uniform crossover. Driven by engine.RunCrossover.
type UniformCrossover struct {
	rate float32
}

func NewUniformCrossover(rate float32) *UniformCrossover {
	return &UniformCrossover{rate: rate}
}

func (c *UniformCrossover) Rate() float32 { return c.rate }
func (c *UniformCrossover) Name() string  { return "uniform_crossover" }

func (c *UniformCrossover) CrossChromosomes(one, two genome.Chromosome, rng *random.Source) int {
	n := one.Len()
	if two.Len() < n {
		n = two.Len()
	}
	changed := 0
	for i := 0; i < n; i++ {
		if rng.Bool(0.5) {
			g1, g2 := one.Gene(i), two.Gene(i)
			one.SetGene(i, g2)
			two.SetGene(i, g1)
			changed++
		}
	}
	return changed
}

func (c *UniformCrossover) Apply(population *genome.Population, generation int, rng *random.Source) []stats.Metric {
	return engine.RunCrossover(c, population, generation, rng)
}

// MeanCrossover replaces every gene pair with each other's arithmetic
// mean, for the IntGene/FloatGene reference types. Grounded in IntGene.Mean
// and FloatGene.Mean (genome/int.go, genome/float.go); genes of any other
// concrete type are left untouched and don't count toward changed.
type MeanCrossover struct {
	rate float32
}

func NewMeanCrossover(rate float32) *MeanCrossover {
	return &MeanCrossover{rate: rate}
}

func (c *MeanCrossover) Rate() float32 { return c.rate }
func (c *MeanCrossover) Name() string  { return "mean_crossover" }

func (c *MeanCrossover) CrossChromosomes(one, two genome.Chromosome, rng *random.Source) int {
	n := one.Len()
	if two.Len() < n {
		n = two.Len()
	}
	changed := 0
	for i := 0; i < n; i++ {
		switch a := one.Gene(i).(type) {
		case genome.IntGene:
			if b, ok := two.Gene(i).(genome.IntGene); ok {
				mean := a.Mean(b)
				one.SetGene(i, mean)
				two.SetGene(i, mean)
				changed++
			}
		case genome.FloatGene:
			if b, ok := two.Gene(i).(genome.FloatGene); ok {
				mean := a.Mean(b)
				one.SetGene(i, mean)
				two.SetGene(i, mean)
				changed++
			}
		}
	}
	return changed
}

func (c *MeanCrossover) Apply(population *genome.Population, generation int, rng *random.Source) []stats.Metric {
	return engine.RunCrossover(c, population, generation, rng)
}
