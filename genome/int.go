package genome

import "github.com/aram/geneticengine/random"

// IntGene, IntChromosome, and IntCodec below are reference
// implementations of the Gene/Chromosome/Codec contracts, not part of
// the engine's required surface (see spec's Non-goals). They exist so
// the engine's steps and the end-to-end test scenarios have a concrete
// genome to exercise, the way the teacher repo ships TSPChromosome
// alongside its abstract Chromosome interface. Grounded in
// original_source/crates/radiate-core/src/codecs/int.rs and the
// glossary's value-range-vs-bounds distinction.

// IntGene is an integer gene with a value range (the distribution used
// to draw fresh alleles) and a bounds range (the validity interval).
// Bounds may be wider than the value range, letting alterers push
// alleles outside the draw distribution while the gene stays valid.
type IntGene struct {
	allele    int
	min, max  int // value range, used by NewInstance
	boundsMin int
	boundsMax int
}

// NewIntGene constructs an IntGene carrying the given allele, with value
// range [min, max] and bounds defaulting to the same range.
func NewIntGene(allele, min, max int) IntGene {
	return IntGene{allele: allele, min: min, max: max, boundsMin: min, boundsMax: max}
}

// WithBounds returns a copy of the gene with a distinct validity range.
func (g IntGene) WithBounds(min, max int) IntGene {
	g.boundsMin, g.boundsMax = min, max
	return g
}

func (g IntGene) Allele() any { return g.allele }

func (g IntGene) NewInstance(rng *random.Source) Gene {
	g.allele = rng.IntRange(g.min, g.max)
	return g
}

func (g IntGene) WithAllele(allele any) Gene {
	g.allele = allele.(int)
	return g
}

func (g IntGene) IsValid() bool {
	return g.allele >= g.boundsMin && g.allele <= g.boundsMax
}

// Min returns the value-range lower bound used to draw new instances.
func (g IntGene) Min() int { return g.min }

// Max returns the value-range upper bound used to draw new instances.
func (g IntGene) Max() int { return g.max }

// IntValue returns the gene's allele as a plain int.
func (g IntGene) IntValue() int { return g.allele }

// Mean returns a new gene whose allele is the integer mean of g and other.
func (g IntGene) Mean(other IntGene) IntGene {
	g.allele = (g.allele + other.allele) / 2
	return g
}

// IntChromosome is an ordered sequence of IntGenes.
type IntChromosome struct {
	genes []IntGene
}

// NewIntChromosome wraps a slice of IntGenes.
func NewIntChromosome(genes []IntGene) *IntChromosome {
	return &IntChromosome{genes: genes}
}

// NewRandomIntChromosome draws count fresh IntGenes in [min,max], all
// sharing the same bounds.
func NewRandomIntChromosome(rng *random.Source, count, min, max, boundsMin, boundsMax int) *IntChromosome {
	genes := make([]IntGene, count)
	for i := range genes {
		genes[i] = NewIntGene(rng.IntRange(min, max), min, max).WithBounds(boundsMin, boundsMax)
	}
	return &IntChromosome{genes: genes}
}

func (c *IntChromosome) Len() int { return len(c.genes) }

func (c *IntChromosome) Gene(i int) Gene { return c.genes[i] }

func (c *IntChromosome) SetGene(i int, g Gene) { c.genes[i] = g.(IntGene) }

func (c *IntChromosome) IsValid() bool {
	for _, g := range c.genes {
		if !g.IsValid() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, its own backing gene slice, so mutating
// the clone through SetGene never affects c.
func (c *IntChromosome) Clone() Chromosome {
	genes := make([]IntGene, len(c.genes))
	copy(genes, c.genes)
	return &IntChromosome{genes: genes}
}

// Values returns the chromosome's alleles as a plain []int.
func (c *IntChromosome) Values() []int {
	values := make([]int, len(c.genes))
	for i, g := range c.genes {
		values[i] = g.allele
	}
	return values
}
