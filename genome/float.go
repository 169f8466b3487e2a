package genome

import "github.com/aram/geneticengine/random"

// FloatGene and FloatChromosome mirror IntGene/IntChromosome for
// float64 alleles, grounded in
// original_source/crates/radiate-core/src/genome/chromosomes/float.rs
// and codecs/float.rs. They back the two-objective end-to-end scenario
// test in the engine package.
type FloatGene struct {
	allele    float64
	min, max  float64
	boundsMin float64
	boundsMax float64
}

// NewFloatGene constructs a FloatGene with the given allele and value
// range, bounds defaulting to the same range.
func NewFloatGene(allele, min, max float64) FloatGene {
	return FloatGene{allele: allele, min: min, max: max, boundsMin: min, boundsMax: max}
}

// WithBounds returns a copy of the gene with a distinct validity range.
func (g FloatGene) WithBounds(min, max float64) FloatGene {
	g.boundsMin, g.boundsMax = min, max
	return g
}

func (g FloatGene) Allele() any { return g.allele }

func (g FloatGene) NewInstance(rng *random.Source) Gene {
	g.allele = g.min + rng.Float64()*(g.max-g.min)
	return g
}

func (g FloatGene) WithAllele(allele any) Gene {
	g.allele = allele.(float64)
	return g
}

func (g FloatGene) IsValid() bool {
	return g.allele >= g.boundsMin && g.allele <= g.boundsMax
}

// Min returns the value-range lower bound.
func (g FloatGene) Min() float64 { return g.min }

// Max returns the value-range upper bound.
func (g FloatGene) Max() float64 { return g.max }

// FloatValue returns the gene's allele as a plain float64.
func (g FloatGene) FloatValue() float64 { return g.allele }

// Mean returns a new gene whose allele is the arithmetic mean of g and other.
func (g FloatGene) Mean(other FloatGene) FloatGene {
	g.allele = (g.allele + other.allele) / 2
	return g
}

// FloatChromosome is an ordered sequence of FloatGenes.
type FloatChromosome struct {
	genes []FloatGene
}

// NewFloatChromosome wraps a slice of FloatGenes.
func NewFloatChromosome(genes []FloatGene) *FloatChromosome {
	return &FloatChromosome{genes: genes}
}

// NewRandomFloatChromosome draws count fresh FloatGenes in [min,max],
// all sharing the same bounds.
func NewRandomFloatChromosome(rng *random.Source, count int, min, max, boundsMin, boundsMax float64) *FloatChromosome {
	genes := make([]FloatGene, count)
	for i := range genes {
		allele := min + rng.Float64()*(max-min)
		genes[i] = NewFloatGene(allele, min, max).WithBounds(boundsMin, boundsMax)
	}
	return &FloatChromosome{genes: genes}
}

func (c *FloatChromosome) Len() int { return len(c.genes) }

func (c *FloatChromosome) Gene(i int) Gene { return c.genes[i] }

func (c *FloatChromosome) SetGene(i int, g Gene) { c.genes[i] = g.(FloatGene) }

func (c *FloatChromosome) IsValid() bool {
	for _, g := range c.genes {
		if !g.IsValid() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, its own backing gene slice, so mutating
// the clone through SetGene never affects c.
func (c *FloatChromosome) Clone() Chromosome {
	genes := make([]FloatGene, len(c.genes))
	copy(genes, c.genes)
	return &FloatChromosome{genes: genes}
}

// Values returns the chromosome's alleles as a plain []float64.
func (c *FloatChromosome) Values() []float64 {
	values := make([]float64, len(c.genes))
	for i, g := range c.genes {
		values[i] = g.allele
	}
	return values
}
