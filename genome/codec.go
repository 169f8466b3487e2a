package genome

import "github.com/aram/geneticengine/random"

// IntCodec and FloatCodec are reference Codec implementations mirroring
// the vector and matrix shapes of IntCodec in
// original_source/crates/radiate-core/src/codecs/int.rs (IntCodec has
// vector and matrix constructors, FloatCodec a vector constructor only;
// there is no scalar constructor): Encode
// produces a Genotype with a configurable number of chromosomes and
// genes per chromosome; Decode reverses it into a plain Go value.
// Codec/Problem contracts themselves live in the engine package - these
// are concrete instances of that contract, not the contract itself.
type IntCodec struct {
	rng          *random.Source
	chromosomes  int
	genesPerChr  int
	min, max     int
	boundsMin    int
	boundsMax    int
}

// NewIntVectorCodec builds a codec encoding a single chromosome of
// count integer genes in [min, max].
func NewIntVectorCodec(rng *random.Source, count, min, max int) *IntCodec {
	return &IntCodec{rng: rng, chromosomes: 1, genesPerChr: count, min: min, max: max, boundsMin: min, boundsMax: max}
}

// NewIntMatrixCodec builds a codec encoding rows chromosomes of cols
// integer genes each, in [min, max].
func NewIntMatrixCodec(rng *random.Source, rows, cols, min, max int) *IntCodec {
	return &IntCodec{rng: rng, chromosomes: rows, genesPerChr: cols, min: min, max: max, boundsMin: min, boundsMax: max}
}

// WithBounds overrides the validity range independently of the draw range.
func (c *IntCodec) WithBounds(min, max int) *IntCodec {
	c.boundsMin, c.boundsMax = min, max
	return c
}

// Encode produces a fresh Genotype of IntChromosomes.
func (c *IntCodec) Encode() Genotype {
	chromosomes := make([]Chromosome, c.chromosomes)
	for i := range chromosomes {
		chromosomes[i] = NewRandomIntChromosome(c.rng, c.genesPerChr, c.min, c.max, c.boundsMin, c.boundsMax)
	}
	return NewGenotype(chromosomes)
}

// Decode converts a Genotype of IntChromosomes into a matrix of ints.
func (c *IntCodec) Decode(g Genotype) [][]int {
	out := make([][]int, g.Len())
	for i := 0; i < g.Len(); i++ {
		out[i] = g.Chromosome(i).(*IntChromosome).Values()
	}
	return out
}

// DecodeVector decodes a single-chromosome Genotype into a flat []int.
func (c *IntCodec) DecodeVector(g Genotype) []int {
	return g.Chromosome(0).(*IntChromosome).Values()
}

// FlatIntCodec wraps a single-chromosome IntCodec and decodes straight
// to a flat []int instead of the [][]int matrix shape, so it satisfies
// an engine.Codec[[]int] directly without the caller juggling a
// single-element matrix.
type FlatIntCodec struct{ *IntCodec }

// NewFlatIntVectorCodec builds a FlatIntCodec over a single chromosome
// of count integer genes in [min, max].
func NewFlatIntVectorCodec(rng *random.Source, count, min, max int) FlatIntCodec {
	return FlatIntCodec{NewIntVectorCodec(rng, count, min, max)}
}

// Decode returns the codec's single chromosome as a flat []int.
func (c FlatIntCodec) Decode(g Genotype) []int { return c.IntCodec.DecodeVector(g) }

// FloatCodec mirrors IntCodec for float64 genes.
type FloatCodec struct {
	rng          *random.Source
	chromosomes  int
	genesPerChr  int
	min, max     float64
	boundsMin    float64
	boundsMax    float64
}

// NewFloatVectorCodec builds a codec encoding a single chromosome of
// count float genes in [min, max].
func NewFloatVectorCodec(rng *random.Source, count int, min, max float64) *FloatCodec {
	return &FloatCodec{rng: rng, chromosomes: 1, genesPerChr: count, min: min, max: max, boundsMin: min, boundsMax: max}
}

// WithBounds overrides the validity range independently of the draw range.
func (c *FloatCodec) WithBounds(min, max float64) *FloatCodec {
	c.boundsMin, c.boundsMax = min, max
	return c
}

// Encode produces a fresh Genotype of FloatChromosomes.
func (c *FloatCodec) Encode() Genotype {
	chromosomes := make([]Chromosome, c.chromosomes)
	for i := range chromosomes {
		chromosomes[i] = NewRandomFloatChromosome(c.rng, c.genesPerChr, c.min, c.max, c.boundsMin, c.boundsMax)
	}
	return NewGenotype(chromosomes)
}

// Decode converts a Genotype of FloatChromosomes into a matrix of float64.
func (c *FloatCodec) Decode(g Genotype) [][]float64 {
	out := make([][]float64, g.Len())
	for i := 0; i < g.Len(); i++ {
		out[i] = g.Chromosome(i).(*FloatChromosome).Values()
	}
	return out
}

// DecodeVector decodes a single-chromosome Genotype into a flat []float64.
func (c *FloatCodec) DecodeVector(g Genotype) []float64 {
	return g.Chromosome(0).(*FloatChromosome).Values()
}

// FlatFloatCodec wraps a single-chromosome FloatCodec and decodes
// straight to a flat []float64, mirroring FlatIntCodec.
type FlatFloatCodec struct{ *FloatCodec }

// NewFlatFloatVectorCodec builds a FlatFloatCodec over a single
// chromosome of count float genes in [min, max].
func NewFlatFloatVectorCodec(rng *random.Source, count int, min, max float64) FlatFloatCodec {
	return FlatFloatCodec{NewFloatVectorCodec(rng, count, min, max)}
}

// Decode returns the codec's single chromosome as a flat []float64.
func (c FlatFloatCodec) Decode(g Genotype) []float64 { return c.FloatCodec.DecodeVector(g) }
