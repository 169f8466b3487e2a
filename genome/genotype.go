package genome

// Genotype is an ordered sequence of Chromosomes. Because Chromosome
// implementations are held behind pointer receivers, a Genotype's
// slice of Chromosome values is already non-aliasing per index, so
// GetPairMut needs none of the split-borrow gymnastics the reference
// implementation uses (original_source/crates/radiate-core/src/genome/population.rs) -
// it is a direct double index.
type Genotype struct {
	chromosomes []Chromosome
}

// NewGenotype wraps a slice of Chromosomes as a Genotype.
func NewGenotype(chromosomes []Chromosome) Genotype {
	return Genotype{chromosomes: chromosomes}
}

// Len returns the number of chromosomes.
func (g Genotype) Len() int { return len(g.chromosomes) }

// IsZero reports whether the Genotype holds no chromosomes, the state
// a Phenotype is left in between TakeGenotype and SetGenotype.
func (g Genotype) IsZero() bool { return g.chromosomes == nil }

// Chromosome returns the chromosome at index i.
func (g Genotype) Chromosome(i int) Chromosome { return g.chromosomes[i] }

// SetChromosome replaces the chromosome at index i.
func (g Genotype) SetChromosome(i int, c Chromosome) { g.chromosomes[i] = c }

// GetPairMut returns the chromosomes at two distinct indices for
// crossover-style operations.
func (g Genotype) GetPairMut(i, j int) (Chromosome, Chromosome) {
	return g.chromosomes[i], g.chromosomes[j]
}

// IsValid reports whether every chromosome in the genotype is valid.
func (g Genotype) IsValid() bool {
	for _, c := range g.chromosomes {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// Chromosomes returns the underlying slice. Callers iterating for
// read-only purposes should prefer this; mutation through it is the
// caller's responsibility same as the reference's iter_mut.
func (g Genotype) Chromosomes() []Chromosome { return g.chromosomes }

// Clone returns a deep copy: a fresh chromosomes slice holding a
// Chromosome.Clone() of each entry, so the copy shares no gene storage
// with g. Used by Phenotype.Clone to isolate a selected individual from
// every other phenotype that may have been drawn from the same parent.
func (g Genotype) Clone() Genotype {
	if g.chromosomes == nil {
		return Genotype{}
	}
	chromosomes := make([]Chromosome, len(g.chromosomes))
	for i, c := range g.chromosomes {
		chromosomes[i] = c.Clone()
	}
	return Genotype{chromosomes: chromosomes}
}
