// Package genome implements the engine's data model: Gene, Chromosome,
// Genotype, Phenotype, Population, Score, and Species, plus a small set
// of reference Gene/Chromosome/Codec implementations (integer and float
// vectors) that exist only to exercise the abstract contracts in tests
// and the demo command — see the doc comments on IntGene and FloatGene.
package genome

import "github.com/aram/geneticengine/random"

// Gene is an atomic unit of heritable information. Implementations
// carry a concrete allele type internally and expose it through `any`
// so the engine can remain polymorphic over Chromosome without Go
// generics threading a type parameter through every interface in the
// package (selectors, alterers, codecs all become simpler for it).
type Gene interface {
	// Allele returns the gene's current value.
	Allele() any
	// NewInstance draws a fresh sibling gene from the same
	// distribution/domain, using rng for any randomness required.
	NewInstance(rng *random.Source) Gene
	// WithAllele returns a copy of the gene carrying a new allele but
	// keeping the same domain/bounds.
	WithAllele(allele any) Gene
	// IsValid reports whether the allele lies within the gene's
	// semantic bounds.
	IsValid() bool
}

// Chromosome is an ordered, random-access sequence of Genes of a
// single type.
type Chromosome interface {
	// Len returns the number of genes.
	Len() int
	// Gene returns the gene at index i.
	Gene(i int) Gene
	// SetGene replaces the gene at index i.
	SetGene(i int, g Gene)
	// IsValid reports whether every gene in the chromosome is valid.
	IsValid() bool
	// Clone returns a deep copy: the returned Chromosome shares no
	// backing storage with the receiver, so mutating one through
	// SetGene never affects the other. Required so Phenotype.Clone can
	// isolate a selected individual from the population it was drawn
	// from (see genome/phenotype.go).
	Clone() Chromosome
}
