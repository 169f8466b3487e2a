package engine

import "github.com/aram/geneticengine/genome"

// Encoder produces a fresh Genotype, typically Problem.Encode bound to
// a particular problem instance.
type Encoder func() genome.Genotype

// ReplacementStrategy supplies a replacement Genotype for a phenotype
// that FilterStep is about to discard (too old or invalid). The default
// strategy just calls the encoder; variants may draw from the current
// population instead (e.g. copy-best).
type ReplacementStrategy interface {
	Replace(population *genome.Population, encode Encoder) genome.Genotype
}

// DefaultReplacement always calls the encoder, matching the reference's
// default replacement behavior.
type DefaultReplacement struct{}

func (DefaultReplacement) Replace(_ *genome.Population, encode Encoder) genome.Genotype {
	return encode()
}
