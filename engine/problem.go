// Package engine implements the generational engine loop: the
// Codec/Problem/Selector/Alter/ReplacementStrategy external contracts,
// the Objective-aware engine steps, and the Engine builder + run loop.
// Ported in spirit from
// original_source/crates/radiate-engines/src/engines/standard.rs and
// original_source/crates/radiate-core/src/alter.rs, translated from
// Rust's trait-generic-over-Chromosome design into Go's plain
// interface polymorphism (see DESIGN.md's Dynamic dispatch note).
package engine

import "github.com/aram/geneticengine/genome"

// Codec encodes a fresh Genotype and decodes a Genotype back into a
// problem value T. Implementations must be pure and referentially
// transparent: Encode draws fresh randomness each call, Decode never
// mutates its argument.
type Codec[T any] interface {
	Encode() genome.Genotype
	Decode(g genome.Genotype) T
}

// FitnessFn scores a decoded problem value.
type FitnessFn[T any] func(value T) genome.Score

// Problem evaluates a Genotype directly to a Score, and can still
// Encode/Decode for the engine's replacement and audit paths.
type Problem[T any] interface {
	Eval(g genome.Genotype) genome.Score
	Encode() genome.Genotype
	Decode(g genome.Genotype) T
}

// codecProblem is the default Problem: a Codec paired with a FitnessFn,
// mirroring the reference's "default Problem obtained by pairing a
// Codec with a FitnessFn" (spec §6).
type codecProblem[T any] struct {
	codec   Codec[T]
	fitness FitnessFn[T]
}

// NewProblem builds a Problem from a Codec and a FitnessFn.
func NewProblem[T any](codec Codec[T], fitness FitnessFn[T]) Problem[T] {
	return &codecProblem[T]{codec: codec, fitness: fitness}
}

func (p *codecProblem[T]) Eval(g genome.Genotype) genome.Score {
	return p.fitness(p.codec.Decode(g))
}

func (p *codecProblem[T]) Encode() genome.Genotype { return p.codec.Encode() }

func (p *codecProblem[T]) Decode(g genome.Genotype) T { return p.codec.Decode(g) }
