package genome

import "github.com/aram/geneticengine/random"

// PermutationCodec encodes a random permutation of a fixed item set as
// a single IntChromosome of index genes, and decodes it back into the
// permuted []T. Grounded in the teacher's order-crossover TSP
// chromosome (original ga/tsp.go's TSPChromosome.Route, which held a
// permutation of City directly); here the permutation is represented
// abstractly as an index chromosome so the same codec serves any item
// type, and operators.OrderCrossover/operators.SwapMutator (not the
// codec) are what keep it a valid permutation across generations.
type PermutationCodec[T any] struct {
	rng   *random.Source
	items []T
}

// NewPermutationCodec builds a codec over items; Encode draws a random
// permutation of len(items) indices.
func NewPermutationCodec[T any](rng *random.Source, items []T) *PermutationCodec[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &PermutationCodec[T]{rng: rng, items: cp}
}

// Encode produces a Genotype with one IntChromosome holding a random
// permutation of [0, len(items)).
func (c *PermutationCodec[T]) Encode() Genotype {
	n := len(c.items)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	c.rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	genes := make([]IntGene, n)
	for i, v := range perm {
		genes[i] = NewIntGene(v, 0, n-1)
	}
	return NewGenotype([]Chromosome{&IntChromosome{genes: genes}})
}

// Decode reorders the codec's items according to the Genotype's
// permutation chromosome.
func (c *PermutationCodec[T]) Decode(g Genotype) []T {
	indices := g.Chromosome(0).(*IntChromosome).Values()
	out := make([]T, len(indices))
	for pos, idx := range indices {
		out[pos] = c.items[idx]
	}
	return out
}
