package genome

import "sort"

// Population is a mutable sequence of Phenotypes with a sorted flag.
// Ported in spirit from
// original_source/crates/radiate-core/src/genome/population.rs: any
// mutable access to an element clears sorted; sorting sets it. Unlike
// the reference, Go's pointer-based Phenotype storage needs no split-
// borrow dance for GetPairMut.
type Population struct {
	individuals []*Phenotype
	sorted      bool
}

// NewPopulation wraps a slice of Phenotypes as a Population.
func NewPopulation(individuals []*Phenotype) *Population {
	return &Population{individuals: individuals}
}

// Len returns the number of individuals.
func (p *Population) Len() int { return len(p.individuals) }

// Get returns the phenotype at index i for read access.
func (p *Population) Get(i int) *Phenotype { return p.individuals[i] }

// GetMut returns the phenotype at index i and marks the population
// unsorted, since the caller is expected to mutate it.
func (p *Population) GetMut(i int) *Phenotype {
	p.sorted = false
	return p.individuals[i]
}

// Set replaces the phenotype at index i and marks the population unsorted.
func (p *Population) Set(i int, ph *Phenotype) {
	p.sorted = false
	p.individuals[i] = ph
}

// Push appends a phenotype and marks the population unsorted.
func (p *Population) Push(ph *Phenotype) {
	p.sorted = false
	p.individuals = append(p.individuals, ph)
}

// GetPairMut returns the phenotypes at two distinct indices for
// crossover-style operations, marking the population unsorted.
func (p *Population) GetPairMut(i, j int) (*Phenotype, *Phenotype) {
	p.sorted = false
	return p.individuals[i], p.individuals[j]
}

// IsSorted reports whether the population is currently marked sorted.
func (p *Population) IsSorted() bool { return p.sorted }

// SortBy sorts the population using less, a no-op if the population is
// already marked sorted (matching the reference's is_sorted short
// circuit: repeated sorts under the same objective do no work).
func (p *Population) SortBy(less func(a, b *Phenotype) bool) {
	if p.sorted {
		return
	}
	sort.Slice(p.individuals, func(i, j int) bool {
		return less(p.individuals[i], p.individuals[j])
	})
	p.sorted = true
}

// Range calls fn for every phenotype, stopping early if fn returns false.
func (p *Population) Range(fn func(i int, ph *Phenotype) bool) {
	for i, ph := range p.individuals {
		if !fn(i, ph) {
			return
		}
	}
}

// RangeMut calls fn for every phenotype, marking the population
// unsorted once up front since the caller intends to mutate.
func (p *Population) RangeMut(fn func(i int, ph *Phenotype)) {
	p.sorted = false
	for i, ph := range p.individuals {
		fn(i, ph)
	}
}

// ReplaceAll swaps in a full reordering or replacement of the
// population's individuals in one step (e.g. after an externally
// computed NSGA-II sort) and marks the population sorted, avoiding a
// second pass through SortBy.
func (p *Population) ReplaceAll(individuals []*Phenotype) {
	p.individuals = individuals
	p.sorted = true
}

// Individuals returns the underlying slice for callers that need
// direct, bulk access (e.g. concatenating two populations during
// recombine). Mutating it does not automatically clear sorted; callers
// doing so should treat the population as unsorted afterward.
func (p *Population) Individuals() []*Phenotype { return p.individuals }

// Scores collects the scores of every evaluated individual, in
// population order, skipping any that are still unevaluated.
func (p *Population) Scores() []Score {
	scores := make([]Score, 0, len(p.individuals))
	for _, ph := range p.individuals {
		if s, ok := ph.Score(); ok {
			scores = append(scores, s)
		}
	}
	return scores
}

// Clone returns a shallow copy of the population (phenotype pointers
// are shared).
func (p *Population) Clone() *Population {
	individuals := make([]*Phenotype, len(p.individuals))
	copy(individuals, p.individuals)
	return &Population{individuals: individuals, sorted: p.sorted}
}

