package genome

// Phenotype is a Genotype plus an optional Score, a birth-generation
// stamp, and an optional species id. A Phenotype whose score is unset
// is "unevaluated" - no consumer may read the score without first
// triggering evaluation (EvaluateStep is the only producer of scores).
type Phenotype struct {
	genotype   Genotype
	score      *Score
	generation int
	speciesID  string
}

// NewPhenotype constructs an unevaluated Phenotype born at generation.
func NewPhenotype(g Genotype, generation int) *Phenotype {
	return &Phenotype{genotype: g, generation: generation}
}

// Genotype returns the phenotype's genotype.
func (p *Phenotype) Genotype() Genotype { return p.genotype }

// SetGenotype replaces the phenotype's genotype.
func (p *Phenotype) SetGenotype(g Genotype) { p.genotype = g }

// TakeGenotype removes and returns the genotype, leaving the phenotype
// holding a zero Genotype. Used by EvaluateStep to hand the genotype to
// a worker without aliasing it; the caller must pair every TakeGenotype
// with a later SetGenotype so the phenotype is never left without a
// genotype once evaluation completes.
func (p *Phenotype) TakeGenotype() Genotype {
	g := p.genotype
	p.genotype = Genotype{}
	return g
}

// Score returns the phenotype's score and whether it has been set.
func (p *Phenotype) Score() (Score, bool) {
	if p.score == nil {
		return Score{}, false
	}
	return *p.score, true
}

// SetScore sets the phenotype's score.
func (p *Phenotype) SetScore(s Score) { p.score = &s }

// IsEvaluated reports whether the phenotype carries a score.
func (p *Phenotype) IsEvaluated() bool { return p.score != nil }

// Generation returns the phenotype's birth-generation stamp.
func (p *Phenotype) Generation() int { return p.generation }

// Age returns generation - p.generation, the number of generations
// since this phenotype was (re)born.
func (p *Phenotype) Age(generation int) int { return generation - p.generation }

// Invalidate clears the phenotype's score and stamps generation as its
// new birth generation, forcing re-evaluation. Called by alterers after
// any mutation to the phenotype's genotype.
func (p *Phenotype) Invalidate(generation int) {
	p.score = nil
	p.generation = generation
}

// SpeciesID returns the phenotype's species id, "" if unassigned.
func (p *Phenotype) SpeciesID() string { return p.speciesID }

// SetSpeciesID assigns the phenotype's species id.
func (p *Phenotype) SetSpeciesID(id string) { p.speciesID = id }

// Clone returns a deep copy of the phenotype: its genotype is cloned
// chromosome-by-chromosome (see Genotype.Clone), so the copy shares no
// gene storage with p. selectStep relies on this to isolate a selected
// individual from the population it was drawn from - otherwise the same
// parent drawn into two selections (common under tournament/roulette
// selection with replacement) would let an alterer's in-place SetGene
// on one clone silently corrupt the other's genotype without
// invalidating its score.
func (p *Phenotype) Clone() *Phenotype {
	c := *p
	c.genotype = p.genotype.Clone()
	if p.score != nil {
		s := *p.score
		c.score = &s
	}
	return &c
}
