package genome

import "github.com/google/uuid"

// Species is an optional cluster label grouping phenotypes by a
// user-defined distance; it carries its own adjusted fitness and age,
// independent of any single member's raw score. Phenotypes reference a
// Species only by its ID string (see Phenotype.SpeciesID), so clearing
// a Population never dangles a Species.
type Species struct {
	ID              string
	AdjustedFitness float32
	Age             int
}

// NewSpecies creates a Species with a fresh, process-unique id.
func NewSpecies() *Species {
	return &Species{ID: uuid.NewString()}
}
