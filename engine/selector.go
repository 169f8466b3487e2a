package engine

import (
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
)

// Selector picks k individuals from a population under an Objective.
// Must return a population of length k; selection may sample with
// replacement unless the selector promises otherwise. Reference
// variants (tournament, roulette, rank, NSGA-II) live in the operators
// package, outside the engine's required surface (spec §6).
type Selector interface {
	Select(population *genome.Population, obj objective.Objective, k int) *genome.Population
	Name() string
}
