package engine

import (
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/random"
)

// defaultTournamentSelector and defaultRouletteSelector are minimal,
// unexported fallbacks used only when a Builder is not given an
// explicit survivor/offspring selector (spec §6's Tournament(3) /
// Roulette defaults). The operators package ships richer, public
// variants of both (configurable tournament size, NSGA-II-aware
// weighting); either satisfies the same Selector interface and can be
// swapped in via WithSurvivorSelector/WithOffspringSelector.
type defaultTournamentSelector struct {
	size int
	rng  *random.Source
}

func (s *defaultTournamentSelector) Name() string { return "tournament_selector" }

func (s *defaultTournamentSelector) Select(population *genome.Population, obj objective.Objective, k int) *genome.Population {
	n := population.Len()
	out := make([]*genome.Phenotype, k)
	size := s.size
	if size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}
	for i := 0; i < k; i++ {
		best := population.Get(s.rng.Choose(n))
		for j := 1; j < size; j++ {
			challenger := population.Get(s.rng.Choose(n))
			bestScore, bOK := best.Score()
			challScore, cOK := challenger.Score()
			if cOK && (!bOK || obj.IsBetter(challScore, bestScore)) {
				best = challenger
			}
		}
		out[i] = best
	}
	return genome.NewPopulation(out)
}

type defaultRouletteSelector struct {
	rng *random.Source
}

func (s *defaultRouletteSelector) Name() string { return "roulette_selector" }

func (s *defaultRouletteSelector) Select(population *genome.Population, obj objective.Objective, k int) *genome.Population {
	n := population.Len()
	out := make([]*genome.Phenotype, k)
	if n == 0 {
		return genome.NewPopulation(out)
	}

	weights := rouletteWeights(population, obj)
	total := float32(0)
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		for i := 0; i < k; i++ {
			out[i] = population.Get(s.rng.Choose(n))
		}
		return genome.NewPopulation(out)
	}

	for i := 0; i < k; i++ {
		pick := s.rng.Float64() * float64(total)
		acc := float32(0)
		chosen := n - 1
		for idx, w := range weights {
			acc += w
			if float64(acc) >= pick {
				chosen = idx
				break
			}
		}
		out[i] = population.Get(chosen)
	}
	return genome.NewPopulation(out)
}

// rouletteWeights uses objective.Weights (rank+crowding, §4.4) for
// multi-objective populations and raw, direction-adjusted scores for
// single-objective ones, so a single selector body serves both. The
// returned slice is always index-aligned with population itself (length
// population.Len(), weight 0 for any unevaluated individual) rather than
// with population.Scores()'s filtered, unevaluated-skipping order -
// population.Scores() silently compacts out unevaluated individuals, so
// indexing population.Get(idx) by a position into it would misalign the
// moment this selector ever ran against a partially evaluated
// population (selection today always follows a full evaluateStep, so
// this was latent rather than observed, but the alignment should hold
// regardless of caller discipline).
func rouletteWeights(population *genome.Population, obj objective.Objective) []float32 {
	n := population.Len()
	weights := make([]float32, n)

	scores := make([]genome.Score, 0, n)
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if s, ok := population.Get(i).Score(); ok {
			scores = append(scores, s)
			indices = append(indices, i)
		}
	}
	if len(scores) == 0 {
		return weights
	}

	var computed []float32
	if obj.IsMulti() {
		computed = objective.Weights(scores, obj)
	} else {
		computed = directionAdjustedWeights(scores, obj)
	}
	for j, idx := range indices {
		weights[idx] = computed[j]
	}
	return weights
}

// directionAdjustedWeights turns single-objective scores into
// non-negative roulette weights: negated under Minimize so a lower
// score yields a higher weight, then, if any weight is negative, shifted
// so the minimum is zero - required for roulette accumulation to behave
// as a proper probability mass. Non-negative weights are left unshifted.
func directionAdjustedWeights(scores []genome.Score, obj objective.Objective) []float32 {
	weights := make([]float32, len(scores))
	dirs := obj.Directions()
	minimize := len(dirs) > 0 && dirs[0] == objective.Minimize
	for i, s := range scores {
		v := s.AsF32()
		if minimize {
			v = -v
		}
		weights[i] = v
	}
	minW := float32(0)
	for _, w := range weights {
		if w < minW {
			minW = w
		}
	}
	if minW < 0 {
		for i := range weights {
			weights[i] -= minW
		}
	}
	return weights
}
