// Package operators collects reference Selector and Alter
// implementations built on top of the engine package's external
// contracts (spec §6: these are supplied components, not part of the
// engine's required surface). Grounded on the teacher's
// TournamentSelector (ga/ga.go) and on
// original_source/crates/radiate-core/src/objectives/pareto.rs's
// weighting for the NSGA-II-aware roulette variant.
package operators

import (
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/random"
)

// TournamentSelector selects k individuals by repeatedly running
// size-way tournaments with replacement, generalizing the teacher's
// TournamentSelector (ga/ga.go) from a fixed tournament size to a
// configurable one and from a scalar fitness comparison to
// Objective.IsBetter (so it works for both single- and multi-objective runs).
type TournamentSelector struct {
	Size int
	RNG  *random.Source
}

// NewTournamentSelector builds a TournamentSelector with the given
// tournament size, falling back to 3 (the engine's own default) if size < 2.
func NewTournamentSelector(size int, rng *random.Source) *TournamentSelector {
	if size < 2 {
		size = 3
	}
	return &TournamentSelector{Size: size, RNG: rng}
}

func (s *TournamentSelector) Name() string { return "tournament_selector" }

func (s *TournamentSelector) Select(population *genome.Population, obj objective.Objective, k int) *genome.Population {
	n := population.Len()
	out := make([]*genome.Phenotype, k)
	size := s.Size
	if size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}
	for i := 0; i < k; i++ {
		best := population.Get(s.RNG.Choose(n))
		for j := 1; j < size; j++ {
			challenger := population.Get(s.RNG.Choose(n))
			bestScore, bOK := best.Score()
			challengerScore, cOK := challenger.Score()
			if cOK && (!bOK || obj.IsBetter(challengerScore, bestScore)) {
				best = challenger
			}
		}
		out[i] = best
	}
	return genome.NewPopulation(out)
}

// RouletteSelector performs fitness-proportionate selection. For
// multi-objective runs it draws weights from objective.Weights (rank
// and crowding distance combined); for single-objective runs it uses
// the direction-adjusted raw score, shifted non-negative.
type RouletteSelector struct {
	RNG *random.Source
}

func NewRouletteSelector(rng *random.Source) *RouletteSelector {
	return &RouletteSelector{RNG: rng}
}

func (s *RouletteSelector) Name() string { return "roulette_selector" }

func (s *RouletteSelector) Select(population *genome.Population, obj objective.Objective, k int) *genome.Population {
	n := population.Len()
	out := make([]*genome.Phenotype, k)
	if n == 0 {
		return genome.NewPopulation(out)
	}

	weights := weighForRoulette(population, obj)
	total := float32(0)
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		for i := 0; i < k; i++ {
			out[i] = population.Get(s.RNG.Choose(n))
		}
		return genome.NewPopulation(out)
	}

	for i := 0; i < k; i++ {
		pick := s.RNG.Float64() * float64(total)
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

// weighForRoulette returns a weight slice index-aligned with population
// itself (weight 0 for any unevaluated individual), not with
// population.Scores()'s filtered, unevaluated-skipping order - indexing
// population.Get(idx) by a position into the latter would misalign the
// moment this selector ran against a partially evaluated population.
func weighForRoulette(population *genome.Population, obj objective.Objective) []float32 {
	n := population.Len()
	weights := make([]float32, n)

	scores := make([]genome.Score, 0, n)
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if sc, ok := population.Get(i).Score(); ok {
			scores = append(scores, sc)
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
		computed = make([]float32, len(scores))
		dirs := obj.Directions()
		minimize := len(dirs) > 0 && dirs[0] == objective.Minimize
		for i, sc := range scores {
			v := sc.AsF32()
			if minimize {
				v = -v
			}
			computed[i] = v
		}
		minW := float32(0)
		for _, w := range computed {
			if w < minW {
				minW = w
			}
		}
		if minW < 0 {
			for i := range computed {
				computed[i] -= minW
			}
		}
	}
	for j, idx := range indices {
		weights[idx] = computed[j]
	}
	return weights
}

// RankSelector selects proportionally to a phenotype's position in the
// (already-sorted) population rather than its raw score, softening the
// selection pressure of steep fitness landscapes.
type RankSelector struct {
	RNG *random.Source
}

func NewRankSelector(rng *random.Source) *RankSelector {
	return &RankSelector{RNG: rng}
}

func (s *RankSelector) Name() string { return "rank_selector" }

func (s *RankSelector) Select(population *genome.Population, obj objective.Objective, k int) *genome.Population {
	n := population.Len()
	out := make([]*genome.Phenotype, k)
	if n == 0 {
		return genome.NewPopulation(out)
	}
	obj.Sort(population)

	total := n * (n + 1) / 2
	for i := 0; i < k; i++ {
		pick := s.RNG.Choose(total)
		acc := 0
		chosen := n - 1
		for idx := 0; idx < n; idx++ {
			acc += n - idx
			if acc > pick {
				chosen = idx
				break
			}
		}
		out[i] = population.Get(chosen)
	}
	return genome.NewPopulation(out)
}
