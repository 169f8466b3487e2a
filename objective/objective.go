// Package objective implements the engine's Objective/dominance
// machinery: single- and multi-objective sort order, the better-than
// relation, NSGA-II non-domination ranking, and crowding distance.
// Ported from
// original_source/crates/radiate-core/src/objectives/pareto.rs.
package objective

import (
	"math"
	"sort"

	"github.com/aram/geneticengine/genome"
)

// Direction is the optimization sense of one score component.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Objective is either a single direction applied to a scalar score, or
// one direction per score component for multi-objective optimization.
type Objective struct {
	multi bool
	dirs  []Direction
}

// Single builds a single-objective Objective with direction dir.
func Single(dir Direction) Objective {
	return Objective{multi: false, dirs: []Direction{dir}}
}

// Multi builds a multi-objective Objective with one direction per score
// component.
func Multi(dirs ...Direction) Objective {
	cp := make([]Direction, len(dirs))
	copy(cp, dirs)
	return Objective{multi: true, dirs: cp}
}

// IsMulti reports whether this is a multi-objective Objective.
func (o Objective) IsMulti() bool { return o.multi }

// Directions returns the per-component directions.
func (o Objective) Directions() []Direction { return o.dirs }

func (o Objective) directionFor(i int) Direction {
	if o.multi {
		return o.dirs[i]
	}
	return o.dirs[0]
}

// IsBetter reports whether a is better than b. For Single it compares
// the scalar (first-component-driven, lexicographic) score under dir.
// For Multi it falls back to dominance: a is better than b iff a
// dominates b.
func (o Objective) IsBetter(a, b genome.Score) bool {
	if o.multi {
		return o.Dominates(a, b)
	}
	if o.dirs[0] == Minimize {
		return a.Less(b)
	}
	return b.Less(a)
}

// Dominates reports whether score a dominates score b: a is no worse
// than b in every component and strictly better in at least one.
func (o Objective) Dominates(a, b genome.Score) bool {
	betterInAny := false
	av, bv := a.Values(), b.Values()
	n := len(av)
	if len(bv) < n {
		n = len(bv)
	}
	for i := 0; i < n; i++ {
		dir := o.directionFor(i)
		if dir == Minimize {
			if av[i] > bv[i] {
				return false
			}
			if av[i] < bv[i] {
				betterInAny = true
			}
		} else {
			if av[i] < bv[i] {
				return false
			}
			if av[i] > bv[i] {
				betterInAny = true
			}
		}
	}
	return betterInAny
}

// Less reports the sort order of two scores under this Objective (used
// for Single objectives; Sort handles Multi separately via rank).
func (o Objective) Less(a, b genome.Score) bool {
	if o.dirs[0] == Minimize {
		return a.Less(b)
	}
	return b.Less(a)
}

// Sort orders population in place under the Objective: ascending or
// descending by score for Single; by NSGA-II rank (tie-broken by
// descending crowding distance) for Multi.
func (o Objective) Sort(population *genome.Population) {
	if population.IsSorted() {
		return
	}
	if o.multi {
		o.sortMulti(population)
		return
	}
	population.SortBy(func(a, b *genome.Phenotype) bool {
		sa, aOK := a.Score()
		sb, bOK := b.Score()
		if !aOK || !bOK {
			return false
		}
		return o.Less(sa, sb)
	})
}

func (o Objective) sortMulti(population *genome.Population) {
	individuals := population.Individuals()
	scores := make([]genome.Score, len(individuals))
	for i, ph := range individuals {
		if s, ok := ph.Score(); ok {
			scores[i] = s
		}
	}
	ranks := Rank(scores, o)
	distances := CrowdingDistance(scores)

	idx := make([]int, len(individuals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if ranks[a] != ranks[b] {
			return ranks[a] < ranks[b]
		}
		return distances[a] > distances[b]
	})

	sorted := make([]*genome.Phenotype, len(individuals))
	for newPos, oldPos := range idx {
		sorted[newPos] = individuals[oldPos]
	}
	population.ReplaceAll(sorted)
}

// CrowdingDistance computes the NSGA-II crowding distance for each
// score. For each dimension, boundary points (after sorting by that
// dimension) get +Inf; interior points get (next-prev)/range, summed
// across dimensions. Dimensions with zero or non-finite range are skipped.
func CrowdingDistance(scores []genome.Score) []float32 {
	n := len(scores)
	if n == 0 {
		return nil
	}
	m := scores[0].Len()
	if m == 0 {
		return make([]float32, n)
	}

	result := make([]float32, n)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for dim := 0; dim < m; dim++ {
		sort.SliceStable(indices, func(i, j int) bool {
			return scores[indices[i]].Values()[dim] < scores[indices[j]].Values()[dim]
		})

		min := scores[indices[0]].Values()[dim]
		max := scores[indices[n-1]].Values()[dim]
		rng := max - min
		if !isFinite32(rng) || rng == 0 {
			continue
		}

		result[indices[0]] = float32(math.Inf(1))
		result[indices[n-1]] = float32(math.Inf(1))

		for k := 1; k < n-1; k++ {
			prev := scores[indices[k-1]].Values()[dim]
			next := scores[indices[k+1]].Values()[dim]
			contrib := absF32(next-prev) / rng
			result[indices[k]] += contrib
		}
	}

	return result
}

// Rank assigns an NSGA-II front index to each score: front 0 is every
// entry with zero domination count; subsequent fronts are peeled off by
// decrementing dominated counts as each front is consumed.
func Rank(scores []genome.Score, o Objective) []int {
	n := len(scores)
	dominatedCounts := make([]int, n)
	dominates := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if o.Dominates(scores[i], scores[j]) {
				dominates[i] = append(dominates[i], j)
				dominatedCounts[j]++
			} else if o.Dominates(scores[j], scores[i]) {
				dominates[j] = append(dominates[j], i)
				dominatedCounts[i]++
			}
		}
	}

	ranks := make([]int, n)
	var currentFront []int
	for i := 0; i < n; i++ {
		if dominatedCounts[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	frontIdx := 0
	for len(currentFront) > 0 {
		var nextFront []int
		for _, p := range currentFront {
			ranks[p] = frontIdx
			for _, q := range dominates[p] {
				dominatedCounts[q]--
				if dominatedCounts[q] == 0 {
					nextFront = append(nextFront, q)
				}
			}
		}
		frontIdx++
		currentFront = nextFront
	}

	return ranks
}

// Weights combines rank (lower-is-better, normalized so 1 = best front)
// and crowding distance (higher-is-better, normalized to [0,1])
// multiplicatively with a small epsilon, for selectors that are not
// intrinsically multi-objective aware.
func Weights(scores []genome.Score, o Objective) []float32 {
	const epsilon = 1e-6
	n := len(scores)
	if n == 0 {
		return nil
	}

	ranks := Rank(scores, o)
	distances := CrowdingDistance(scores)

	maxRank := 0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}

	rankWeight := make([]float32, n)
	for i, r := range ranks {
		if maxRank == 0 {
			rankWeight[i] = 1
		} else {
			rankWeight[i] = 1 - float32(r)/float32(maxRank)
		}
	}

	var finiteMax float32
	for _, d := range distances {
		if isFinite32(d) && d > finiteMax {
			finiteMax = d
		}
	}

	crowdWeight := make([]float32, n)
	for i, d := range distances {
		if !isFinite32(d) || finiteMax == 0 {
			crowdWeight[i] = 1
		} else {
			crowdWeight[i] = d / finiteMax
		}
	}

	weights := make([]float32, n)
	for i := range weights {
		rw := rankWeight[i] + epsilon
		if rw < 0 {
			rw = 0
		}
		cw := crowdWeight[i] + epsilon
		if cw < 0 {
			cw = 0
		}
		weights[i] = rw * cw
	}
	return weights
}

func isFinite32(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}

func absF32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
