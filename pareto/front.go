// Package pareto implements the incrementally maintained Pareto front
// described in spec §4.5: a non-dominated set of phenotypes bounded
// between [min_size, max_size], trimmed by crowding distance when it
// grows past max_size. The reference implementation's Front type was
// not present in the retrieved original_source tree (only the
// dominance/crowding-distance primitives in objectives/pareto.rs were),
// so this package is built directly from spec §4.5/§4.9's contract,
// reusing the objective package's crowding-distance and dominance math.
package pareto

import (
	"sort"
	"sync"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
)

// ScoreAccessor extracts the Score used for dominance comparisons from
// a Phenotype, letting the Front stay agnostic of where the score lives.
type ScoreAccessor func(*genome.Phenotype) (genome.Score, bool)

// Front is a set of non-dominated phenotypes sized in [minSize,
// maxSize]. It stores phenotype handles (shared pointers), never the
// population itself, so clearing a Population never invalidates a
// Front that still references some of its members - the garbage
// collector keeps them alive as long as the Front's slice does.
type Front struct {
	mu       sync.RWMutex
	members  []*genome.Phenotype
	minSize  int
	maxSize  int
	scoreOf  ScoreAccessor
}

// New constructs an empty Front with the given size bounds and score accessor.
func New(minSize, maxSize int, scoreOf ScoreAccessor) *Front {
	return &Front{minSize: minSize, maxSize: maxSize, scoreOf: scoreOf}
}

// Len returns the number of members currently held, thread-safe.
func (f *Front) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.members)
}

// Members returns a snapshot copy of the front's members.
func (f *Front) Members() []*genome.Phenotype {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*genome.Phenotype, len(f.members))
	copy(out, f.members)
	return out
}

// Clone returns a new Front sharing the same member pointers and
// configuration - a cheap, independent copy safe to hand to a worker
// snapshot the way the reference clones Arc<Front> per generation.
func (f *Front) Clone() *Front {
	f.mu.RLock()
	defer f.mu.RUnlock()
	members := make([]*genome.Phenotype, len(f.members))
	copy(members, f.members)
	return &Front{members: members, minSize: f.minSize, maxSize: f.maxSize, scoreOf: f.scoreOf}
}

// Dominates reports whether p is non-dominated by the front's current
// members (under obj), and if so returns the current members p
// strictly dominates. Safe for concurrent callers - acquires only the
// read lock, so many workers may call it in parallel against a
// consistent snapshot while the front is not being written.
func (f *Front) Dominates(p *genome.Phenotype, obj objective.Objective) (bool, []*genome.Phenotype) {
	pScore, ok := f.scoreOf(p)
	if !ok {
		return false, nil
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var toRemove []*genome.Phenotype
	for _, member := range f.members {
		memberScore, ok := f.scoreOf(member)
		if !ok {
			continue
		}
		if obj.Dominates(memberScore, pScore) {
			return false, nil
		}
		if obj.Dominates(pScore, memberScore) {
			toRemove = append(toRemove, member)
		}
	}
	return true, toRemove
}

// Clean applies a batch update: removals are dropped from the member
// set, then additions not already present (by pointer identity) are
// inserted. If the result exceeds maxSize, members are trimmed by
// lowest crowding distance first, but never below minSize. The caller
// is the single writer per generation (see engine's FrontStep).
func (f *Front) Clean(additions, removals []*genome.Phenotype) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(removals) > 0 {
		toRemove := make(map[*genome.Phenotype]bool, len(removals))
		for _, r := range removals {
			toRemove[r] = true
		}
		kept := f.members[:0:0]
		for _, m := range f.members {
			if !toRemove[m] {
				kept = append(kept, m)
			}
		}
		f.members = kept
	}

	if len(additions) > 0 {
		present := make(map[*genome.Phenotype]bool, len(f.members))
		for _, m := range f.members {
			present[m] = true
		}
		for _, a := range additions {
			if !present[a] {
				f.members = append(f.members, a)
				present[a] = true
			}
		}
	}

	if len(f.members) > f.maxSize {
		f.trimToMaxSize()
	}
}

func (f *Front) trimToMaxSize() {
	scores := make([]genome.Score, len(f.members))
	for i, m := range f.members {
		if s, ok := f.scoreOf(m); ok {
			scores[i] = s
		}
	}
	distances := objective.CrowdingDistance(scores)

	idx := make([]int, len(f.members))
	for i := range idx {
		idx[i] = i
	}
	// sort ascending by distance so the lowest-distance (most crowded)
	// members sort first and are the ones dropped.
	sort.Slice(idx, func(i, j int) bool { return distances[idx[i]] < distances[idx[j]] })

	target := f.maxSize
	if target < f.minSize {
		target = f.minSize
	}
	if len(f.members) <= target {
		return
	}

	dropCount := len(f.members) - target
	drop := make(map[int]bool, dropCount)
	for i := 0; i < dropCount; i++ {
		drop[idx[i]] = true
	}

	kept := make([]*genome.Phenotype, 0, target)
	for i, m := range f.members {
		if !drop[i] {
			kept = append(kept, m)
		}
	}
	f.members = kept
}
