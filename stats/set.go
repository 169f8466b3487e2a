package stats

// MetricSet maps metric name to Metric, tracking an update counter so
// callers can cheaply tell whether anything changed since a checkpoint.
// Ported in spirit from
// original_source/crates/radiate-core/src/stats/set.rs.
type MetricSet struct {
	metrics map[string]Metric
	updates uint64
}

// NewMetricSet creates an empty metric set.
func NewMetricSet() *MetricSet {
	return &MetricSet{metrics: make(map[string]Metric)}
}

// Upsert looks up a metric by name, creating it with default scope and
// rollup if missing, applies the update, and bumps the set's update counter.
func (s *MetricSet) Upsert(name string, update any) {
	m, ok := s.metrics[name]
	if !ok {
		m = NewMetric(name)
	}
	m.ApplyUpdate(update)
	s.metrics[name] = m
	s.updates++
}

// UpsertWithScope is like Upsert but sets scope/rollup when the metric
// is first created.
func (s *MetricSet) UpsertWithScope(name string, update any, scope Scope, rollup Rollup) {
	m, ok := s.metrics[name]
	if !ok {
		m = NewMetric(name).WithScope(scope).WithRollup(rollup)
	}
	m.ApplyUpdate(update)
	s.metrics[name] = m
	s.updates++
}

// Add inserts or replaces a metric wholesale.
func (s *MetricSet) Add(m Metric) {
	s.metrics[m.Name()] = m
	s.updates++
}

// Get returns the metric with the given name, ok=false if absent.
func (s *MetricSet) Get(name string) (Metric, bool) {
	m, ok := s.metrics[name]
	return m, ok
}

// Contains reports whether the set holds a metric with the given name.
func (s *MetricSet) Contains(name string) bool {
	_, ok := s.metrics[name]
	return ok
}

// Len returns the number of distinct metrics in the set.
func (s *MetricSet) Len() int { return len(s.metrics) }

// Clear empties the set.
func (s *MetricSet) Clear() {
	s.metrics = make(map[string]Metric)
}

// ClearScope drops every metric whose scope matches the given scope.
func (s *MetricSet) ClearScope(scope Scope) {
	for name, m := range s.metrics {
		if m.Scope() == scope {
			delete(s.metrics, name)
		}
	}
}

// Iter calls fn for every metric in the set. Iteration order is
// unspecified (Go map order), matching the reference's HashMap-backed set.
func (s *MetricSet) Iter(fn func(Metric)) {
	for _, m := range s.metrics {
		fn(m)
	}
}

// IterScope calls fn for every metric whose scope matches scope.
func (s *MetricSet) IterScope(scope Scope, fn func(Metric)) {
	for _, m := range s.metrics {
		if m.Scope() == scope {
			fn(m)
		}
	}
}

// FlushAllInto clones each metric in s, clears its accumulated values,
// and merges the clone into target under the metric's rollup rule. This
// is how per-generation metrics become lifetime metrics.
func (s *MetricSet) FlushAllInto(target *MetricSet) {
	for name, m := range s.metrics {
		s.flushOneInto(target, name, m)
	}
}

// FlushMetricInto flushes a single named metric into target, if present.
func (s *MetricSet) FlushMetricInto(target *MetricSet, name string) {
	if m, ok := s.metrics[name]; ok {
		s.flushOneInto(target, name, m)
	}
}

func (s *MetricSet) flushOneInto(target *MetricSet, name string, m Metric) {
	clone := m
	m.ClearValues()
	s.metrics[name] = m

	switch clone.RollupPolicy() {
	case RollupReplace:
		target.metrics[name] = clone
	default: // RollupSum
		existing, ok := target.metrics[name]
		if !ok {
			target.metrics[name] = clone
			return
		}
		existing.UpdateFrom(clone)
		target.metrics[name] = existing
	}
	target.updates++
}

// Clone returns a deep-enough copy of the set (Metric values are
// copied; their internal pointers to Statistic/TimeStatistic are
// replaced with fresh copies so mutation of the clone never touches s).
func (s *MetricSet) Clone() *MetricSet {
	clone := NewMetricSet()
	for name, m := range s.metrics {
		mc := m
		if m.valueStatistic != nil {
			vs := *m.valueStatistic
			mc.valueStatistic = &vs
		}
		if m.timeStatistic != nil {
			ts := *m.timeStatistic
			mc.timeStatistic = &ts
		}
		clone.metrics[name] = mc
	}
	clone.updates = s.updates
	return clone
}

// Summary renders the metrics as a sorted-by-insertion-irrelevant debug
// map of name -> count (callers wanting richer introspection can Iter
// directly).
func (s *MetricSet) Summary() map[string]int32 {
	out := make(map[string]int32, len(s.metrics))
	for name, m := range s.metrics {
		out[name] = m.Count()
	}
	return out
}
