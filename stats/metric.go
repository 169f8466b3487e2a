package stats

import "time"

// Metric is a named, tagged aggregate carrying an optional value
// statistic and/or time statistic. Ported from
// original_source/crates/radiate-core/src/stats/metric.rs.
type Metric struct {
	name           string
	valueStatistic *Statistic
	timeStatistic  *TimeStatistic
	tags           Tag
	scope          Scope
	rollup         Rollup
}

// NewMetric creates an empty metric with the given name and defaults
// (Generation scope, Sum rollup). Other settings come from WithScope/
// WithRollup or MetricSet.UpsertWithScope; MetricSet.Upsert applies no
// per-name defaults.
func NewMetric(name string) Metric {
	return Metric{name: name, scope: ScopeGeneration, rollup: RollupSum}
}

// Name returns the metric's interned name.
func (m *Metric) Name() string { return m.name }

// Tags returns the metric's tag set.
func (m *Metric) Tags() Tag { return m.tags }

// WithScope sets the metric's scope and returns it for chaining.
func (m Metric) WithScope(scope Scope) Metric {
	m.scope = scope
	return m
}

// WithRollup sets the metric's rollup policy and returns it for chaining.
func (m Metric) WithRollup(rollup Rollup) Metric {
	m.rollup = rollup
	return m
}

// Scope returns the metric's scope.
func (m *Metric) Scope() Scope { return m.scope }

// RollupPolicy returns the metric's rollup policy.
func (m *Metric) RollupPolicy() Rollup { return m.rollup }

// ClearValues drops the accumulated statistics while keeping identity
// (name, tags, scope, rollup).
func (m *Metric) ClearValues() {
	m.valueStatistic = nil
	m.timeStatistic = nil
}

// Upsert applies an update and returns the metric, for fluent construction.
func (m Metric) Upsert(update any) Metric {
	m.ApplyUpdate(update)
	return m
}

// ApplyUpdate dispatches an update to the value or time sub-statistic,
// creating it if absent and setting the appropriate tag. Accepted types:
// float32, int, float64, time.Duration, []float32, []int, Statistic,
// TimeStatistic, or a (value, duration) pair via the Operation helper type.
func (m *Metric) ApplyUpdate(update any) {
	switch v := update.(type) {
	case float32:
		m.updateStatistic(v)
	case int:
		m.updateStatistic(float32(v))
	case float64:
		m.updateStatistic(float32(v))
	case time.Duration:
		m.updateTimeStatistic(v)
	case Operation:
		m.updateStatistic(v.Value)
		m.updateTimeStatistic(v.Elapsed)
	case []float32:
		m.updateStatisticFromSlice(v)
	case []int:
		values := make([]float32, len(v))
		for i, x := range v {
			values[i] = float32(x)
		}
		m.updateStatisticFromSlice(values)
	case Statistic:
		if m.valueStatistic != nil {
			m.valueStatistic.Merge(&v)
		} else {
			m.newStatistic(v)
		}
	case TimeStatistic:
		if m.timeStatistic != nil {
			m.timeStatistic.Merge(&v)
		} else {
			m.newTimeStatistic(v)
		}
	}
}

// Operation pairs a scalar value with the duration the operation took,
// the common shape for engine step metrics (count + elapsed wall time).
type Operation struct {
	Value   float32
	Elapsed time.Duration
}

// UpdateFrom merges another metric's statistics into m, taking the
// count-equals-sum shortcut the reference implementation uses: when a
// value statistic's count equals its sum and it isn't a distribution,
// apply just the sum (cheaper, and avoids re-deriving moments for a
// plain counter).
func (m *Metric) UpdateFrom(other Metric) {
	if other.valueStatistic != nil {
		stat := other.valueStatistic
		if float32(stat.Count()) == stat.Sum() && !other.tags.Has(TagDistribution) {
			m.ApplyUpdate(stat.Sum())
		} else {
			m.ApplyUpdate(*stat)
		}
	}
	if other.timeStatistic != nil {
		m.ApplyUpdate(*other.timeStatistic)
	}
	m.tags = m.tags.Union(other.tags)
}

func (m *Metric) newStatistic(s Statistic) {
	m.valueStatistic = &s
	m.tags.Insert(TagStatistic)
}

func (m *Metric) newTimeStatistic(t TimeStatistic) {
	m.timeStatistic = &t
	m.tags.Insert(TagTime)
}

func (m *Metric) updateStatistic(value float32) {
	if m.valueStatistic != nil {
		m.valueStatistic.Add(value)
		return
	}
	m.newStatistic(NewStatistic(value))
}

func (m *Metric) updateTimeStatistic(value time.Duration) {
	if m.timeStatistic != nil {
		m.timeStatistic.Add(value)
		return
	}
	m.newTimeStatistic(NewTimeStatistic(value))
}

func (m *Metric) updateStatisticFromSlice(values []float32) {
	if m.valueStatistic != nil {
		for _, v := range values {
			m.valueStatistic.Add(v)
		}
		return
	}
	var s Statistic
	for _, v := range values {
		s.Add(v)
	}
	m.newStatistic(s)
	m.tags.Insert(TagDistribution)
}

// --- Common statistic getters ---

// LastValue returns the most recent value-statistic sample, 0 if none.
func (m *Metric) LastValue() float32 {
	if m.valueStatistic == nil {
		return 0
	}
	return m.valueStatistic.LastValue()
}

// Statistic returns the metric's value statistic, or nil if none.
func (m *Metric) Statistic() *Statistic { return m.valueStatistic }

// TimeStatistic returns the metric's time statistic, or nil if none.
func (m *Metric) TimeStatistic() *TimeStatistic { return m.timeStatistic }

// LastTime returns the most recent time-statistic sample, 0 if none.
func (m *Metric) LastTime() time.Duration {
	if m.timeStatistic == nil {
		return 0
	}
	return m.timeStatistic.LastTime()
}

// Count returns the value statistic's count if present, else the time
// statistic's count, else 0.
func (m *Metric) Count() int32 {
	if m.valueStatistic != nil {
		return m.valueStatistic.Count()
	}
	if m.timeStatistic != nil {
		return m.timeStatistic.Count()
	}
	return 0
}

// ValueMean returns the value statistic's mean, ok=false if absent.
func (m *Metric) ValueMean() (float32, bool) {
	if m.valueStatistic == nil {
		return 0, false
	}
	return m.valueStatistic.Mean(), true
}

// ValueSum returns the value statistic's sum, ok=false if absent.
func (m *Metric) ValueSum() (float32, bool) {
	if m.valueStatistic == nil {
		return 0, false
	}
	return m.valueStatistic.Sum(), true
}
