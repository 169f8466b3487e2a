package engine

import (
	"time"

	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/pareto"
	"github.com/aram/geneticengine/stats"
)

// Context is the per-run state every step reads and mutates: it owns
// the Population, the current best decoded value, the metric set, the
// cumulative timer, and a handle to the Front. Mirrors the reference's
// EngineContext/Ecosystem split
// (original_source/crates/radiate-engines/src/engines/standard.rs),
// collapsed into one struct since Go has no separate ecosystem/context
// layering need at this scale.
type Context[T any] struct {
	Population *genome.Population
	Best       T
	Score      *genome.Score
	Index      int
	Front      *pareto.Front
	Metrics    *stats.MetricSet
	Lifetime   *stats.MetricSet
	started    time.Time
	stopped    time.Time
}

// Elapsed returns the wall-clock duration since the run started.
func (c *Context[T]) Elapsed() time.Duration {
	if c.stopped.IsZero() {
		return time.Since(c.started)
	}
	return c.stopped.Sub(c.started)
}

// UpsertOperation records a (count, duration) operation metric under
// name, the shape every step uses for its own timing/count metric.
func (c *Context[T]) UpsertOperation(name string, count float32, elapsed time.Duration) {
	c.Metrics.Upsert(name, stats.Operation{Value: count, Elapsed: elapsed})
}

// UpsertMetric stores an already-built metric in the context's
// generation-scoped metric set, keyed by its own name, replacing any
// metric already held under that name (values are not merged).
func (c *Context[T]) UpsertMetric(m stats.Metric) {
	c.Metrics.Add(m)
}
