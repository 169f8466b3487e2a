package engine

import (
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/stats"
)

// Auditor inspects the (already objective-sorted) population at the
// end of a generation and produces additional metrics - a hook for
// diagnostics that don't belong to any single step, e.g. population
// diversity or species counts.
type Auditor interface {
	Audit(generation int, population *genome.Population) []stats.Metric
}

// AuditorFunc adapts a plain function to the Auditor interface.
type AuditorFunc func(generation int, population *genome.Population) []stats.Metric

func (f AuditorFunc) Audit(generation int, population *genome.Population) []stats.Metric {
	return f(generation, population)
}
