package stats

// Well-known metric names emitted by the engine's steps, mirroring
// the metric_names module referenced throughout the reference engine's
// standard.rs step implementations.
const (
	Evaluation     = "evaluation"
	FilterAge      = "filter_age"
	FilterInvalid  = "filter_invalid"
	FrontMetric    = "front"
	SurvivorSelect = "survivor_selector"
	OffspringSelect = "offspring_selector"
)
