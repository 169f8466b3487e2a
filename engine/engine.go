package engine

import (
	"math"
	"time"

	"github.com/aram/geneticengine/engineerr"
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/pareto"
	"github.com/aram/geneticengine/random"
	"github.com/aram/geneticengine/stats"
	"github.com/aram/geneticengine/workerpool"
)

// Default builder values (spec §6), applied before any Option runs.
const (
	defaultPopulationSize    = 100
	defaultOffspringFraction = 0.8
	defaultMaxAge            = 25
	defaultFrontMinSize      = 1000
	defaultFrontMaxSize      = 1500
	defaultNumThreads        = 1
	defaultTournamentSize    = 3
)

// Engine holds one run's fully resolved configuration plus the worker
// pool and random source it was built with. Built exclusively through
// New and its functional Options, generalizing the teacher's
// ga.New(options ...func(*GA)) builder (ga/ga.go) to a generic engine.
type Engine[T any] struct {
	problem Problem[T]

	objective         objective.Objective
	populationSize    int
	offspringFraction float32
	maxAge            int
	survivorSelector  Selector
	offspringSelector Selector
	alterers          []Alter
	replacement       ReplacementStrategy
	frontMinSize      int
	frontMaxSize      int
	numThreads        int
	auditors          []Auditor

	rng  *random.Source
	pool *workerpool.Pool
}

// Option configures an Engine[T] at construction time.
type Option[T any] func(*Engine[T])

// WithObjective overrides the default Single(Maximize) objective.
func WithObjective[T any](obj objective.Objective) Option[T] {
	return func(e *Engine[T]) { e.objective = obj }
}

// WithPopulationSize overrides the default population size of 100.
func WithPopulationSize[T any](n int) Option[T] {
	return func(e *Engine[T]) { e.populationSize = n }
}

// WithOffspringFraction overrides the default offspring fraction of 0.8.
func WithOffspringFraction[T any](f float32) Option[T] {
	return func(e *Engine[T]) { e.offspringFraction = f }
}

// WithMaxAge overrides the default max phenotype age of 25 generations.
func WithMaxAge[T any](age int) Option[T] {
	return func(e *Engine[T]) { e.maxAge = age }
}

// WithSurvivorSelector overrides the default Tournament(3) survivor selector.
func WithSurvivorSelector[T any](s Selector) Option[T] {
	return func(e *Engine[T]) { e.survivorSelector = s }
}

// WithOffspringSelector overrides the default roulette offspring selector.
func WithOffspringSelector[T any](s Selector) Option[T] {
	return func(e *Engine[T]) { e.offspringSelector = s }
}

// WithAlterers overrides the default empty alterer pipeline. Order matters:
// alterers run in the order given, each seeing the previous one's output.
func WithAlterers[T any](alterers ...Alter) Option[T] {
	return func(e *Engine[T]) { e.alterers = alterers }
}

// WithReplacementStrategy overrides the default DefaultReplacement (always
// re-encode via the problem).
func WithReplacementStrategy[T any](r ReplacementStrategy) Option[T] {
	return func(e *Engine[T]) { e.replacement = r }
}

// WithFrontSize overrides the default Pareto front bounds of [1000, 1500].
// Only consulted for multi-objective runs.
func WithFrontSize[T any](min, max int) Option[T] {
	return func(e *Engine[T]) { e.frontMinSize, e.frontMaxSize = min, max }
}

// WithNumThreads overrides the default worker pool size of 1.
func WithNumThreads[T any](n int) Option[T] {
	return func(e *Engine[T]) { e.numThreads = n }
}

// WithSeed fixes the engine's random source to a reproducible seed,
// instead of the default time-seeded source.
func WithSeed[T any](seed int64) Option[T] {
	return func(e *Engine[T]) { e.rng = random.NewSeeded(seed) }
}

// WithAuditors sets the auditors run at the end of every generation,
// replacing any set by an earlier WithAuditors.
func WithAuditors[T any](auditors ...Auditor) Option[T] {
	return func(e *Engine[T]) { e.auditors = auditors }
}

// New builds an Engine for problem, applying options over the spec's
// defaults, then validating the result.
func New[T any](problem Problem[T], options ...Option[T]) (*Engine[T], error) {
	e := &Engine[T]{
		problem:           problem,
		objective:         objective.Single(objective.Maximize),
		populationSize:    defaultPopulationSize,
		offspringFraction: defaultOffspringFraction,
		maxAge:            defaultMaxAge,
		replacement:       DefaultReplacement{},
		frontMinSize:      defaultFrontMinSize,
		frontMaxSize:      defaultFrontMaxSize,
		numThreads:        defaultNumThreads,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.rng == nil {
		e.rng = random.New()
	}
	if e.survivorSelector == nil {
		e.survivorSelector = &defaultTournamentSelector{size: defaultTournamentSize, rng: e.rng}
	}
	if e.offspringSelector == nil {
		e.offspringSelector = &defaultRouletteSelector{rng: e.rng}
	}

	if err := e.validate(); err != nil {
		return nil, err
	}
	e.pool = workerpool.New(e.numThreads)
	return e, nil
}

func (e *Engine[T]) validate() error {
	if e.problem == nil {
		return engineerr.New(engineerr.InvalidConfiguration, "problem must not be nil")
	}
	if e.populationSize < 1 {
		return engineerr.Newf(engineerr.InvalidConfiguration, "population_size must be >= 1, got %d", e.populationSize)
	}
	if e.offspringFraction < 0 || e.offspringFraction > 1 {
		return engineerr.Newf(engineerr.InvalidConfiguration, "offspring_fraction must be in [0, 1], got %v", e.offspringFraction)
	}
	if e.maxAge < 1 {
		return engineerr.Newf(engineerr.InvalidConfiguration, "max_age must be >= 1, got %d", e.maxAge)
	}
	if e.frontMinSize < 1 || e.frontMaxSize < e.frontMinSize {
		return engineerr.Newf(engineerr.InvalidConfiguration, "front size bounds invalid: [%d, %d]", e.frontMinSize, e.frontMaxSize)
	}
	if e.numThreads < 1 {
		return engineerr.Newf(engineerr.InvalidConfiguration, "num_threads must be >= 1, got %d", e.numThreads)
	}
	return nil
}

// Close releases the engine's worker pool. Callers that use Run exactly
// once do not need to call Close themselves - Run does it on return.
func (e *Engine[T]) Close() { e.pool.Close() }

func (e *Engine[T]) offspringCount() int {
	n := int(math.Round(float64(e.populationSize) * float64(e.offspringFraction)))
	if n > e.populationSize {
		n = e.populationSize
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (e *Engine[T]) newPopulation(generation int) *genome.Population {
	individuals := make([]*genome.Phenotype, e.populationSize)
	for i := range individuals {
		individuals[i] = genome.NewPhenotype(e.problem.Encode(), generation)
	}
	return genome.NewPopulation(individuals)
}

func scoreAccessor(p *genome.Phenotype) (genome.Score, bool) { return p.Score() }

// Run initializes a fresh Context and advances it for exactly limit
// generations (limit must be >= 1), closing the engine's worker pool
// before returning. limit is a generation count, not a predicate over
// the Context: Run has no other stopping condition (e.g. reaching a
// score target) and only returns early when a generation fails.
func (e *Engine[T]) Run(limit int) (*Context[T], error) {
	defer e.pool.Close()

	ctx := &Context[T]{
		Population: e.newPopulation(0),
		Metrics:    stats.NewMetricSet(),
		Lifetime:   stats.NewMetricSet(),
	}
	ctx.started = time.Now()
	if e.objective.IsMulti() {
		ctx.Front = pareto.New(e.frontMinSize, e.frontMaxSize, scoreAccessor)
	}

	for i := 0; i < limit; i++ {
		if err := e.Next(ctx); err != nil {
			ctx.stopped = time.Now()
			return ctx, err
		}
	}
	ctx.stopped = time.Now()
	return ctx, nil
}

// Next advances ctx by exactly one generation, following the
// reference's fixed step order (standard.rs's next()): evaluate,
// select survivors, select+alter offspring, recombine, filter,
// re-evaluate, update front, audit.
func (e *Engine[T]) Next(ctx *Context[T]) error {
	generation := ctx.Index
	metrics := stats.NewMetricSet()

	evalMetric, err := evaluateStep(e.pool, e.problem, ctx.Population, e.objective)
	if err != nil {
		return err
	}
	metrics.Add(evalMetric)

	offspringCount := e.offspringCount()
	survivorCount := e.populationSize - offspringCount

	survivors, survivorMetric := selectStep(e.survivorSelector, ctx.Population, e.objective, survivorCount, stats.SurvivorSelect)
	offspring, offspringMetric := selectStep(e.offspringSelector, ctx.Population, e.objective, offspringCount, stats.OffspringSelect)
	metrics.Add(survivorMetric)
	metrics.Add(offspringMetric)

	// Spec §4.6.3: offspring are sorted by objective after selection and
	// before alteration.
	e.objective.Sort(offspring)

	for _, m := range alterStep(e.alterers, offspring, generation, e.rng) {
		metrics.Add(m)
	}

	next := recombineStep(survivors, offspring)
	if next.Len() != e.populationSize {
		return engineerr.Newf(engineerr.InvariantViolation, "population size drifted to %d after recombine, want %d", next.Len(), e.populationSize)
	}

	for _, m := range filterStep(next, generation, e.maxAge, e.replacement, e.problem.Encode) {
		metrics.Add(m)
	}

	evalMetric, err = evaluateStep(e.pool, e.problem, next, e.objective)
	if err != nil {
		return err
	}
	metrics.Add(evalMetric)

	ctx.Population = next

	if ctx.Front != nil {
		metrics.Add(frontStep(ctx.Front, ctx.Population, e.objective, generation, e.numThreads))
	}

	for _, m := range auditStep(ctx, e.problem, e.objective, e.auditors) {
		metrics.Add(m)
	}

	metrics.FlushAllInto(ctx.Lifetime)
	ctx.Metrics = metrics
	return nil
}
