package engine

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aram/geneticengine/engineerr"
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/pareto"
	"github.com/aram/geneticengine/random"
	"github.com/aram/geneticengine/stats"
	"github.com/aram/geneticengine/workerpool"
)

// evaluationJob pairs a phenotype's taken genotype with the handle to
// its in-flight score, so the genotype can be restored once the worker
// finishes (the take/return discipline documented on Phenotype.TakeGenotype).
type evaluationJob struct {
	ph       *genome.Phenotype
	genotype genome.Genotype
	handle   *workerpool.Handle[genome.Score]
}

// evaluateStep scores every unevaluated phenotype in population by
// fanning the work out across pool, then sorts the population under
// obj. Mirrors standard.rs's evaluate(): only phenotypes lacking a
// score are resubmitted, so a generation that altered nothing pays for
// no evaluation at all. If a worker fails to produce a result for a
// submitted genotype (its job panicked), the genotype is still
// restored to its phenotype - evaluation must never leave a phenotype
// missing its genotype - and the first such failure is returned as an
// EvaluationLost error, fatal for the run (spec §5/§7).
func evaluateStep[T any](pool *workerpool.Pool, problem Problem[T], population *genome.Population, obj objective.Objective) (stats.Metric, error) {
	timer := time.Now()
	var jobs []evaluationJob

	population.Range(func(_ int, ph *genome.Phenotype) bool {
		if ph.IsEvaluated() {
			return true
		}
		g := ph.TakeGenotype()
		handle := workerpool.SubmitWithResult(pool, func() genome.Score {
			return problem.Eval(g)
		})
		jobs = append(jobs, evaluationJob{ph: ph, genotype: g, handle: handle})
		return true
	})

	var lost error
	for _, j := range jobs {
		score, err := j.handle.Result()
		j.ph.SetGenotype(j.genotype)
		if err != nil {
			if lost == nil {
				lost = engineerr.Wrap(engineerr.EvaluationLost, "worker failed to evaluate a phenotype", err)
			}
			continue
		}
		j.ph.SetScore(score)
	}
	if lost != nil {
		return stats.Metric{}, lost
	}

	obj.Sort(population)

	return stats.NewMetric(stats.Evaluation).Upsert(stats.Operation{
		Value:   float32(len(jobs)),
		Elapsed: time.Since(timer),
	}), nil
}

// selectStep runs selector over population and clones every selected
// phenotype, so the returned sub-population shares no Phenotype
// pointers with population or with any other selectStep's result -
// alterers mutate selected individuals in place and must never corrupt
// a phenotype another selection also picked.
func selectStep(selector Selector, population *genome.Population, obj objective.Objective, count int, metricName string) (*genome.Population, stats.Metric) {
	timer := time.Now()
	selected := selector.Select(population, obj, count)

	cloned := make([]*genome.Phenotype, selected.Len())
	for i := 0; i < selected.Len(); i++ {
		cloned[i] = selected.Get(i).Clone()
	}

	metric := stats.NewMetric(metricName).Upsert(stats.Operation{
		Value:   float32(len(cloned)),
		Elapsed: time.Since(timer),
	})
	return genome.NewPopulation(cloned), metric
}

// alterStep runs every alterer in order over offspring, in the order
// given, matching the reference's sequential alterer pipeline (spec §4.6).
func alterStep(alterers []Alter, offspring *genome.Population, generation int, rng *random.Source) []stats.Metric {
	var metrics []stats.Metric
	for _, a := range alterers {
		metrics = append(metrics, a.Apply(offspring, generation, rng)...)
	}
	return metrics
}

// recombineStep concatenates survivors and offspring into one
// population of their combined length, the generation's next population.
func recombineStep(survivors, offspring *genome.Population) *genome.Population {
	combined := make([]*genome.Phenotype, 0, survivors.Len()+offspring.Len())
	combined = append(combined, survivors.Individuals()...)
	combined = append(combined, offspring.Individuals()...)
	return genome.NewPopulation(combined)
}

// filterStep replaces every phenotype that is too old (age > maxAge)
// or invalid with a freshly encoded genotype via replacement, stamping
// it reborn at generation. Age and invalidity counts are tracked
// separately but share one measured duration, since a single pass
// computes both (spec's FILTER_AGE/FILTER_INVALID metrics).
func filterStep(population *genome.Population, generation, maxAge int, replacement ReplacementStrategy, encode Encoder) []stats.Metric {
	timer := time.Now()
	agedCount, invalidCount := 0, 0

	population.RangeMut(func(_ int, ph *genome.Phenotype) {
		switch {
		case ph.Age(generation) > maxAge:
			agedCount++
			ph.SetGenotype(replacement.Replace(population, encode))
			ph.Invalidate(generation)
		case !ph.Genotype().IsValid():
			invalidCount++
			ph.SetGenotype(replacement.Replace(population, encode))
			ph.Invalidate(generation)
		}
	})

	elapsed := time.Since(timer)
	return []stats.Metric{
		stats.NewMetric(stats.FilterAge).Upsert(stats.Operation{Value: float32(agedCount), Elapsed: elapsed}),
		stats.NewMetric(stats.FilterInvalid).Upsert(stats.Operation{Value: float32(invalidCount), Elapsed: elapsed}),
	}
}

// frontStep checks every phenotype born this generation (generation ==
// current - freshly evaluated or filter-replaced individuals; an
// unchanged survivor was already checked against the front in the
// generation it was born) against front concurrently (front.Dominates
// takes only a read lock, so many goroutines may call it at once),
// collects the additions/removals each check produced, and applies them
// in a single Clean call - front has exactly one writer per generation.
// The parallel fan-out is built on golang.org/x/sync/errgroup rather
// than the worker pool, since each check is tiny and short-lived and
// errgroup's bounded Go/Wait pairing fits that shape better than a
// submit-and-block-on-handle round trip.
func frontStep(front *pareto.Front, population *genome.Population, obj objective.Objective, generation, concurrency int) stats.Metric {
	timer := time.Now()

	var mu sync.Mutex
	var additions, removals []*genome.Phenotype
	dispatched := 0

	g := new(errgroup.Group)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	population.Range(func(_ int, ph *genome.Phenotype) bool {
		if ph.Generation() != generation || !ph.IsEvaluated() {
			return true
		}
		dispatched++
		candidate := ph
		g.Go(func() error {
			ok, removed := front.Dominates(candidate, obj)
			if !ok {
				return nil
			}
			mu.Lock()
			additions = append(additions, candidate)
			removals = append(removals, removed...)
			mu.Unlock()
			return nil
		})
		return true
	})
	_ = g.Wait()

	front.Clean(additions, removals)

	return stats.NewMetric(stats.FrontMetric).Upsert(stats.Operation{
		Value:   float32(dispatched),
		Elapsed: time.Since(timer),
	})
}

// auditStep sorts population under obj, runs every auditor over it, and
// advances ctx: Best/Score are updated from the new top individual (if
// it improves on the previous one) and Index is incremented, matching
// the reference's end-of-generation bookkeeping in standard.rs.
func auditStep[T any](ctx *Context[T], problem Problem[T], obj objective.Objective, auditors []Auditor) []stats.Metric {
	obj.Sort(ctx.Population)

	var metrics []stats.Metric
	for _, a := range auditors {
		metrics = append(metrics, a.Audit(ctx.Index, ctx.Population)...)
	}

	if ctx.Population.Len() > 0 {
		top := ctx.Population.Get(0)
		if score, ok := top.Score(); ok {
			if ctx.Score == nil || obj.IsBetter(score, *ctx.Score) {
				s := score
				ctx.Score = &s
				ctx.Best = problem.Decode(top.Genotype())
			}
		}
	}

	ctx.Index++
	return metrics
}
