package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/stats"
)

func TestAdderKahanCompensationStaysAccurate(t *testing.T) {
	var naive float32
	var adder stats.Adder
	for i := 0; i < 1_000_000; i++ {
		naive += 0.1
		adder.Add(0.1)
	}

	compensated := adder.Value()
	assert.InDelta(t, 100_000.0, float64(compensated), 1e-3)
	assert.Less(t, math.Abs(100_000.0-float64(compensated)), math.Abs(100_000.0-float64(naive)))
}

func buildStatistic(values ...float32) stats.Statistic {
	var s stats.Statistic
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func TestStatisticMeanAndVariance(t *testing.T) {
	s := buildStatistic(1, 2, 3, 4, 5)
	assert.InDelta(t, 3.0, float64(s.Mean()), 1e-6)
	assert.InDelta(t, 2.5, float64(s.Variance()), 1e-6)
	assert.Equal(t, int32(5), s.Count())
	assert.Equal(t, float32(1), s.Min())
	assert.Equal(t, float32(5), s.Max())
}

func TestStatisticVarianceEdgeCases(t *testing.T) {
	var empty stats.Statistic
	assert.True(t, math.IsNaN(float64(empty.Variance())))

	one := buildStatistic(7)
	assert.Equal(t, float32(0), one.Variance())
}

func TestStatisticMergeIsAssociative(t *testing.T) {
	a := buildStatistic(1, 2, 3)
	b := buildStatistic(4, 5)
	c := buildStatistic(6, 7, 8, 9)

	left := a
	bc := b
	bc.Merge(&c)
	left.Merge(&bc)

	right := a
	right.Merge(&b)
	right.Merge(&c)

	assert.InEpsilon(t, float64(left.Mean()), float64(right.Mean()), 1e-4)
	assert.InDelta(t, float64(left.Variance()), float64(right.Variance()), 1e-3)
	assert.Equal(t, left.Count(), right.Count())
}

func TestStatisticMergeMatchesSinglePassOverAllValues(t *testing.T) {
	merged := buildStatistic(1, 2, 3)
	rest := buildStatistic(4, 5, 6, 7)
	merged.Merge(&rest)

	direct := buildStatistic(1, 2, 3, 4, 5, 6, 7)

	assert.InEpsilon(t, float64(direct.Mean()), float64(merged.Mean()), 1e-4)
	assert.InDelta(t, float64(direct.Variance()), float64(merged.Variance()), 1e-3)
	assert.Equal(t, direct.Count(), merged.Count())
}

func TestStatisticSkewnessAndKurtosisRequireMinimumCount(t *testing.T) {
	two := buildStatistic(1, 2)
	assert.True(t, math.IsNaN(float64(two.Skewness())))
	assert.True(t, math.IsNaN(float64(two.Kurtosis())))

	three := buildStatistic(1, 2, 3)
	assert.False(t, math.IsNaN(float64(three.Skewness())))

	four := buildStatistic(1, 2, 3, 4)
	assert.False(t, math.IsNaN(float64(four.Kurtosis())))
}

func TestMetricSetUpsertCreatesAndAccumulates(t *testing.T) {
	set := stats.NewMetricSet()
	set.Upsert(stats.Evaluation, float32(3))
	set.Upsert(stats.Evaluation, float32(4))

	m, ok := set.Get(stats.Evaluation)
	require.True(t, ok)
	assert.Equal(t, int32(2), m.Count())
	sum, ok := m.ValueSum()
	require.True(t, ok)
	assert.InDelta(t, 7.0, float64(sum), 1e-6)
}

func TestMetricSetFlushAllIntoSumsAcrossGenerations(t *testing.T) {
	lifetime := stats.NewMetricSet()

	gen1 := stats.NewMetricSet()
	gen1.Upsert(stats.Evaluation, float32(10))
	gen1.FlushAllInto(lifetime)

	gen2 := stats.NewMetricSet()
	gen2.Upsert(stats.Evaluation, float32(20))
	gen2.FlushAllInto(lifetime)

	m, ok := lifetime.Get(stats.Evaluation)
	require.True(t, ok)
	sum, ok := m.ValueSum()
	require.True(t, ok)
	assert.InDelta(t, 30.0, float64(sum), 1e-6)
}

func TestMetricSetFlushAllIntoReplacesUnderRollupReplace(t *testing.T) {
	lifetime := stats.NewMetricSet()

	gen1 := stats.NewMetricSet()
	gen1.UpsertWithScope("best", float32(1), stats.ScopeGeneration, stats.RollupReplace)
	gen1.FlushAllInto(lifetime)

	gen2 := stats.NewMetricSet()
	gen2.UpsertWithScope("best", float32(2), stats.ScopeGeneration, stats.RollupReplace)
	gen2.FlushAllInto(lifetime)

	m, ok := lifetime.Get("best")
	require.True(t, ok)
	last := m.LastValue()
	assert.Equal(t, float32(2), last)
}
