package genome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/genome"
)

func TestNewScorePanicsOnNaN(t *testing.T) {
	assert.Panics(t, func() {
		genome.NewScore([]float32{1, nan()})
	})
}

func TestNewScorePanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		genome.NewScore(nil)
	})
}

func TestScoreLessLexicographic(t *testing.T) {
	a := genome.NewScore([]float32{1, 5})
	b := genome.NewScore([]float32{1, 6})
	c := genome.NewScore([]float32{2, 0})

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c))
}

func TestScoreEqual(t *testing.T) {
	a := genome.NewScore([]float32{1, 2, 3})
	b := genome.NewScore([]float32{1, 2, 3})
	c := genome.NewScore([]float32{1, 2, 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestScoreAddSub(t *testing.T) {
	a := genome.NewScore([]float32{3, 4})
	b := genome.NewScore([]float32{1, 1})

	require.Equal(t, []float32{4, 5}, a.Add(b).Values())
	require.Equal(t, []float32{2, 3}, a.Sub(b).Values())
}

func TestScoreFromIntAndAsInt(t *testing.T) {
	s := genome.ScoreFromInt(42)
	assert.Equal(t, 42, s.AsInt())
	assert.Equal(t, 1, s.Len())
}

func nan() float32 {
	var zero float32
	return zero / zero
}
