package genome

import "math"

// Score is a fixed-length vector of finite float32 values representing
// an individual's fitness. Dimension is always >= 1; NaN components are
// rejected at construction, matching the reference implementation's
// panic-on-NaN contract (original_source/crates/radiate-core/src/objectives/score.rs).
type Score struct {
	values []float32
}

// NewScore builds a Score from values, panicking if any component is
// NaN or if values is empty.
func NewScore(values []float32) Score {
	if len(values) == 0 {
		panic("genome: score must have at least one value")
	}
	for _, v := range values {
		if math.IsNaN(float64(v)) {
			panic("genome: score value cannot be NaN")
		}
	}
	cp := make([]float32, len(values))
	copy(cp, values)
	return Score{values: cp}
}

// ScoreFromFloat32 builds a single-component Score.
func ScoreFromFloat32(v float32) Score {
	return NewScore([]float32{v})
}

// ScoreFromInt builds a single-component Score from an int.
func ScoreFromInt(v int) Score {
	return NewScore([]float32{float32(v)})
}

// ScoreFromUsize is the same as ScoreFromInt, for non-negative counts.
func ScoreFromUsize(v int) Score {
	return ScoreFromInt(v)
}

// Values returns the Score's components. Callers must not mutate the
// returned slice.
func (s Score) Values() []float32 { return s.values }

// Len returns the number of components.
func (s Score) Len() int { return len(s.values) }

// AsF32 returns the first component, or NaN if the Score is zero-valued
// (unset).
func (s Score) AsF32() float32 {
	if len(s.values) == 0 {
		return float32(math.NaN())
	}
	return s.values[0]
}

// AsInt truncates the first component to an int.
func (s Score) AsInt() int {
	return int(s.values[0])
}

// AsUsize is an alias for AsInt, for non-negative scores.
func (s Score) AsUsize() int {
	return s.AsInt()
}

// Equal reports component-wise equality.
func (s Score) Equal(other Score) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// Less reports whether s is lexicographically less than other.
func (s Score) Less(other Score) bool {
	n := len(s.values)
	if len(other.values) < n {
		n = len(other.values)
	}
	for i := 0; i < n; i++ {
		if s.values[i] != other.values[i] {
			return s.values[i] < other.values[i]
		}
	}
	return len(s.values) < len(other.values)
}

// Add returns the component-wise sum of two equal-length scores.
func (s Score) Add(other Score) Score {
	values := make([]float32, len(s.values))
	for i := range values {
		values[i] = s.values[i] + other.values[i]
	}
	return Score{values: values}
}

// Sub returns the component-wise difference of two equal-length scores.
func (s Score) Sub(other Score) Score {
	values := make([]float32, len(s.values))
	for i := range values {
		values[i] = s.values[i] - other.values[i]
	}
	return Score{values: values}
}
