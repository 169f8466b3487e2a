// Package stats provides numerically-stable running statistics: a
// Kahan-compensated adder, four-moment running statistics (mean,
// variance, skewness, kurtosis) computed with Pebay's online formulas,
// and a duration-based time statistic. The formulas and edge-case
// behavior are ported from original_source/crates/radiate-core/src/stats/statistics.rs.
package stats

import "math"

// Adder is a running sum with Kahan compensation, keeping the error
// introduced by floating-point addition bounded even over millions of
// terms.
type Adder struct {
	compensation float32
	simpleSum    float32
	sum          float32
}

// Value returns the compensated running total. If the compensated
// result is NaN (can happen with certain pathological inputs), the
// uncompensated simple sum is returned instead. Downstream code should
// not rely on this fallback triggering.
func (a *Adder) Value() float32 {
	result := a.sum + a.compensation
	if math.IsNaN(float64(result)) {
		return a.simpleSum
	}
	return result
}

// Add folds value into the running sum.
func (a *Adder) Add(value float32) {
	y := value - a.compensation
	t := a.sum + y

	a.compensation = (t - a.sum) - y
	a.sum = t
	a.simpleSum += value
}

// Statistic maintains count, min, max, last value, running sum, and
// the first four central moments of a stream of float32 samples.
type Statistic struct {
	m1, m2, m3, m4 Adder
	sum            Adder
	count          int32
	lastValue      float32
	max            float32
	min            float32
}

// NewStatistic creates a Statistic seeded with a single value.
func NewStatistic(initial float32) Statistic {
	s := Statistic{}
	s.Add(initial)
	return s
}

// LastValue returns the most recently added value.
func (s *Statistic) LastValue() float32 { return s.lastValue }

// Count returns the number of samples added.
func (s *Statistic) Count() int32 { return s.count }

// Min returns the minimum sample seen.
func (s *Statistic) Min() float32 { return s.min }

// Max returns the maximum sample seen.
func (s *Statistic) Max() float32 { return s.max }

// Mean returns the running mean, 0 for an empty statistic.
func (s *Statistic) Mean() float32 {
	if s.count == 0 {
		return 0
	}
	return s.m1.Value()
}

// Sum returns the Kahan-compensated running sum.
func (s *Statistic) Sum() float32 {
	return s.sum.Value()
}

// Variance returns the sample variance. For n == 1 this implementation
// returns 0 (a concrete, documented choice — see DESIGN.md); for n == 0
// it returns NaN, matching the reference's "undefined for n < 2" clause.
func (s *Statistic) Variance() float32 {
	switch {
	case s.count == 0:
		return float32(math.NaN())
	case s.count == 1:
		return 0
	default:
		return s.m2.Value() / float32(s.count-1)
	}
}

// StdDev returns the sample standard deviation.
func (s *Statistic) StdDev() float32 {
	return float32(math.Sqrt(float64(s.Variance())))
}

// Skewness returns the sample skewness, requiring count >= 3.
func (s *Statistic) Skewness() float32 {
	if s.count < 3 {
		return float32(math.NaN())
	}
	n := float32(s.count)
	temp := s.m2.Value()/n - 1
	if temp < 10e-10 {
		return 0
	}
	return n * s.m3.Value() / ((n - 1) * (n - 2) * float32(math.Sqrt(float64(temp))) * temp)
}

// Kurtosis returns the sample kurtosis, requiring count >= 4.
func (s *Statistic) Kurtosis() float32 {
	if s.count < 4 {
		return float32(math.NaN())
	}
	n := float32(s.count)
	temp := s.m2.Value()/n - 1
	if temp < 10e-10 {
		return 0
	}
	return n * (n + 1) * s.m4.Value() / ((n - 1) * (n - 2) * (n - 3) * temp * temp)
}

// Add folds a new sample into the running moments using Pebay's online
// update formulas.
func (s *Statistic) Add(value float32) {
	first := s.count == 0
	s.count++

	n := float32(s.count)
	d := value - s.m1.Value()
	dn := d / n
	dn2 := dn * dn
	t1 := d * dn * (n - 1)

	s.m1.Add(dn)

	s.m4.Add(t1 * dn2 * (n*n - 3*n + 3))
	s.m4.Add(6*dn2*s.m2.Value() - 4*dn*s.m3.Value())

	s.m3.Add(t1*dn*(n-2) - 3*dn*s.m2.Value())
	s.m2.Add(t1)

	s.lastValue = value
	if first {
		s.max = value
		s.min = value
	} else {
		if value > s.max {
			s.max = value
		}
		if value < s.min {
			s.min = value
		}
	}
	s.sum.Add(value)
}

// Clear resets the statistic to its empty state.
func (s *Statistic) Clear() {
	*s = Statistic{}
}

// Merge combines other into s using Pebay's parallel-moment formulas,
// computed in float64 intermediates and stored back as float32. Merge
// is associative up to float32 rounding.
func (s *Statistic) Merge(other *Statistic) {
	if other.count == 0 {
		return
	}
	if s.count == 0 {
		*s = *other
		return
	}
	if other.count == 1 {
		s.Add(other.lastValue)
		return
	}
	if s.count == 1 {
		last := s.lastValue
		*s = *other
		s.Add(last)
		return
	}

	n1 := float64(s.count)
	n2 := float64(other.count)

	mean1 := float64(s.m1.Value())
	mean2 := float64(other.m1.Value())

	m21 := float64(s.m2.Value())
	m22 := float64(other.m2.Value())
	m31 := float64(s.m3.Value())
	m32 := float64(other.m3.Value())
	m41 := float64(s.m4.Value())
	m42 := float64(other.m4.Value())

	n := n1 + n2
	delta := mean2 - mean1
	delta2 := delta * delta
	delta3 := delta2 * delta
	delta4 := delta3 * delta
	n1n2 := n1 * n2

	mean := (n1*mean1 + n2*mean2) / n

	m2 := m21 + m22 + delta2*n1n2/n

	m3 := m31 + m32 +
		delta3*n1n2*(n1-n2)/(n*n) +
		3.0*delta*(n1*m22-n2*m21)/n

	m4 := m41 + m42 +
		delta4*n1n2*(n1*n1-n1*n2+n2*n2)/(n*n*n) +
		6.0*delta2*(n1*n1*m22+n2*n2*m21)/(n*n) +
		4.0*delta*(n1*m32-n2*m31)/n

	s.m1 = Adder{}
	s.m1.Add(float32(mean))

	s.m2 = Adder{}
	s.m2.Add(float32(m2))

	s.m3 = Adder{}
	s.m3.Add(float32(m3))

	s.m4 = Adder{}
	s.m4.Add(float32(m4))

	s.sum.Add(other.Sum())
	s.count += other.count
	if other.max > s.max {
		s.max = other.max
	}
	if other.min < s.min {
		s.min = other.min
	}
	s.lastValue = other.lastValue
}

// Merged returns a merged copy of s and other without mutating s.
func (s Statistic) Merged(other *Statistic) Statistic {
	s.Merge(other)
	return s
}
