// Package stats keeps running statistics over turn scores.
package stats

import "math"

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic accumulates a running mean and variance (Welford) along with
// the extremes and the raw samples, which the histogram needs.
type Statistic struct {
	n       int
	mean    float64
	m2      float64
	min     float64
	max     float64
	samples []float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.min, s.max = val, val
	}
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
	s.samples = append(s.samples, val)
}

func (s *Statistic) Iterations() int { return s.n }

func (s *Statistic) Mean() float64 { return s.mean }

func (s *Statistic) Min() float64 { return s.min }

func (s *Statistic) Max() float64 { return s.max }

// Variance is the sample variance; 0 with fewer than two samples.
func (s *Statistic) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

// ConfidenceInterval returns the bounds around the mean at the given
// confidence, in percent.
func (s *Statistic) ConfidenceInterval(pct float64) (lo, hi float64) {
	margin := ZVal(pct) * s.StandardError()
	return s.mean - margin, s.mean + margin
}

// Samples returns a copy of everything pushed so far.
func (s *Statistic) Samples() []float64 {
	return append([]float64(nil), s.samples...)
}

func (s *Statistic) Reset() {
	*s = Statistic{}
}
