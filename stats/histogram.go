package stats

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
)

const (
	HistogramBins  = 10
	HistogramWidth = 40
)

// WriteHistogram draws the samples as a text histogram. Nothing is written
// for an empty statistic.
func (s *Statistic) WriteHistogram(w io.Writer, bins int) error {
	if s.n == 0 {
		return nil
	}
	if s.min == s.max {
		// Hist needs a nonzero range.
		_, err := fmt.Fprintf(w, "%g: %d\n", s.min, s.n)
		return err
	}
	if bins <= 0 {
		bins = HistogramBins
	}
	h := histogram.Hist(bins, s.samples)
	return histogram.Fprint(w, h, histogram.Linear(HistogramWidth))
}

// Summary is a one-line description: count, mean, stdev and 95% interval.
func (s *Statistic) Summary() string {
	if s.n == 0 {
		return "no samples"
	}
	lo, hi := s.ConfidenceInterval(95)
	return fmt.Sprintf("n=%d mean=%.2f stdev=%.2f min=%g max=%g 95%%CI=[%.2f, %.2f]",
		s.n, s.mean, s.Stdev(), s.min, s.max, lo, hi)
}
