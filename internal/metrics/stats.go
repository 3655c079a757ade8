package metrics

import (
	"math"
	"sort"
	"time"
)

// Stats summarizes a set of measured durations.
type Stats struct {
	Average time.Duration
	Median  time.Duration
	P90     time.Duration
}

// Summarize reduces a collection of optional durations into average, median
// and 90th-percentile statistics, each rounded to the nearest whole second.
// nil samples (unmeasured items) are dropped first; if none remain the
// result is nil.
func Summarize(samples []*time.Duration) *Stats {
	var seconds []float64
	for _, s := range samples {
		if s != nil {
			seconds = append(seconds, s.Seconds())
		}
	}
	if len(seconds) == 0 {
		return nil
	}
	sort.Float64s(seconds)

	return &Stats{
		Average: secondsToDuration(average(seconds)),
		Median:  secondsToDuration(percentile(seconds, 50)),
		P90:     secondsToDuration(percentile(seconds, 90)),
	}
}

func average(sorted []float64) float64 {
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// percentile computes the p-th percentile of sorted values using linear
// interpolation between the two nearest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s)) * time.Second
}
