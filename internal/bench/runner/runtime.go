package runner

import (
	"math"
	"sort"
	"time"
)

// RuntimeStats summarizes the wall-clock durations of the timed queries of one algorithm.
type RuntimeStats struct {
	Min         time.Duration `json:"min"`
	Max         time.Duration `json:"max"`
	Mean        time.Duration `json:"mean"`
	Median      time.Duration `json:"median"`
	P90         time.Duration `json:"p90"`
	Stddev      time.Duration `json:"stddev"`
	Total       time.Duration `json:"total"`
	SampleCount int           `json:"sample_count"`
}

func ComputeRuntimeStats(durations []time.Duration) RuntimeStats {
	if len(durations) == 0 {
		return RuntimeStats{}
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	stats := RuntimeStats{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Median:      percentile(sorted, 50),
		P90:         percentile(sorted, 90),
		SampleCount: len(sorted),
	}

	for _, d := range sorted {
		stats.Total += d
	}
	stats.Mean = stats.Total / time.Duration(len(sorted))

	if len(sorted) > 1 {
		var sumSquares float64
		meanNs := float64(stats.Mean.Nanoseconds())
		for _, d := range sorted {
			diff := float64(d.Nanoseconds()) - meanNs
			sumSquares += diff * diff
		}
		stats.Stddev = time.Duration(math.Sqrt(sumSquares / float64(len(sorted)-1)))
	}

	return stats
}

// FromSeconds converts runtime archive values into durations.
func FromSeconds(seconds []float64) []time.Duration {
	out := make([]time.Duration, len(seconds))
	for i, s := range seconds {
		out[i] = time.Duration(s * float64(time.Second))
	}
	return out
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return time.Duration(float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight)
}

func (s RuntimeStats) IsZero() bool {
	return s.SampleCount == 0
}
