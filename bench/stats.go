package bench

import (
	"math"
	"sort"
	"time"
)

// Summarize computes min, median, mean and max over seq. It works on a
// sorted copy and leaves seq untouched.
func Summarize(seq Sequence) (Summary, error) {
	if len(seq) == 0 {
		return Summary{}, ErrEmptySequence
	}

	durations := seq.Durations()
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	total := seq.Total()
	return Summary{
		Count:  len(durations),
		Total:  total,
		Min:    durations[0],
		Median: median(durations),
		Mean:   total / time.Duration(len(durations)),
		Max:    durations[len(durations)-1],
	}, nil
}

// Mean is the arithmetic mean of the sequence, 0 when empty.
func Mean(seq Sequence) time.Duration {
	if len(seq) == 0 {
		return 0
	}
	return seq.Total() / time.Duration(len(seq))
}

// MaxDeviation returns the largest relative distance of any trial from
// the mean, e.g. 0.05 for a run where every trial is within ±5%.
func MaxDeviation(seq Sequence) float64 {
	if len(seq) < 2 {
		return 0
	}
	mean := float64(Mean(seq))
	if mean == 0 {
		return 0
	}

	var maxDev float64
	for _, t := range seq {
		dev := math.Abs(float64(t.Elapsed)-mean) / mean
		if dev > maxDev {
			maxDev = dev
		}
	}
	return maxDev
}

func median(sorted []time.Duration) time.Duration {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	lo, hi := sorted[n/2-1], sorted[n/2]
	return lo + (hi-lo)/2
}
