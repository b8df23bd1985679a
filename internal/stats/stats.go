package stats

import (
	"math"
	"slices"
)

// Summary holds the mean and median of one numeric series, both rounded to
// the nearest integer.
type Summary struct {
	Mean   int
	Median int
}

// Summarize computes mean and median over values. The median of an
// even-length series is the rounded average of the two middle elements.
// An empty series yields the zero Summary; callers that need to distinguish
// "no data" use SummarizeOrNil.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := roundDiv(sum, len(values))

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	var median int
	if len(sorted)%2 != 0 {
		median = sorted[mid]
	} else {
		median = roundDiv(sorted[mid-1]+sorted[mid], 2)
	}

	return Summary{Mean: mean, Median: median}
}

// SummarizeOrNil is Summarize with nil mean/median for an empty series,
// used by the experience trend where missing years must gap, not read as 0.
func SummarizeOrNil(values []int) (mean, median *int) {
	if len(values) == 0 {
		return nil, nil
	}
	s := Summarize(values)
	return &s.Mean, &s.Median
}

// roundDiv divides and rounds to nearest, halves away from zero.
func roundDiv(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
