package similarity

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateSubsequence is returned when a subsequence has zero variance
	// and cannot be z-normalized.
	ErrDegenerateSubsequence = errors.New("similarity: DEGENERATE_SUBSEQUENCE")

	ErrLengthMismatch = errors.New("similarity: subsequence lengths differ")
	ErrEmpty          = errors.New("similarity: empty subsequence")
)

// ZNormDistance z-normalizes a and b independently (population standard
// deviation) and returns the root of the summed squared differences.
func ZNormDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, ErrEmpty
	}

	meanA, stdA := meanStd(a)
	meanB, stdB := meanStd(b)
	if stdA == 0 || stdB == 0 {
		return 0, ErrDegenerateSubsequence
	}

	var sum float64
	for i := range a {
		d := (a[i]-meanA)/stdA - (b[i]-meanB)/stdB
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// ReportedDistance is the value printed by the similarity command: the square
// root of ZNormDistance. The second root is kept so output stays comparable
// with previously published benchmark numbers.
func ReportedDistance(a, b []float64) (float64, error) {
	d, err := ZNormDistance(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d), nil
}

func meanStd(xs []float64) (float64, float64) {
	n := float64(len(xs))

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / n

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}

	return mean, math.Sqrt(sq / n)
}
