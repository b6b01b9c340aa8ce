package metrics

import "github.com/DjordjeVuckovic/motif-bench/internal/bench/positions"

// Score compares one candidate set against the ground truth.
func Score(truth, candidate positions.Set) Counts {
	var c Counts
	for i := range candidate {
		if truth.Contains(i) {
			c.TP++
		} else {
			c.FP++
		}
	}
	c.FN = truth.Len() - c.TP
	return c
}

// BestMatch scores every candidate and returns the counts of the one with the
// greatest F1 together with its index. The running best only changes on a
// strict improvement, so ties keep the earliest candidate; the first candidate
// is always taken even when its F1 is zero. Without candidates the result is
// (0, 0, |truth|) and index -1.
func BestMatch(truth positions.Set, candidates []positions.Set) (Counts, int) {
	best := Counts{FN: truth.Len()}
	bestIdx := -1
	bestF1 := -1.0

	for i, cand := range candidates {
		c := Score(truth, cand)
		if f1 := c.F1(); bestF1 < f1 {
			bestF1 = f1
			best = c
			bestIdx = i
		}
	}

	return best, bestIdx
}
