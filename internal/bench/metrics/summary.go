package metrics

// Summary aggregates the winning counts of many queries for one algorithm.
type Summary struct {
	Queries int `json:"queries"`

	// Means over per-query scores.
	MeanPrecision float64 `json:"mean_precision"`
	MeanRecall    float64 `json:"mean_recall"`
	MeanF1        float64 `json:"mean_f1"`

	// Pooled counts and the scores derived from them.
	Total     Counts  `json:"total"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`

	PerfectMatches int `json:"perfect_matches"`
}

func Summarize(records []Counts) Summary {
	s := Summary{Queries: len(records)}
	if len(records) == 0 {
		return s
	}

	for _, c := range records {
		s.MeanPrecision += c.Precision()
		s.MeanRecall += c.Recall()
		f1 := c.F1()
		s.MeanF1 += f1
		if f1 == 1 {
			s.PerfectMatches++
		}
		s.Total = s.Total.Add(c)
	}

	n := float64(len(records))
	s.MeanPrecision /= n
	s.MeanRecall /= n
	s.MeanF1 /= n

	s.Precision = s.Total.Precision()
	s.Recall = s.Total.Recall()
	s.F1 = s.Total.F1()

	return s
}
