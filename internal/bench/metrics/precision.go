package metrics

// Counts is the confusion triple of one candidate set against ground truth.
type Counts struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	FN int `json:"fn"`
}

// Precision is tp/(tp+fp), or 0 when nothing was reported.
func (c Counts) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is tp/(tp+fn), or 0 when the ground truth is empty.
func (c Counts) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// F1 computes the harmonic mean of precision and recall.
func (c Counts) F1() float64 {
	p := c.Precision()
	r := c.Recall()

	if p+r == 0 {
		return 0
	}

	return 2 * p * r / (p + r)
}

func (c Counts) Add(o Counts) Counts {
	return Counts{TP: c.TP + o.TP, FP: c.FP + o.FP, FN: c.FN + o.FN}
}
