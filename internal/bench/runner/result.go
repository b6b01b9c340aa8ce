package runner

import (
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/google/uuid"
)

// QueryResult is the outcome of one algorithm on one case.
type QueryResult struct {
	Case      int
	Algorithm string
	Counts    metrics.Counts
	// Candidates is the number of position sets parsed from the output.
	Candidates int
	// BestIndex is the winning candidate, or -1 when there was none.
	BestIndex int
	Runtime   time.Duration
	Timed     bool
	Error     error
}

type CaseResult struct {
	Index      int
	WindowSize int
	Radius     float64
	TruthSize  int
	Results    []QueryResult
}

type BenchmarkResult struct {
	RunID      uuid.UUID
	Engine     string
	StartedAt  time.Time
	FinishedAt time.Time
	Algorithms []string
	Cases      []*CaseResult
	// SkippedCases lists cases whose metadata could not be loaded.
	SkippedCases []int
	Published    []string
}

// ByAlgorithm groups the query results by algorithm, in case order.
func (br *BenchmarkResult) ByAlgorithm() map[string][]QueryResult {
	out := make(map[string][]QueryResult, len(br.Algorithms))
	for _, cr := range br.Cases {
		for _, qr := range cr.Results {
			out[qr.Algorithm] = append(out[qr.Algorithm], qr)
		}
	}
	return out
}

func (br *BenchmarkResult) FailedQueries() int {
	n := 0
	for _, cr := range br.Cases {
		for _, qr := range cr.Results {
			if qr.Error != nil {
				n++
			}
		}
	}
	return n
}

func (qr QueryResult) Record(runID uuid.UUID) storage.ScoreRecord {
	rec := storage.NewScoreRecord(runID, qr.Case, qr.Algorithm, qr.Counts)
	rec.Timed = qr.Timed
	if qr.Timed {
		rec.RuntimeSeconds = qr.Runtime.Seconds()
	}
	if qr.Error != nil {
		rec.Error = qr.Error.Error()
	}
	return rec
}
