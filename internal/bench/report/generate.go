package report

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/archive"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	brunner "github.com/DjordjeVuckovic/motif-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/motif-bench/pkg/utils"
)

const scoreDecimals = 4

// Generate builds a report from a finished run.
func Generate(br *brunner.BenchmarkResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			RunID:        br.RunID.String(),
			Engine:       br.Engine,
			Source:       SourceRun,
			Timestamp:    br.StartedAt,
			Cases:        len(br.Cases),
			SkippedCases: br.SkippedCases,
			Environment:  NewEnvironmentInfo(),
		},
	}
	if !br.FinishedAt.IsZero() {
		r.Meta.Duration = br.FinishedAt.Sub(br.StartedAt)
	}

	for _, cr := range br.Cases {
		for _, qr := range cr.Results {
			entry := Entry{
				Case:       qr.Case,
				Algorithm:  qr.Algorithm,
				TP:         qr.Counts.TP,
				FP:         qr.Counts.FP,
				FN:         qr.Counts.FN,
				Precision:  utils.RoundDecimal(qr.Counts.Precision(), scoreDecimals),
				Recall:     utils.RoundDecimal(qr.Counts.Recall(), scoreDecimals),
				F1:         utils.RoundDecimal(qr.Counts.F1(), scoreDecimals),
				Candidates: qr.Candidates,
			}
			if qr.Timed {
				entry.Runtime = qr.Runtime
			}
			if qr.Error != nil {
				entry.Error = qr.Error.Error()
			}
			r.PerQuery = append(r.PerQuery, entry)
		}
	}

	byAlg := br.ByAlgorithm()
	for _, name := range br.Algorithms {
		results := byAlg[name]
		counts := make([]metrics.Counts, 0, len(results))
		var runtimes []time.Duration
		agg := AlgorithmReport{Name: name}
		for _, qr := range results {
			counts = append(counts, qr.Counts)
			if qr.Timed {
				runtimes = append(runtimes, qr.Runtime)
			}
			if qr.Error != nil {
				agg.ErrorCount++
			}
		}
		agg.Summary = metrics.Summarize(counts)
		agg.Runtime = brunner.ComputeRuntimeStats(runtimes)
		r.Algorithms = append(r.Algorithms, agg)
	}

	return r
}

// FromArchives builds a report from the archives in dir. With no names, every
// algorithm that has a stats archive is included. A missing runtimes archive
// means the algorithm is untimed.
func FromArchives(dir string, names []string) (*Report, error) {
	if len(names) == 0 {
		var err error
		names, err = archive.ListAlgorithms(dir)
		if err != nil {
			return nil, fmt.Errorf("list archives: %w", err)
		}
	}

	r := &Report{
		Meta: BenchMeta{
			Source:      SourceArchives,
			Timestamp:   time.Now(),
			Environment: NewEnvironmentInfo(),
		},
	}

	for _, name := range names {
		stats, err := archive.ReadStatsFile(archive.StatsPath(dir, name))
		if err != nil {
			return nil, fmt.Errorf("algorithm %s: %w", name, err)
		}
		agg := AlgorithmReport{Name: name, Summary: metrics.Summarize(stats)}

		seconds, err := archive.ReadRuntimesFile(archive.RuntimesPath(dir, name))
		switch {
		case err == nil:
			agg.Runtime = brunner.ComputeRuntimeStats(brunner.FromSeconds(seconds))
		case !archive.IsMissing(err):
			return nil, fmt.Errorf("algorithm %s: %w", name, err)
		}

		if len(stats) > r.Meta.Cases {
			r.Meta.Cases = len(stats)
		}
		r.Algorithms = append(r.Algorithms, agg)
	}

	return r, nil
}
