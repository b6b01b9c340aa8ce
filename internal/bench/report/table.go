package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// WriteTable prints the per-algorithm summary, the runtime statistics and,
// when verbose, every scored query.
func WriteTable(r *Report, w io.Writer, verbose bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Motif Discovery Benchmark ===\n")
	if r.Meta.RunID != "" {
		fmt.Fprintf(tw, "run %s (%s)\n", r.Meta.RunID, r.Meta.Engine)
	}
	if len(r.Meta.SkippedCases) > 0 {
		fmt.Fprintf(tw, "skipped cases: %v\n", r.Meta.SkippedCases)
	}
	fmt.Fprintln(tw)

	writeScoreTable(tw, r)
	writeRuntimeTable(tw, r)
	if verbose {
		writePerQueryTable(tw, r)
	}

	tw.Flush()
}

func writeScoreTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Scores (best candidate per query, %d cases)\n\n", r.Meta.Cases)

	header := []string{"Algorithm", "Queries", "P", "R", "F1", "Pooled P", "Pooled R", "Pooled F1", "Perfect", "Errors"}
	writeHeader(tw, header)

	for _, a := range r.Algorithms {
		s := a.Summary
		row := []string{
			a.Name,
			fmt.Sprintf("%d", s.Queries),
			fmt.Sprintf("%.4f", s.MeanPrecision),
			fmt.Sprintf("%.4f", s.MeanRecall),
			fmt.Sprintf("%.4f", s.MeanF1),
			fmt.Sprintf("%.4f", s.Precision),
			fmt.Sprintf("%.4f", s.Recall),
			fmt.Sprintf("%.4f", s.F1),
			fmt.Sprintf("%d", s.PerfectMatches),
			fmt.Sprintf("%d", a.ErrorCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeRuntimeTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Runtimes (timed queries only)\n\n")

	header := []string{"Algorithm", "Min", "Median", "Mean", "p90", "Max", "Stddev", "Total", "Samples"}
	writeHeader(tw, header)

	for _, a := range r.Algorithms {
		s := a.Runtime
		if s.IsZero() {
			fmt.Fprintln(tw, strings.Join([]string{a.Name, "-", "-", "-", "-", "-", "-", "-", "0"}, "\t"))
			continue
		}
		row := []string{
			a.Name,
			fmtDuration(s.Min),
			fmtDuration(s.Median),
			fmtDuration(s.Mean),
			fmtDuration(s.P90),
			fmtDuration(s.Max),
			fmtDuration(s.Stddev),
			fmtDuration(s.Total),
			fmt.Sprintf("%d", s.SampleCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writePerQueryTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-Query Results\n\n")

	header := []string{"Case", "Algorithm", "TP", "FP", "FN", "F1", "Sets", "Runtime", "Status"}
	writeHeader(tw, header)

	for _, e := range r.PerQuery {
		status := "OK"
		if e.Error != "" {
			status = "ERR"
		}
		row := []string{
			fmt.Sprintf("%d", e.Case),
			e.Algorithm,
			fmt.Sprintf("%d", e.TP),
			fmt.Sprintf("%d", e.FP),
			fmt.Sprintf("%d", e.FN),
			fmt.Sprintf("%.4f", e.F1),
			fmt.Sprintf("%d", e.Candidates),
			fmtDuration(e.Runtime),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
