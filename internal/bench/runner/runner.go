package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/archive"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/engine"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/groundtruth"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/layout"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/positions"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/google/uuid"
)

// Runner executes every algorithm of a plan on every case, one query at a time.
type Runner struct {
	config   Config
	engine   engine.Runner
	recorder *archive.Recorder
	sink     storage.ScoreSink
}

// New builds a Runner. sink may be nil.
func New(cfg Config, eng engine.Runner, rec *archive.Recorder, sink storage.ScoreSink) *Runner {
	if cfg.SinkBatchSize <= 0 {
		cfg.SinkBatchSize = DefaultSinkBatchSize
	}
	return &Runner{config: cfg, engine: eng, recorder: rec, sink: sink}
}

func (r *Runner) RunAll(ctx context.Context, bs *spec.BenchSpec) (*BenchmarkResult, error) {
	names := bs.Names()
	br := &BenchmarkResult{
		RunID:      uuid.New(),
		Engine:     r.engine.Name(),
		StartedAt:  time.Now(),
		Algorithms: names,
	}

	if r.config.ResetArchives {
		if err := r.recorder.Reset(names); err != nil {
			return nil, err
		}
	}

	l := bs.Layout()
	var pending []storage.ScoreRecord

	for i := bs.Cases.Begin; i < bs.Cases.Begin+bs.Cases.Count; i++ {
		if err := ctx.Err(); err != nil {
			return br, fmt.Errorf("benchmark interrupted at case %d: %w", i, err)
		}

		md, err := groundtruth.LoadFromFile(l.MetaPath(i))
		if err != nil {
			slog.Warn("skipping case", "case", i, "error", err)
			br.SkippedCases = append(br.SkippedCases, i)
			continue
		}

		slog.Info("Running case", "case", i, "dir", l.CaseDir(i), "ws", md.WindowSize, "radius", md.Radius)
		cr, err := r.RunCase(ctx, bs, l, i, md)
		if err != nil {
			return br, fmt.Errorf("case %d: %w", i, err)
		}
		br.Cases = append(br.Cases, cr)

		for _, qr := range cr.Results {
			pending = append(pending, qr.Record(br.RunID))
		}
		if len(pending) >= r.config.SinkBatchSize {
			r.mirror(ctx, pending)
			pending = pending[:0]
		}
	}
	r.mirror(ctx, pending)

	if r.config.Publish {
		moved, err := r.recorder.Publish(bs.Results.Dir, names)
		br.Published = moved
		if err != nil {
			return br, err
		}
	}

	br.FinishedAt = time.Now()
	slog.Info("Benchmark finished",
		"run_id", br.RunID,
		"cases", len(br.Cases),
		"skipped", len(br.SkippedCases),
		"failed_queries", br.FailedQueries(),
		"duration", br.FinishedAt.Sub(br.StartedAt))

	return br, nil
}

// RunCase runs every algorithm on case i and appends the outcome to the
// archives. Only archive write failures are returned; query failures are
// kept on the QueryResult.
func (r *Runner) RunCase(
	ctx context.Context,
	bs *spec.BenchSpec,
	l layout.Layout,
	i int,
	md *groundtruth.Metadata,
) (*CaseResult, error) {
	truth := md.Truth()

	tsPath, err := filepath.Abs(l.DataPath(i))
	if err != nil {
		return nil, fmt.Errorf("resolve series path: %w", err)
	}
	params := engine.CaseParams(tsPath, bs.Cases.Length, md.WindowSize, md.Radius)

	cr := &CaseResult{
		Index:      i,
		WindowSize: md.WindowSize,
		Radius:     md.Radius,
		TruthSize:  truth.Len(),
	}

	for _, alg := range bs.Algorithms {
		inv := engine.Invocation{
			Algorithm: alg.Name,
			Command:   alg.Command,
			Dir:       bs.Results.WorkDir,
			Artifact:  l.ArtifactPath(i, alg.Artifact),
		}
		qr := r.runQuery(ctx, alg, inv, params, truth, md.WindowSize)
		qr.Case = i

		if err := r.record(qr); err != nil {
			return cr, err
		}
		cr.Results = append(cr.Results, qr)
	}

	return cr, nil
}

func (r *Runner) runQuery(
	ctx context.Context,
	alg spec.Algorithm,
	inv engine.Invocation,
	params engine.Params,
	truth positions.Set,
	ws int,
) QueryResult {
	qr := QueryResult{
		Algorithm: alg.Name,
		Counts:    metrics.Counts{FN: truth.Len()},
		BestIndex: -1,
		Timed:     alg.IsTimed() && !r.config.SkipRuntimes,
	}

	args, err := engine.RenderArgs(alg.Args, params)
	if err != nil {
		qr.Error = fmt.Errorf("render args: %w", err)
		slog.Warn("query failed", "algorithm", alg.Name, "error", qr.Error)
		return qr
	}
	inv.Args = args

	start := time.Now()
	exec, err := r.engine.Run(ctx, inv)
	if err != nil {
		qr.Runtime = time.Since(start)
		qr.Error = err
		slog.Warn("query failed", "algorithm", alg.Name, "error", err)
		return qr
	}

	audit, closeAudit := r.openAudit(exec, inv)
	candidates, parseErr := positions.ReadCandidates(exec.Output, audit, ws)
	if parseErr != nil {
		_, _ = io.Copy(io.Discard, exec.Output)
	}
	waitErr := exec.Wait()
	qr.Runtime = time.Since(start)
	closeAudit()

	if parseErr != nil {
		qr.Error = parseErr
		slog.Warn("query failed", "algorithm", alg.Name, "error", parseErr)
		return qr
	}
	if waitErr != nil {
		qr.Error = waitErr
		slog.Warn("algorithm exited with error, scoring its output", "algorithm", alg.Name, "error", waitErr)
	}

	qr.Counts, qr.BestIndex = metrics.BestMatch(truth, candidates)
	qr.Candidates = len(candidates)

	slog.Debug("query scored",
		"algorithm", alg.Name,
		"candidates", qr.Candidates,
		"tp", qr.Counts.TP, "fp", qr.Counts.FP, "fn", qr.Counts.FN,
		"runtime", qr.Runtime)

	return qr
}

func (r *Runner) openAudit(exec *engine.Execution, inv engine.Invocation) (io.Writer, func()) {
	if exec.Recorded || inv.Artifact == "" {
		return io.Discard, func() {}
	}

	f, err := os.Create(inv.Artifact)
	if err != nil {
		slog.Warn("cannot save raw output", "algorithm", inv.Algorithm, "path", inv.Artifact, "error", err)
		return io.Discard, func() {}
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close raw output", "path", inv.Artifact, "error", err)
		}
	}
}

func (r *Runner) record(qr QueryResult) error {
	if err := r.recorder.AppendScore(qr.Algorithm, qr.Counts); err != nil {
		return fmt.Errorf("record score of %s: %w", qr.Algorithm, err)
	}
	if qr.Timed {
		if err := r.recorder.AppendRuntime(qr.Algorithm, qr.Runtime); err != nil {
			return fmt.Errorf("record runtime of %s: %w", qr.Algorithm, err)
		}
	}
	return nil
}

func (r *Runner) mirror(ctx context.Context, records []storage.ScoreRecord) {
	if r.sink == nil || len(records) == 0 {
		return
	}
	if err := r.sink.SaveBulk(ctx, records); err != nil {
		slog.Warn("failed to mirror scores", "count", len(records), "error", err)
	}
}
