package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/engine"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/layout"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/spec"
)

const databaseFlag = "-db"

type PointResult struct {
	Point    Point
	Attempts int
	Err      error
}

type BatchResult struct {
	Target    string
	Generated int
	Failed    []PointResult
	// Moved counts the generator entries relocated into Target.
	Moved int
}

// Runner generates the batches of a generator config.
type Runner struct {
	gen    Generator
	cfg    spec.GeneratorConfig
	policy RetryPolicy
}

func NewRunner(gen Generator, cfg spec.GeneratorConfig) *Runner {
	return &Runner{
		gen:    gen,
		cfg:    cfg,
		policy: RetryPolicy{MaxAttempts: cfg.MaxAttempts},
	}
}

func (r *Runner) RunAll(ctx context.Context) ([]*BatchResult, error) {
	var results []*BatchResult
	for _, b := range r.cfg.Batches {
		res, err := r.RunBatch(ctx, b)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			return results, fmt.Errorf("batch %q: %w", b.Target, err)
		}
	}
	return results, nil
}

// RunBatch clears stale generator output, generates every grid point of the
// batch and moves the output into a fresh Target directory. A grid point that
// exhausts its retries is reported and skipped.
func (r *Runner) RunBatch(ctx context.Context, b spec.Batch) (*BatchResult, error) {
	if err := removeEntries(r.cfg.OutputDir); err != nil {
		return nil, err
	}

	res := &BatchResult{Target: b.Target}
	for _, g := range b.Groups {
		for _, p := range Expand(g) {
			args, err := r.Args(p, b.Database)
			if err != nil {
				return res, err
			}

			slog.Info("Generating time series",
				"length", r.cfg.Length,
				"shape", p.Shape,
				"occurrences", p.Size,
				"window", p.Window,
				"height", p.Height,
				"randomness", p.Randomness,
				"database", b.Database)

			attempts, err := r.policy.Do(ctx, func(ctx context.Context) error {
				return r.gen.Generate(ctx, args)
			})
			if err != nil {
				if ctx.Err() != nil {
					return res, ctx.Err()
				}
				slog.Error("grid point failed", "shape", p.Shape, "window", p.Window, "error", err)
				res.Failed = append(res.Failed, PointResult{Point: p, Attempts: attempts, Err: err})
				continue
			}
			res.Generated++
		}
	}

	moved, err := moveEntries(r.cfg.OutputDir, b.Target)
	res.Moved = moved
	if err != nil {
		return res, err
	}
	return res, nil
}

func (r *Runner) Args(p Point, database bool) ([]string, error) {
	args, err := engine.RenderArgs(r.cfg.Args, p.Params(r.cfg.Length))
	if err != nil {
		return nil, fmt.Errorf("render generator args: %w", err)
	}
	if database {
		args = append(args, databaseFlag)
	}
	return args, nil
}

func generatedEntries(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, layout.DefaultPrefix+"*"))
	if err != nil {
		return nil, fmt.Errorf("list generator output: %w", err)
	}
	return matches, nil
}

func removeEntries(dir string) error {
	entries, err := generatedEntries(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(e); err != nil {
			return fmt.Errorf("remove stale output: %w", err)
		}
	}
	return nil
}

func moveEntries(from, target string) (int, error) {
	if filepath.Clean(from) == filepath.Clean(target) {
		return 0, fmt.Errorf("target %s is the generator output dir", target)
	}
	entries, err := generatedEntries(from)
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(target); err != nil {
		return 0, fmt.Errorf("clear target: %w", err)
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return 0, fmt.Errorf("create target: %w", err)
	}

	moved := 0
	for _, e := range entries {
		if err := os.Rename(e, filepath.Join(target, filepath.Base(e))); err != nil {
			return moved, fmt.Errorf("move %s: %w", filepath.Base(e), err)
		}
		moved++
	}
	slog.Info("Moved generated series", "count", moved, "target", target)
	return moved, nil
}
