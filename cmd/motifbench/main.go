package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/archive"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/engine"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/generate"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/layout"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/runner"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/similarity"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/motif-bench/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case modeRun:
		runBench(ctx, cfg, engine.NewProcessRunner(os.Stderr), runner.DefaultConfig())
	case modeRescore:
		runCfg := runner.DefaultConfig()
		runCfg.SkipRuntimes = true
		runBench(ctx, cfg, engine.NewReplayRunner(), runCfg)
	case modeGenerate:
		runGenerate(ctx, cfg)
	case modeMerge:
		runMerge(cfg)
	case modeRenumber:
		runRenumber(cfg)
	case modeSimilarity:
		runSimilarity(cfg)
	case modeReport:
		runReport(cfg)
	}
}

func loadSpec(path string) *spec.BenchSpec {
	bs, err := spec.LoadFromFile(path)
	if err != nil {
		slog.Error("Failed to load spec", "path", path, "error", err)
		os.Exit(1)
	}
	return bs
}

func runBench(ctx context.Context, cfg cliConfig, eng engine.Runner, runCfg runner.Config) {
	bs := loadSpec(cfg.SpecPath)
	if cfg.ResultsDir != "" {
		bs.Results.Dir = cfg.ResultsDir
	}

	sink := openSink(ctx)
	if sink != nil {
		defer func() {
			if err := sink.Close(); err != nil {
				slog.Warn("Failed to close sink", "error", err)
			}
		}()
	}

	r := runner.New(runCfg, eng, archive.NewRecorder(bs.Results.WorkDir), sink)
	result, err := r.RunAll(ctx, bs)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		if result == nil {
			os.Exit(1)
		}
	}

	outputReport(report.Generate(result), cfg)
	if err != nil {
		os.Exit(1)
	}
}

// openSink returns nil when SINK_TYPE is unset.
func openSink(ctx context.Context) storage.ScoreSink {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/motifbench/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	sinkCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load sink configuration from environment", "error", err)
		os.Exit(1)
	}
	if sinkCfg == nil {
		return nil
	}

	sink, err := factory.NewSink(ctx, *sinkCfg)
	if err != nil {
		slog.Error("Failed to create sink", "type", sinkCfg.Type, "error", err)
		os.Exit(1)
	}
	slog.Info("Mirroring scores", "sink", sinkCfg.Type)
	return sink
}

func outputReport(rpt *report.Report, cfg cliConfig) {
	report.WriteTable(rpt, os.Stdout, cfg.Verbose)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}
}

func runGenerate(ctx context.Context, cfg cliConfig) {
	bs := loadSpec(cfg.SpecPath)
	if bs.Generator == nil {
		slog.Error("Spec has no generator section", "path", cfg.SpecPath)
		os.Exit(1)
	}

	gen := generate.NewProcessGenerator(bs.Generator.Command, bs.Generator.OutputDir, os.Stdout, os.Stderr)
	results, err := generate.NewRunner(gen, *bs.Generator).RunAll(ctx)

	failed := 0
	for _, res := range results {
		failed += len(res.Failed)
		slog.Info("Batch generated",
			"target", res.Target,
			"generated", res.Generated,
			"failed", len(res.Failed),
			"moved", res.Moved)
		for _, pr := range res.Failed {
			slog.Warn("Grid point failed", "target", res.Target, "point", pr.Point, "attempts", pr.Attempts, "error", pr.Err)
		}
	}
	if err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(2)
	}
}

func runMerge(cfg cliConfig) {
	historical := cfg.ResultsDir
	var names []string
	if historical == "" || fileExists(cfg.SpecPath) {
		bs := loadSpec(cfg.SpecPath)
		names = bs.Names()
		if historical == "" {
			historical = bs.Results.Dir
		}
	}

	files, err := mergeFileNames(cfg.FreshDir, names)
	if err != nil {
		slog.Error("Failed to list archives", "dir", cfg.FreshDir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		slog.Warn("No archives to merge", "dir", cfg.FreshDir)
		return
	}

	if err := archive.MergeAll(historical, cfg.FreshDir, files, cfg.Offset); err != nil {
		slog.Error("Merge failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Archives merged", "files", len(files), "offset", cfg.Offset, "historical", historical)
}

// mergeFileNames lists the archive files of names present in freshDir. With
// no names every stats archive there is used.
func mergeFileNames(freshDir string, names []string) ([]string, error) {
	if len(names) == 0 {
		var err error
		names, err = archive.ListAlgorithms(freshDir)
		if err != nil {
			return nil, err
		}
	}

	var files []string
	for _, name := range names {
		for _, f := range []string{archive.StatsFile(name), archive.RuntimesFile(name)} {
			if fileExists(filepath.Join(freshDir, f)) {
				files = append(files, f)
			}
		}
	}
	return files, nil
}

func runRenumber(cfg cliConfig) {
	dir, prefix := cfg.CasesDir, cfg.Prefix
	if dir == "" {
		bs := loadSpec(cfg.SpecPath)
		dir = bs.Cases.Dir
		if prefix == "" {
			prefix = bs.Cases.Prefix
		}
	}

	if err := archive.Renumber(layout.New(dir, prefix), cfg.Begin, cfg.End, cfg.Count); err != nil {
		slog.Error("Renumber failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Cases renumbered", "dir", dir, "begin", cfg.Begin, "end", cfg.End, "count", cfg.Count)
}

func runSimilarity(cfg cliConfig) {
	ts, err := similarity.LoadSeriesFromFile(cfg.SeriesPath)
	if err != nil {
		slog.Error("Failed to load series", "path", cfg.SeriesPath, "error", err)
		os.Exit(1)
	}

	d, err := ts.Compare(cfg.Pos0, cfg.Pos1, cfg.WindowSize)
	if err != nil {
		slog.Error("Failed to compare subsequences", "pos0", cfg.Pos0, "pos1", cfg.Pos1, "ws", cfg.WindowSize, "error", err)
		os.Exit(1)
	}
	fmt.Println(d)
}

func runReport(cfg cliConfig) {
	dir := cfg.ResultsDir
	var names []string
	if dir == "" {
		bs := loadSpec(cfg.SpecPath)
		dir = bs.Results.Dir
		names = bs.Names()
	}

	rpt, err := report.FromArchives(dir, names)
	if err != nil {
		slog.Error("Failed to read archives", "dir", dir, "error", err)
		os.Exit(1)
	}
	outputReport(rpt, cfg)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
