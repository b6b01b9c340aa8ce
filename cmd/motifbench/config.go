package main

import (
	"errors"
	"flag"
	"fmt"
)

const (
	modeRun        = "run"
	modeRescore    = "rescore"
	modeGenerate   = "generate"
	modeMerge      = "merge"
	modeRenumber   = "renumber"
	modeSimilarity = "similarity"
	modeReport     = "report"
)

type cliConfig struct {
	Mode     string
	SpecPath string
	Output   string
	Verbose  bool

	// report
	ResultsDir string

	// merge
	FreshDir string
	Offset   int

	// renumber
	CasesDir string
	Prefix   string
	Begin    int
	End      int
	Count    int

	// similarity
	SeriesPath string
	WindowSize int
	Pos0       int
	Pos1       int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", modeRun, "Run mode: run, rescore, generate, merge, renumber, similarity or report")
	flag.StringVar(&cfg.SpecPath, "spec", "configs/bench/motifs.yaml", "Path to the benchmark plan YAML")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Print the per-query table")
	flag.StringVar(&cfg.ResultsDir, "results", "", "Results directory (defaults to the plan's results dir)")
	flag.StringVar(&cfg.FreshDir, "fresh", ".", "Directory holding the newly produced archives (merge mode)")
	flag.IntVar(&cfg.Offset, "offset", 0, "Historical row offset where the new archives are inserted (merge mode)")
	flag.StringVar(&cfg.CasesDir, "dir", "", "Cases directory (renumber mode, defaults to the plan's cases dir)")
	flag.StringVar(&cfg.Prefix, "prefix", "", "Case prefix (renumber mode, defaults to the plan's prefix)")
	flag.IntVar(&cfg.Begin, "begin", 0, "First case index to move (renumber mode)")
	flag.IntVar(&cfg.End, "end", 0, "First target case index (renumber mode)")
	flag.IntVar(&cfg.Count, "count", 0, "Number of cases to move (renumber mode)")
	flag.StringVar(&cfg.SeriesPath, "series", "", "Time series file (similarity mode)")
	flag.IntVar(&cfg.WindowSize, "ws", 0, "Window size (similarity mode)")
	flag.IntVar(&cfg.Pos0, "pos0", 0, "First subsequence start (similarity mode)")
	flag.IntVar(&cfg.Pos1, "pos1", 0, "Second subsequence start (similarity mode)")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	switch c.Mode {
	case modeRun, modeRescore, modeGenerate, modeReport:
		return nil
	case modeMerge:
		if c.Offset < 0 {
			return fmt.Errorf("offset must not be negative, got %d", c.Offset)
		}
		return nil
	case modeRenumber:
		if c.Count < 0 || c.Begin < 0 || c.End < 0 {
			return errors.New("begin, end and count must not be negative")
		}
		return nil
	case modeSimilarity:
		if c.SeriesPath == "" {
			return errors.New("similarity mode requires --series")
		}
		if c.WindowSize <= 0 {
			return fmt.Errorf("window size must be positive, got %d", c.WindowSize)
		}
		return nil
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
}
