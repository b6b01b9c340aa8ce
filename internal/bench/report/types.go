package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	brunner "github.com/DjordjeVuckovic/motif-bench/internal/bench/runner"
)

type Report struct {
	Meta       BenchMeta         `json:"meta"`
	Algorithms []AlgorithmReport `json:"algorithms"`
	PerQuery   []Entry           `json:"per_query,omitempty"`
}

type Source string

const (
	SourceRun      Source = "run"
	SourceArchives Source = "archives"
)

type BenchMeta struct {
	RunID        string          `json:"run_id,omitempty"`
	Engine       string          `json:"engine,omitempty"`
	Source       Source          `json:"source"`
	Timestamp    time.Time       `json:"timestamp"`
	Duration     time.Duration   `json:"duration,omitempty"`
	Cases        int             `json:"cases"`
	SkippedCases []int           `json:"skipped_cases,omitempty"`
	Environment  EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type AlgorithmReport struct {
	Name       string               `json:"name"`
	Summary    metrics.Summary      `json:"summary"`
	Runtime    brunner.RuntimeStats `json:"runtime"`
	ErrorCount int                  `json:"error_count"`
}

// Entry is one scored query.
type Entry struct {
	Case       int           `json:"case"`
	Algorithm  string        `json:"algorithm"`
	TP         int           `json:"tp"`
	FP         int           `json:"fp"`
	FN         int           `json:"fn"`
	Precision  float64       `json:"precision"`
	Recall     float64       `json:"recall"`
	F1         float64       `json:"f1"`
	Candidates int           `json:"candidates"`
	Runtime    time.Duration `json:"runtime,omitempty"`
	Error      string        `json:"error,omitempty"`
}
