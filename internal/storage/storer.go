package storage

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	"github.com/google/uuid"
)

// ScoreRecord is one scored query: a single algorithm on a single case.
type ScoreRecord struct {
	ID             uuid.UUID `json:"id"`
	RunID          uuid.UUID `json:"run_id"`
	Case           int       `json:"case"`
	Algorithm      string    `json:"algorithm"`
	TP             int       `json:"tp"`
	FP             int       `json:"fp"`
	FN             int       `json:"fn"`
	Precision      float64   `json:"precision"`
	Recall         float64   `json:"recall"`
	F1             float64   `json:"f1"`
	RuntimeSeconds float64   `json:"runtime_seconds"`
	Timed          bool      `json:"timed"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewScoreRecord(runID uuid.UUID, caseIdx int, algorithm string, c metrics.Counts) ScoreRecord {
	return ScoreRecord{
		ID:        uuid.New(),
		RunID:     runID,
		Case:      caseIdx,
		Algorithm: algorithm,
		TP:        c.TP,
		FP:        c.FP,
		FN:        c.FN,
		Precision: c.Precision(),
		Recall:    c.Recall(),
		F1:        c.F1(),
		CreatedAt: time.Now().UTC(),
	}
}

func (r ScoreRecord) Counts() metrics.Counts {
	return metrics.Counts{TP: r.TP, FP: r.FP, FN: r.FN}
}

// ScoreSink mirrors score records outside the CSV archives.
type ScoreSink interface {
	SaveBulk(ctx context.Context, records []ScoreRecord) error
	Close() error
}

type ScoreReader interface {
	ListByRun(ctx context.Context, runID uuid.UUID) ([]ScoreRecord, error)
}

// ScoreStore is a sink whose records can be read back per run.
type ScoreStore interface {
	ScoreSink
	ScoreReader
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported sink type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
