package es

import (
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// ScoreDocument is the indexed form of a storage.ScoreRecord.
type ScoreDocument struct {
	ID             string    `json:"id"`
	RunID          string    `json:"run_id"`
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
	IndexedAt      time.Time `json:"indexed_at"`
}

func toDocument(r storage.ScoreRecord) ScoreDocument {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return ScoreDocument{
		ID:             r.ID.String(),
		RunID:          r.RunID.String(),
		Case:           r.Case,
		Algorithm:      r.Algorithm,
		TP:             r.TP,
		FP:             r.FP,
		FN:             r.FN,
		Precision:      r.Precision,
		Recall:         r.Recall,
		F1:             r.F1,
		RuntimeSeconds: r.RuntimeSeconds,
		Timed:          r.Timed,
		Error:          r.Error,
		CreatedAt:      r.CreatedAt,
		IndexedAt:      time.Now().UTC(),
	}
}

func (d ScoreDocument) toRecord() (storage.ScoreRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return storage.ScoreRecord{}, err
	}
	runID, err := uuid.Parse(d.RunID)
	if err != nil {
		return storage.ScoreRecord{}, err
	}
	return storage.ScoreRecord{
		ID:             id,
		RunID:          runID,
		Case:           d.Case,
		Algorithm:      d.Algorithm,
		TP:             d.TP,
		FP:             d.FP,
		FN:             d.FN,
		Precision:      d.Precision,
		Recall:         d.Recall,
		F1:             d.F1,
		RuntimeSeconds: d.RuntimeSeconds,
		Timed:          d.Timed,
		Error:          d.Error,
		CreatedAt:      d.CreatedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":              types.NewKeywordProperty(),
			"run_id":          types.NewKeywordProperty(),
			"case":            types.NewIntegerNumberProperty(),
			"algorithm":       types.NewKeywordProperty(),
			"tp":              types.NewIntegerNumberProperty(),
			"fp":              types.NewIntegerNumberProperty(),
			"fn":              types.NewIntegerNumberProperty(),
			"precision":       types.NewDoubleNumberProperty(),
			"recall":          types.NewDoubleNumberProperty(),
			"f1":              types.NewDoubleNumberProperty(),
			"runtime_seconds": types.NewDoubleNumberProperty(),
			"timed":           types.NewBooleanProperty(),
			"error":           types.NewTextProperty(),
			"created_at":      types.NewDateProperty(),
			"indexed_at":      types.NewDateProperty(),
		},
	}
}
