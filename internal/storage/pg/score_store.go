package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const scoresTable = "motif_scores"

var scoreColumns = []string{
	"id", "run_id", "case_index", "algorithm",
	"tp", "fp", "fn",
	"precision", "recall", "f1",
	"runtime_seconds", "timed", "error", "created_at",
}

const createScoresTable = `
CREATE TABLE IF NOT EXISTS motif_scores (
    id              UUID PRIMARY KEY,
    run_id          UUID NOT NULL,
    case_index      INTEGER NOT NULL,
    algorithm       TEXT NOT NULL,
    tp              INTEGER NOT NULL,
    fp              INTEGER NOT NULL,
    fn              INTEGER NOT NULL,
    precision       DOUBLE PRECISION NOT NULL,
    recall          DOUBLE PRECISION NOT NULL,
    f1              DOUBLE PRECISION NOT NULL,
    runtime_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
    timed           BOOLEAN NOT NULL DEFAULT TRUE,
    error           TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_motif_scores_run ON motif_scores (run_id, case_index);
`

// ScoreStore writes score records into the motif_scores table.
type ScoreStore struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewScoreStore(pool *ConnectionPool) *ScoreStore {
	return &ScoreStore{pool: pool, db: pool.conn}
}

func (s *ScoreStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createScoresTable); err != nil {
		return fmt.Errorf("failed to create %s: %w", scoresTable, err)
	}
	return nil
}

func (s *ScoreStore) SaveBulk(ctx context.Context, records []storage.ScoreRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]interface{}, len(records))
	now := time.Now().UTC()

	for i, r := range records {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		rows[i] = []interface{}{
			r.ID, r.RunID, r.Case, r.Algorithm,
			r.TP, r.FP, r.FN,
			r.Precision, r.Recall, r.F1,
			r.RuntimeSeconds, r.Timed, r.Error, r.CreatedAt,
		}
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{scoresTable},
		scoreColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert scores: %w", err)
	}
	return nil
}

func (s *ScoreStore) ListByRun(ctx context.Context, runID uuid.UUID) ([]storage.ScoreRecord, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, run_id, case_index, algorithm, tp, fp, fn, precision, recall, f1,
               runtime_seconds, timed, error, created_at
        FROM motif_scores
        WHERE run_id = $1
        ORDER BY case_index, created_at`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var out []storage.ScoreRecord
	for rows.Next() {
		var r storage.ScoreRecord
		if err := rows.Scan(
			&r.ID, &r.RunID, &r.Case, &r.Algorithm,
			&r.TP, &r.FP, &r.FN,
			&r.Precision, &r.Recall, &r.F1,
			&r.RuntimeSeconds, &r.Timed, &r.Error, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return out, nil
}

func (s *ScoreStore) Pool() *ConnectionPool {
	return s.pool
}

func (s *ScoreStore) Close() error {
	s.pool.Close()
	return nil
}
