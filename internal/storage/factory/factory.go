package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/pg"
)

// NewSink creates the storage.ScoreSink described by cfg.
func NewSink(ctx context.Context, cfg SinkConfig) (storage.ScoreSink, error) {
	return NewStore(ctx, cfg)
}

// NewStore creates the readable store described by cfg.
func NewStore(ctx context.Context, cfg SinkConfig) (storage.ScoreStore, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL config for %s sink", cfg.Type)
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		store := pg.NewScoreStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch config for %s sink", cfg.Type)
		}
		return es.NewScoreIndexer(ctx, *cfg.Es)

	case storage.InMem:
		return in_mem.NewScoreStore(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
