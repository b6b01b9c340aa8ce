package pg

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/motif-bench/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ScoreStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString, MaxConns: 4})
	require.NoError(t, err)

	store := NewScoreStore(pool)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.EnsureSchema(ctx))
	return store
}

func TestScoreStore_SaveAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	run := uuid.New()

	timed := storage.NewScoreRecord(run, 1, "mk", metrics.Counts{TP: 5, FP: 5, FN: 5})
	timed.Timed = true
	timed.RuntimeSeconds = 0.25

	records := []storage.ScoreRecord{
		timed,
		storage.NewScoreRecord(run, 0, "gv", metrics.Counts{TP: 20}),
		storage.NewScoreRecord(uuid.New(), 0, "mk", metrics.Counts{FN: 20}),
	}
	require.NoError(t, store.SaveBulk(ctx, records))

	got, err := store.ListByRun(ctx, run)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 0, got[0].Case)
	assert.Equal(t, "gv", got[0].Algorithm)
	assert.Equal(t, 1.0, got[0].F1)

	assert.Equal(t, "mk", got[1].Algorithm)
	assert.Equal(t, metrics.Counts{TP: 5, FP: 5, FN: 5}, got[1].Counts())
	assert.InDelta(t, 0.5, got[1].F1, 1e-9)
	assert.True(t, got[1].Timed)
	assert.InDelta(t, 0.25, got[1].RuntimeSeconds, 1e-9)
}

func TestScoreStore_SaveBulkEmpty(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.SaveBulk(context.Background(), nil))
}

func TestHealthChecker(t *testing.T) {
	store := newTestStore(t)
	assert.True(t, NewHealthChecker(store.pool).Healthy(context.Background()))
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))
}
