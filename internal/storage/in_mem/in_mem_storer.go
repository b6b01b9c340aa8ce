package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/google/uuid"
)

type ScoreStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID][]storage.ScoreRecord
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{
		storage: make(map[uuid.UUID][]storage.ScoreRecord),
	}
}

func (s *ScoreStore) SaveBulk(_ context.Context, records []storage.ScoreRecord) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, r := range records {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		s.storage[r.RunID] = append(s.storage[r.RunID], r)
	}
	slog.Debug("Saved score records in memory", "count", len(records))
	return nil
}

func (s *ScoreStore) ListByRun(_ context.Context, runID uuid.UUID) ([]storage.ScoreRecord, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	records := s.storage[runID]
	out := make([]storage.ScoreRecord, len(records))
	copy(out, records)
	return out, nil
}

func (s *ScoreStore) Close() error { return nil }
