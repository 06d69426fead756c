package memory

import (
	"context"
	"sync"

	"quiz-cli/internal/domain"
)

// RankingStore is an in-memory implementation of app.RankingStore. Results are lost on exit.
type RankingStore struct {
	mu      sync.RWMutex
	results []domain.SessionResult
}

func NewRankingStore() *RankingStore {
	return &RankingStore{}
}

func (s *RankingStore) Append(_ context.Context, result domain.SessionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *RankingStore) List(_ context.Context) ([]domain.SessionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SessionResult, len(s.results))
	copy(out, s.results)
	return out, nil
}
