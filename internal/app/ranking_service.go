package app

import (
	"context"
	"sort"

	"quiz-cli/internal/domain"
)

// DefaultTopN is the ranking size shown when none is requested.
const DefaultTopN = 10

// RankingService renders the leaderboard view over a RankingStore.
type RankingService struct {
	store RankingStore
}

func NewRankingService(store RankingStore) *RankingService {
	return &RankingService{store: store}
}

// Top returns up to n results ordered by percentage, highest first.
// It returns domain.ErrEmptyRanking when nothing has been stored yet.
func (s *RankingService) Top(ctx context.Context, n int) ([]domain.SessionResult, error) {
	results, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, domain.ErrEmptyRanking
	}
	return TopResults(results, n), nil
}

// TopResults sorts a copy of results by stored percentage descending and truncates to n.
// Entries with equal percentage keep their insertion order.
func TopResults(results []domain.SessionResult, n int) []domain.SessionResult {
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := make([]domain.SessionResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
