package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-cli/internal/domain"
)

// RankingStore persists session results in the rankings table; id order is insertion order.
type RankingStore struct {
	pool *pgxpool.Pool
}

func NewRankingStore(pool *pgxpool.Pool) *RankingStore {
	return &RankingStore{pool: pool}
}

func (s *RankingStore) Append(ctx context.Context, result domain.SessionResult) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO rankings (nombre, aciertos, total, porcentaje) VALUES ($1, $2, $3, $4)`,
		result.PlayerName, result.Correct, result.Total, result.Percentage)
	if err != nil {
		return fmt.Errorf("insert ranking: %w", err)
	}
	return nil
}

func (s *RankingStore) List(ctx context.Context) ([]domain.SessionResult, error) {
	rows, err := s.pool.Query(ctx, `SELECT nombre, aciertos, total, porcentaje FROM rankings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list ranking: %w", err)
	}
	defer rows.Close()

	var results []domain.SessionResult
	for rows.Next() {
		var r domain.SessionResult
		if err := rows.Scan(&r.PlayerName, &r.Correct, &r.Total, &r.Percentage); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ranking: %w", err)
	}
	return results, nil
}
