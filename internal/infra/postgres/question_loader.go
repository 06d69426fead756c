package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-cli/internal/domain"
)

// QuestionLoader loads a difficulty's question list from the question_banks JSONB column.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

func (l *QuestionLoader) LoadQuestions(ctx context.Context, difficulty string) ([]domain.Question, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_banks WHERE difficulty=$1`, difficulty).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.Question{}, fmt.Errorf("%w: %q", domain.ErrDifficultyNotFound, difficulty)
	}
	if err != nil {
		return []domain.Question{}, fmt.Errorf("load questions: %w", err)
	}

	questions := []domain.Question{}
	if err := json.Unmarshal(raw, &questions); err != nil {
		return []domain.Question{}, fmt.Errorf("%w: unmarshal questions: %v", domain.ErrMalformedQuestion, err)
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return []domain.Question{}, fmt.Errorf("%s question %d: %w", difficulty, i+1, err)
		}
	}
	return questions, nil
}
