package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"quiz-cli/internal/domain"
)

// QuestionRepository loads question sets (from cache/backing store).
type QuestionRepository interface {
	Questions(ctx context.Context, difficulty string) ([]domain.Question, error)
}

// RankingStore abstracts how session results are persisted (file, Redis, Postgres, etc).
type RankingStore interface {
	Append(ctx context.Context, result domain.SessionResult) error
	// List returns every stored result in insertion order.
	List(ctx context.Context) ([]domain.SessionResult, error)
}

// QuizService contains the core quiz use cases.
type QuizService struct {
	questions QuestionRepository
	ranking   RankingStore
	runner    *Runner
	log       logrus.FieldLogger
}

func NewQuizService(questions QuestionRepository, ranking RankingStore, log logrus.FieldLogger) *QuizService {
	return &QuizService{
		questions: questions,
		ranking:   ranking,
		runner:    NewRunner(),
		log:       log,
	}
}

// Play loads the questions for a difficulty, runs them against the console and
// scores the answers. The result is not persisted; see Save.
func (s *QuizService) Play(ctx context.Context, console Console, playerName, difficulty string) (domain.SessionResult, domain.Summary, error) {
	log := s.log.WithFields(logrus.Fields{"player": playerName, "difficulty": difficulty})

	questions, err := s.questions.Questions(ctx, difficulty)
	if err != nil {
		log.WithError(err).Warn("questions unavailable")
		return domain.SessionResult{}, domain.Summary{}, err
	}
	// An empty set never reaches the scorer.
	if len(questions) == 0 {
		log.Warn("difficulty has no questions")
		return domain.SessionResult{}, domain.Summary{}, domain.ErrNoQuestions
	}

	correct, total, err := s.runner.Run(ctx, console, questions)
	if err != nil {
		return domain.SessionResult{}, domain.Summary{}, err
	}

	summary, err := Summarize(correct, total)
	if err != nil {
		return domain.SessionResult{}, domain.Summary{}, err
	}
	result, err := domain.NewSessionResult(playerName, correct, total)
	if err != nil {
		return domain.SessionResult{}, domain.Summary{}, err
	}
	log.WithField("percentage", result.Percentage).Info("session completed")
	return result, summary, nil
}

// Save appends a completed session to the ranking.
func (s *QuizService) Save(ctx context.Context, result domain.SessionResult) error {
	if err := s.ranking.Append(ctx, result); err != nil {
		s.log.WithError(err).WithField("player", result.PlayerName).Error("append ranking failed")
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}
