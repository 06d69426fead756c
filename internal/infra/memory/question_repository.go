package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"quiz-cli/internal/domain"
)

// QuestionLoader fetches the question set of a difficulty from a backing store (file, Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, difficulty string) ([]domain.Question, error)
}

// QuestionRepository caches question sets with TTL to avoid re-reading the bank between sessions.
type QuestionRepository struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	cache map[string]cachedQuestions
}

type cachedQuestions struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewQuestionRepository(loader QuestionLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		cache:  make(map[string]cachedQuestions),
	}
}

func (r *QuestionRepository) Questions(ctx context.Context, difficulty string) ([]domain.Question, error) {
	if questions, ok := r.cached(difficulty, r.clock()); ok {
		return questions, nil
	}

	result, err, _ := r.sf.Do(difficulty, func() (interface{}, error) {
		now := r.clock()
		if questions, ok := r.cached(difficulty, now); ok {
			return questions, nil
		}

		questions, err := r.loader.LoadQuestions(ctx, difficulty)
		if err != nil {
			return []domain.Question{}, err
		}

		if ttl := r.ttlWithJitter(); ttl > 0 {
			r.mu.Lock()
			r.cache[difficulty] = cachedQuestions{
				questions: questions,
				expiresAt: now.Add(ttl),
			}
			r.mu.Unlock()
		}
		return questions, nil
	})
	if err != nil {
		return []domain.Question{}, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) cached(difficulty string, now time.Time) ([]domain.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[difficulty]
	if !ok || !entry.expiresAt.After(now) {
		return nil, false
	}
	return entry.questions, true
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int63n(jitterMax+1))
}

// StaticQuestionLoader is a simple loader backed by an in-memory map (useful for tests/demos).
type StaticQuestionLoader struct {
	banks map[string][]domain.Question
}

func NewStaticQuestionLoader(banks map[string][]domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{banks: banks}
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context, difficulty string) ([]domain.Question, error) {
	if questions, ok := l.banks[difficulty]; ok {
		return questions, nil
	}
	return []domain.Question{}, domain.ErrDifficultyNotFound
}
