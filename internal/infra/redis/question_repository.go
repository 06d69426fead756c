package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"quiz-cli/internal/domain"
)

// QuestionLoader fetches question sets from a backing store (file, Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, difficulty string) ([]domain.Question, error)
}

// QuestionRepository caches question sets in Redis and falls back to a loader on cache miss.
// Each set is stored as: SET {prefix}:questions:{difficulty} <json array>
type QuestionRepository struct {
	client *redis.Client
	loader QuestionLoader
	prefix string
	ttl    time.Duration
	sf     singleflight.Group
	log    logrus.FieldLogger
}

func NewQuestionRepository(client *redis.Client, loader QuestionLoader, prefix string, ttl time.Duration, log logrus.FieldLogger) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		prefix: prefix,
		ttl:    ttl,
		log:    log,
	}
}

func (r *QuestionRepository) Questions(ctx context.Context, difficulty string) ([]domain.Question, error) {
	key := r.questionsKey(difficulty)
	if questions, ok := r.fromCache(ctx, key); ok {
		return questions, nil
	}

	result, err, _ := r.sf.Do(difficulty, func() (interface{}, error) {
		// Re-check cache in case another caller filled it.
		if questions, ok := r.fromCache(ctx, key); ok {
			return questions, nil
		}

		questions, err := r.loader.LoadQuestions(ctx, difficulty)
		if err != nil {
			return []domain.Question{}, err
		}

		ttl := r.ttlWithJitter()
		if ttl <= 0 {
			return questions, nil
		}
		payload, err := json.Marshal(questions)
		if err != nil {
			return questions, nil
		}
		if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
			r.log.WithError(err).WithField("key", key).Warn("cache questions failed")
		}
		return questions, nil
	})
	if err != nil {
		return []domain.Question{}, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) fromCache(ctx context.Context, key string) ([]domain.Question, bool) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.WithError(err).WithField("key", key).Debug("question cache unavailable")
		}
		return nil, false
	}
	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, false
	}
	return questions, true
}

func (r *QuestionRepository) questionsKey(difficulty string) string {
	return r.prefix + ":questions:" + difficulty
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int63n(jitterMax+1))
}
