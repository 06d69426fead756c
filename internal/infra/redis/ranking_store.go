package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"quiz-cli/internal/domain"
)

// RankingStore keeps the ranking history in a Redis list, one JSON entry per result.
//
//	RPUSH {prefix}:ranking <json result>
//
// List order is insertion order. Entries that fail to decode are skipped.
type RankingStore struct {
	client *redis.Client
	prefix string
	log    logrus.FieldLogger
}

func NewRankingStore(client *redis.Client, prefix string, log logrus.FieldLogger) *RankingStore {
	return &RankingStore{client: client, prefix: prefix, log: log}
}

func (s *RankingStore) Append(ctx context.Context, result domain.SessionResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := s.client.RPush(ctx, s.key(), payload).Err(); err != nil {
		return fmt.Errorf("append ranking: %w", err)
	}
	return nil
}

func (s *RankingStore) List(ctx context.Context) ([]domain.SessionResult, error) {
	raw, err := s.client.LRange(ctx, s.key(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list ranking: %w", err)
	}
	results := make([]domain.SessionResult, 0, len(raw))
	for i, item := range raw {
		var result domain.SessionResult
		if err := json.Unmarshal([]byte(item), &result); err != nil {
			s.log.WithError(err).WithField("index", i).Warn("skipping corrupt ranking entry")
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *RankingStore) key() string {
	return s.prefix + ":ranking"
}
