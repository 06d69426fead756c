package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"quiz-cli/internal/domain"
)

// RankingStore persists the full ranking history as an indented JSON array.
// Every append rewrites the whole file. There is no locking: one writer is assumed.
type RankingStore struct {
	path string
	log  logrus.FieldLogger
}

func NewRankingStore(path string, log logrus.FieldLogger) *RankingStore {
	return &RankingStore{path: path, log: log.WithField("ranking_file", path)}
}

// Append adds a result to the stored history. A missing or unreadable ranking
// document is replaced by a history holding only the new result.
func (s *RankingStore) Append(_ context.Context, result domain.SessionResult) error {
	results, err := s.load()
	if err != nil {
		return err
	}
	results = append(results, result)
	return s.write(results)
}

// List returns the stored history in insertion order.
func (s *RankingStore) List(_ context.Context) ([]domain.SessionResult, error) {
	return s.load()
}

func (s *RankingStore) load() ([]domain.SessionResult, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ranking: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var results []domain.SessionResult
	if err := json.Unmarshal(data, &results); err != nil {
		s.log.WithError(err).Warn("ranking file is corrupt, treating it as empty")
		return nil, nil
	}
	return results, nil
}

func (s *RankingStore) write(results []domain.SessionResult) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode ranking: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ranking dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write ranking: %w", err)
	}
	return nil
}
