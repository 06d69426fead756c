package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quiz-cli/internal/domain"
)

// QuestionLoader reads a question bank file keyed by difficulty.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
type QuestionLoader struct {
	path string
}

func NewQuestionLoader(path string) *QuestionLoader {
	return &QuestionLoader{path: path}
}

func (l *QuestionLoader) LoadQuestions(_ context.Context, difficulty string) ([]domain.Question, error) {
	banks, err := l.readBanks()
	if err != nil {
		return []domain.Question{}, err
	}

	questions, ok := banks[difficulty]
	if !ok {
		return []domain.Question{}, fmt.Errorf("%w: %q", domain.ErrDifficultyNotFound, difficulty)
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return []domain.Question{}, fmt.Errorf("%s question %d: %w", difficulty, i+1, err)
		}
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	return questions, nil
}

func (l *QuestionLoader) readBanks() (map[string][]domain.Question, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionFileNotFound, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	banks := map[string][]domain.Question{}
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &banks)
	default:
		err = json.Unmarshal(data, &banks)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrMalformedQuestion, l.path, err)
	}
	return banks, nil
}
