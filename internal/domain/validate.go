package domain

import (
	"fmt"
	"strings"
)

// Validate checks the structural shape of a question and canonicalizes its label.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrMalformedQuestion)
	}
	if len(q.Options) != len(Labels) {
		return fmt.Errorf("%w: expected %d options, got %d", ErrMalformedQuestion, len(Labels), len(q.Options))
	}
	label, err := ParseLabel(string(q.Correct))
	if err != nil {
		return fmt.Errorf("%w: correct answer %q", ErrMalformedQuestion, q.Correct)
	}
	q.Correct = label
	return nil
}
