package app

import (
	"context"
	"fmt"
	"strings"

	"quiz-cli/internal/domain"
)

// Console is the line-based interaction surface used by the runner and menu.
type Console interface {
	// Prompt writes label and reads one line of input.
	Prompt(label string) (string, error)
	Printf(format string, args ...any)
}

// Runner presents questions in order and counts correct answers.
type Runner struct {
	answerPrompt string
}

func NewRunner() *Runner {
	labels := make([]string, len(domain.Labels))
	for i, l := range domain.Labels {
		labels[i] = string(l)
	}
	return &Runner{answerPrompt: fmt.Sprintf("Your answer (%s): ", strings.Join(labels, "/"))}
}

// Run asks every question and returns the number answered correctly and the total.
// Invalid labels are reported and re-prompted without limit; input exhaustion aborts the run.
func (r *Runner) Run(ctx context.Context, console Console, questions []domain.Question) (int, int, error) {
	correct := 0
	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}

		console.Printf("\n[%d/%d] %s\n", i+1, len(questions), q.Text)
		for _, opt := range q.Options {
			console.Printf("%s\n", opt)
		}

		answer, err := r.readAnswer(console)
		if err != nil {
			return 0, 0, err
		}

		if answer == q.Correct {
			console.Printf("Correct!\n")
			correct++
		} else {
			console.Printf("Incorrect. The correct answer was %s.\n", q.Correct)
		}
	}
	return correct, len(questions), nil
}

func (r *Runner) readAnswer(console Console) (domain.Label, error) {
	for {
		raw, err := console.Prompt(r.answerPrompt)
		if err != nil {
			return "", err
		}
		label, err := domain.ParseLabel(raw)
		if err != nil {
			console.Printf("Invalid option.\n")
			continue
		}
		return label, nil
	}
}
