package app_test

import (
	"context"
	"strings"
	"testing"

	"quiz-cli/internal/app"
	"quiz-cli/internal/domain"
)

func TestRunnerCountsCaseInsensitiveMatches(t *testing.T) {
	questions := []domain.Question{
		{Text: "q1", Options: fourOptions(), Correct: domain.LabelA},
		{Text: "q2", Options: fourOptions(), Correct: domain.LabelB},
		{Text: "q3", Options: fourOptions(), Correct: domain.LabelC},
		{Text: "q4", Options: fourOptions(), Correct: domain.LabelD},
	}
	console := newScriptedConsole("a", " B ", "d", "d")

	correct, total, err := app.NewRunner().Run(context.Background(), console, questions)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if correct != 3 || total != 4 {
		t.Fatalf("expected 3/4, got %d/%d", correct, total)
	}
	if !strings.Contains(console.out.String(), "Incorrect. The correct answer was C.") {
		t.Fatalf("expected feedback naming the right answer, got:\n%s", console.out.String())
	}
}

func TestRunnerRepromptsOnInvalidOption(t *testing.T) {
	questions := []domain.Question{
		{Text: "2+2?", Options: []string{"A) 3", "B) 4", "C) 5", "D) 6"}, Correct: domain.LabelB},
	}
	console := newScriptedConsole("E", "B")

	correct, _, err := app.NewRunner().Run(context.Background(), console, questions)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if correct != 1 {
		t.Fatalf("expected 1 correct, got %d", correct)
	}

	out := console.out.String()
	if n := strings.Count(out, "Invalid option."); n != 1 {
		t.Fatalf("expected one invalid option message, got %d:\n%s", n, out)
	}
	invalidAt := strings.Index(out, "Invalid option.")
	correctAt := strings.Index(out, "Correct!")
	if correctAt < invalidAt {
		t.Fatalf("expected feedback after the invalid option message:\n%s", out)
	}
}

func TestRunnerFeedbackPrecedesNextQuestion(t *testing.T) {
	questions := []domain.Question{
		{Text: "first", Options: fourOptions(), Correct: domain.LabelA},
		{Text: "second", Options: fourOptions(), Correct: domain.LabelA},
	}
	console := newScriptedConsole("A", "B")

	if _, _, err := app.NewRunner().Run(context.Background(), console, questions); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := console.out.String()
	if strings.Index(out, "Correct!") > strings.Index(out, "second") {
		t.Fatalf("expected feedback for the first question before the second prompt:\n%s", out)
	}
}

func TestRunnerStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := app.NewRunner().Run(ctx, newScriptedConsole("A"), []domain.Question{
		{Text: "q", Options: fourOptions(), Correct: domain.LabelA},
	})
	if err != context.Canceled {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func fourOptions() []string {
	return []string{"A) one", "B) two", "C) three", "D) four"}
}
