package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quiz-cli/internal/config"
	"quiz-cli/internal/domain"
)

const bank = `{"facil": [{"pregunta":"2+2?","opciones":["A) 3","B) 4","C) 5","D) 6"],"respuesta_correcta":"B"}]}`

func TestRootRunsMenuAgainstFiles(t *testing.T) {
	dir := t.TempDir()
	questions := filepath.Join(dir, "preguntas.json")
	if err := os.WriteFile(questions, []byte(bank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	ranking := filepath.Join(dir, "ranking.json")

	out := runCommand(t, "1\nAna\n1\nb\n3\n",
		"--config", filepath.Join(dir, "none.yaml"),
		"--questions", questions,
		"--ranking", ranking)
	if !strings.Contains(out, "Correct!") || !strings.Contains(out, "Bye!") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out = runCommand(t, "", "ranking",
		"--config", filepath.Join(dir, "none.yaml"),
		"--ranking", ranking,
		"--limit", "5")
	if !strings.Contains(out, "1. Ana - 1/1 (100.00%)") {
		t.Fatalf("expected Ana in ranking:\n%s", out)
	}
}

func TestPlayCommandWithFlags(t *testing.T) {
	dir := t.TempDir()
	questions := filepath.Join(dir, "preguntas.json")
	if err := os.WriteFile(questions, []byte(bank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}

	out := runCommand(t, "a\n", "play",
		"--config", filepath.Join(dir, "none.yaml"),
		"--questions", questions,
		"--ranking-backend", "memory",
		"--name", "Luis",
		"--difficulty", "facil")
	if !strings.Contains(out, "Incorrect. The correct answer was B.") || !strings.Contains(out, "You need more practice.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPlayCommandReportsMissingDifficulty(t *testing.T) {
	dir := t.TempDir()
	questions := filepath.Join(dir, "preguntas.json")
	extra := `{"experto": [{"pregunta":"3*3?","opciones":["A) 6","B) 9","C) 12","D) 33"],"respuesta_correcta":"B"}]}`
	if err := os.WriteFile(questions, []byte(extra), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	base := []string{"play",
		"--config", filepath.Join(dir, "none.yaml"),
		"--questions", questions,
		"--ranking-backend", "memory",
		"--name", "Ana"}

	out := runCommand(t, "b\n", append(base, "--difficulty", "experto")...)
	if !strings.Contains(out, "Correct!") || !strings.Contains(out, "Great job!") {
		t.Fatalf("expected a session for a difficulty outside the config:\n%s", out)
	}

	out = runCommand(t, "", append(base, "--difficulty", "nope")...)
	if !strings.Contains(out, "No questions for this level.") {
		t.Fatalf("expected no questions notice:\n%s", out)
	}
}

func TestPlayCommandRereadsEditedBank(t *testing.T) {
	dir := t.TempDir()
	questions := filepath.Join(dir, "preguntas.json")
	if err := os.WriteFile(questions, []byte(bank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	ranking := filepath.Join(dir, "ranking.json")
	args := []string{"--config", filepath.Join(dir, "none.yaml"), "--questions", questions, "--ranking", ranking}

	edited := `{"facil": [{"pregunta":"5-1?","opciones":["A) 4","B) 6","C) 3","D) 5"],"respuesta_correcta":"A"}]}`
	// first session, rewrite the bank, then a second session in the same run
	input := "1\nAna\n1\nb\n"
	cmd := newRootCmd()
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(&editingReader{
		first: strings.NewReader(input),
		rest:  strings.NewReader("1\nLuis\n1\na\n3\n"),
		edit: func() error {
			return os.WriteFile(questions, []byte(edited), 0o644)
		},
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "5-1?") {
		t.Fatalf("expected the edited bank in the second session:\n%s", out.String())
	}
}

func TestQuestionCacheTTLDefaults(t *testing.T) {
	cfg := config.Default()
	if got := questionCacheTTL(cfg); got != 0 {
		t.Fatalf("expected no cache for file banks, got %v", got)
	}
	cfg.Questions.Source = config.BackendPostgres
	if got := questionCacheTTL(cfg); got != 30*time.Second {
		t.Fatalf("expected 30s for postgres banks, got %v", got)
	}
	cfg.Questions.CacheTTL = "5s"
	if got := questionCacheTTL(cfg); got != 5*time.Second {
		t.Fatalf("expected configured ttl, got %v", got)
	}
}

// editingReader runs edit once the first reader is drained, then serves rest.
type editingReader struct {
	first, rest *strings.Reader
	edit        func() error
	edited      bool
}

func (r *editingReader) Read(p []byte) (int, error) {
	if r.first.Len() > 0 {
		return r.first.Read(p)
	}
	if !r.edited {
		r.edited = true
		if err := r.edit(); err != nil {
			return 0, err
		}
	}
	return r.rest.Read(p)
}

func TestUnknownBackendFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"ranking", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--ranking-backend", "mongo"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); !errors.Is(err, domain.ErrUnknownBackend) {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}

func runCommand(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}
