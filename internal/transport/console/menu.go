package console

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"quiz-cli/internal/app"
	"quiz-cli/internal/domain"
)

// Menu is the top-level interactive loop: start a quiz, show the ranking, or exit.
type Menu struct {
	console      app.Console
	quizzes      *app.QuizService
	ranking      *app.RankingService
	difficulties []domain.Difficulty
	limit        int
}

func NewMenu(console app.Console, quizzes *app.QuizService, ranking *app.RankingService, difficulties []domain.Difficulty, limit int) *Menu {
	return &Menu{
		console:      console,
		quizzes:      quizzes,
		ranking:      ranking,
		difficulties: difficulties,
		limit:        limit,
	}
}

// Run loops until the user exits or input ends. Invalid choices are reported and re-asked.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.console.Printf("\n### MENU ###\n")
		m.console.Printf("1 - Start quiz\n")
		m.console.Printf("2 - Ranking\n")
		m.console.Printf("3 - Exit\n")
		choice, err := m.console.Prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := m.StartQuiz(ctx, ""); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case "2":
			m.ShowRanking(ctx, m.limit)
		case "3":
			m.console.Printf("Bye!\n")
			return nil
		default:
			m.console.Printf("Invalid option.\n")
		}
	}
}

// StartQuiz asks for a difficulty, and the player's name when empty, then plays a session.
func (m *Menu) StartQuiz(ctx context.Context, name string) error {
	if name == "" {
		var err error
		if name, err = m.AskName(); err != nil {
			return err
		}
	}

	m.console.Printf("\nChoose a difficulty:\n")
	for i, d := range m.difficulties {
		m.console.Printf("%d - %s\n", i+1, d.Label)
	}
	raw, err := m.console.Prompt("Option: ")
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 || idx > len(m.difficulties) {
		m.console.Printf("Invalid level.\n")
		return nil
	}

	return m.PlaySession(ctx, name, m.difficulties[idx-1].Key)
}

// PlaySession runs one quiz, prints the results and appends them to the ranking.
// Missing or empty question sets and storage failures are reported, not returned;
// only console and context errors are returned.
func (m *Menu) PlaySession(ctx context.Context, name, difficulty string) error {
	result, summary, err := m.quizzes.Play(ctx, m.console, name, difficulty)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return err
		case errors.Is(err, domain.ErrQuestionFileNotFound):
			m.console.Printf("Question file not found.\n")
		case errors.Is(err, domain.ErrDifficultyNotFound), errors.Is(err, domain.ErrNoQuestions):
			m.console.Printf("No questions for this level.\n")
		case errors.Is(err, domain.ErrMalformedQuestion):
			m.console.Printf("The question file is malformed: %v\n", err)
		default:
			m.console.Printf("Could not run the quiz: %v\n", err)
		}
		return nil
	}

	RenderSummary(m.console, summary)
	if err := m.quizzes.Save(ctx, result); err != nil {
		m.console.Printf("Could not save your result: %v\n", err)
	}
	return nil
}

// ShowRanking prints the top n results, or a notice when there is nothing to show.
func (m *Menu) ShowRanking(ctx context.Context, n int) {
	top, err := m.ranking.Top(ctx, n)
	switch {
	case errors.Is(err, domain.ErrEmptyRanking):
		m.console.Printf("No results to show yet.\n")
	case err != nil:
		m.console.Printf("Could not read the ranking: %v\n", err)
	default:
		RenderRanking(m.console, top)
	}
}

// AskName prompts until a non-blank player name is entered.
func (m *Menu) AskName() (string, error) {
	for {
		name, err := m.console.Prompt("Enter your name: ")
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		m.console.Printf("Name cannot be empty.\n")
	}
}
