package console

import (
	"quiz-cli/internal/app"
	"quiz-cli/internal/domain"
)

// RenderSummary prints the results block shown at the end of a session.
func RenderSummary(c app.Console, s domain.Summary) {
	c.Printf("\n--- RESULTS ---\n")
	c.Printf("Total questions: %d\n", s.Total)
	c.Printf("Correct answers: %d\n", s.Correct)
	c.Printf("Percentage: %.2f%%\n", s.Percentage)
	c.Printf("%s\n", s.Tier.Comment())
}

// RenderRanking prints ranked results, numbered from 1.
func RenderRanking(c app.Console, results []domain.SessionResult) {
	c.Printf("\n--- RANKING ---\n")
	for i, r := range results {
		c.Printf("%d. %s - %d/%d (%.2f%%)\n", i+1, r.PlayerName, r.Correct, r.Total, r.Percentage)
	}
}
