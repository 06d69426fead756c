package app

import "quiz-cli/internal/domain"

// Summarize turns a correct/total pair into a percentage and tier.
func Summarize(correct, total int) (domain.Summary, error) {
	if total <= 0 {
		return domain.Summary{}, domain.ErrNoQuestions
	}
	if correct < 0 || correct > total {
		return domain.Summary{}, domain.ErrInvalidScore
	}
	percentage := float64(correct) / float64(total) * 100
	return domain.Summary{
		Correct:    correct,
		Total:      total,
		Percentage: percentage,
		Tier:       domain.TierFor(percentage),
	}, nil
}
