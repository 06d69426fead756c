package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Label identifies one of the four options of a question.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the valid answer labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// ParseLabel normalizes user input (trimmed, case-insensitive) into a Label.
func ParseLabel(raw string) (Label, error) {
	label := Label(strings.ToUpper(strings.TrimSpace(raw)))
	for _, l := range Labels {
		if l == label {
			return label, nil
		}
	}
	return "", ErrInvalidOption
}

// Question models a multiple-choice question with four labelled options.
type Question struct {
	Text    string   `json:"pregunta" yaml:"pregunta"`
	Options []string `json:"opciones" yaml:"opciones"`
	Correct Label    `json:"respuesta_correcta" yaml:"respuesta_correcta"`
}

// Difficulty is a named partition of the question bank.
type Difficulty struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Tier is the qualitative label derived from a percentage score.
type Tier string

const (
	TierExcellent     Tier = "excellent"
	TierOK            Tier = "ok"
	TierNeedsPractice Tier = "needs practice"
)

// TierFor classifies a percentage, evaluated top-down.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= 80:
		return TierExcellent
	case percentage >= 50:
		return TierOK
	default:
		return TierNeedsPractice
	}
}

// Comment is the message shown to the player for the tier.
func (t Tier) Comment() string {
	switch t {
	case TierExcellent:
		return "Great job!"
	case TierOK:
		return "Not bad, but you can improve."
	default:
		return "You need more practice."
	}
}

// Summary aggregates the outcome of a quiz run.
type Summary struct {
	Correct    int
	Total      int
	Percentage float64
	Tier       Tier
}

// SessionResult is the persisted outcome of one completed quiz session.
type SessionResult struct {
	PlayerName string  `json:"nombre"`
	Correct    int     `json:"aciertos"`
	Total      int     `json:"total"`
	Percentage float64 `json:"porcentaje"`
}

// MarshalJSON writes porcentaje with at least one decimal, so a perfect score is 100.0.
func (r SessionResult) MarshalJSON() ([]byte, error) {
	type plain SessionResult
	pct := strconv.FormatFloat(r.Percentage, 'f', -1, 64)
	if !strings.Contains(pct, ".") {
		pct += ".0"
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		plain
		Percentage json.RawMessage `json:"porcentaje"`
	}{plain(r), json.RawMessage(pct)})
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// NewSessionResult builds a result with the percentage rounded to 2 decimals.
func NewSessionResult(playerName string, correct, total int) (SessionResult, error) {
	if total <= 0 {
		return SessionResult{}, ErrNoQuestions
	}
	if correct < 0 || correct > total {
		return SessionResult{}, ErrInvalidScore
	}
	return SessionResult{
		PlayerName: playerName,
		Correct:    correct,
		Total:      total,
		Percentage: RoundPercentage(float64(correct) / float64(total) * 100),
	}, nil
}

// RoundPercentage rounds to 2 decimal places.
func RoundPercentage(p float64) float64 {
	return math.Round(p*100) / 100
}
