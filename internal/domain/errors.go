package domain

import "errors"

var (
	// ErrQuestionFileNotFound is returned when the question bank cannot be found.
	ErrQuestionFileNotFound = errors.New("question file not found")
	// ErrDifficultyNotFound is returned when the bank has no entry for a difficulty.
	ErrDifficultyNotFound = errors.New("difficulty not found")
	// ErrMalformedQuestion indicates a question record failed structural validation.
	ErrMalformedQuestion = errors.New("malformed question")
	// ErrNoQuestions is returned when a session would run with an empty question set.
	ErrNoQuestions = errors.New("no questions to run")
	// ErrInvalidScore indicates a correct count outside [0, total].
	ErrInvalidScore = errors.New("invalid score")
	// ErrInvalidOption is returned for an answer label outside A-D.
	ErrInvalidOption = errors.New("invalid option")
	// ErrEmptyRanking indicates there are no stored results to show.
	ErrEmptyRanking = errors.New("ranking is empty")
	// ErrUnknownBackend is returned for an unsupported storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
