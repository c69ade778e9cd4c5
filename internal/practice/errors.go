package practice

import "errors"

var (
	// ErrEmptyPool is returned when a range selects no numbers.
	ErrEmptyPool = errors.New("no numbers in the selected range")

	// ErrTooFewEntries is returned when the table cannot supply four
	// distinct answer options.
	ErrTooFewEntries = errors.New("not enough entries to build four options")

	// ErrAlreadyAnswered is returned when a locked question is answered again.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrNotAnswered is returned when advancing past an unanswered question.
	ErrNotAnswered = errors.New("question not answered yet")

	// ErrWrongPhase is returned when an action does not apply to the
	// engine's current phase.
	ErrWrongPhase = errors.New("action not available in the current phase")
)
