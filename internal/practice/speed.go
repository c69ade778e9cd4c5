package practice

import (
	"fmt"
	"strings"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/validation"
)

// SpeedMode is the direction speed training asks in.
type SpeedMode string

const (
	SpeedNumberToName SpeedMode = "number-to-name"
	SpeedNameToNumber SpeedMode = "name-to-number"
)

// SpeedConfig configures a speed training session.
type SpeedConfig struct {
	Mode          SpeedMode `validate:"oneof=number-to-name name-to-number"`
	TimeLimit     int       `validate:"min=1,max=30"`
	SessionLength int       `validate:"min=5,max=50"`
	Range         Range
}

// DefaultSpeedConfig returns a ten-card session with ten seconds per card.
func DefaultSpeedConfig() SpeedConfig {
	return SpeedConfig{Mode: SpeedNumberToName, TimeLimit: 10, SessionLength: 10, Range: FullRange()}
}

// Validate checks the configuration bounds.
func (c SpeedConfig) Validate() error {
	return validation.Struct(c)
}

// Card is one speed training sample.
type Card struct {
	Number int
	Kind   pao.Kind
	Name   string
	Image  string
}

// Prompt returns the question shown for the card in mode.
func (c Card) Prompt(mode SpeedMode) string {
	if mode == SpeedNameToNumber {
		return fmt.Sprintf(`Which number is the %s "%s"?`, c.Kind, c.Name)
	}
	return fmt.Sprintf("What %s is number %s?", c.Kind, pao.FormatNumber(c.Number))
}

// Expected returns the answer the card is looking for in mode.
func (c Card) Expected(mode SpeedMode) string {
	if mode == SpeedNameToNumber {
		return pao.FormatNumber(c.Number)
	}
	return c.Name
}

// DrawCard picks a random number from pool and a random slot.
func DrawCard(table pao.Table, pool []int, rng Rand) (Card, error) {
	if len(pool) == 0 {
		return Card{}, ErrEmptyPool
	}
	n := pool[rng.IntN(len(pool))]
	kinds := pao.Kinds()
	k := kinds[rng.IntN(len(kinds))]
	e := table[n]
	return Card{Number: n, Kind: k, Name: e.Field(k), Image: e.Image(k)}, nil
}

// CheckSpeedAnswer compares answer with the card's expected answer. Names
// compare trimmed and case-insensitively; numbers compare as two-digit
// numerals so "7" matches "07".
func CheckSpeedAnswer(mode SpeedMode, c Card, answer string) bool {
	answer = strings.TrimSpace(answer)
	if mode == SpeedNameToNumber {
		if n, ok := pao.ParseNumber(answer); ok {
			answer = pao.FormatNumber(n)
		}
		return answer == pao.FormatNumber(c.Number)
	}
	return strings.ToLower(answer) == strings.ToLower(strings.TrimSpace(c.Name))
}

// SpeedPhase is the stage of a speed training session.
type SpeedPhase int

const (
	SpeedSetup SpeedPhase = iota
	SpeedAwaiting
	SpeedAnswered
	SpeedComplete
)

func (p SpeedPhase) String() string {
	switch p {
	case SpeedSetup:
		return "setup"
	case SpeedAwaiting:
		return "awaiting-answer"
	case SpeedAnswered:
		return "answered"
	case SpeedComplete:
		return "session-complete"
	}
	return "unknown"
}

// Training reports whether the phase is one of the training sub-states.
func (p SpeedPhase) Training() bool {
	return p == SpeedAwaiting || p == SpeedAnswered
}

// SpeedResult is the outcome of the last card.
type SpeedResult struct {
	Answer   string
	Correct  bool
	TimedOut bool
}

// SpeedSession scores +1 for a correct answer and -1 for a wrong answer or
// a timeout. The session completes after SessionLength cards.
type SpeedSession struct {
	table  pao.Table
	rng    Rand
	cfg    SpeedConfig
	pool   []int
	phase  SpeedPhase
	card   Card
	count  int
	score  int
	timer  Countdown
	result SpeedResult
}

// NewSpeedSession creates a session in the setup phase.
func NewSpeedSession(table pao.Table, rng Rand) *SpeedSession {
	return &SpeedSession{table: table, rng: rng, cfg: DefaultSpeedConfig()}
}

// Config returns the active configuration.
func (s *SpeedSession) Config() SpeedConfig { return s.cfg }

// Phase returns the current phase.
func (s *SpeedSession) Phase() SpeedPhase { return s.phase }

// Card returns the card in play.
func (s *SpeedSession) Card() Card { return s.card }

// Count returns the one-based number of the card in play.
func (s *SpeedSession) Count() int { return s.count }

// Score returns the running score, which may be negative.
func (s *SpeedSession) Score() int { return s.score }

// Remaining returns the seconds left for the card in play.
func (s *SpeedSession) Remaining() int { return s.timer.Remaining }

// Result returns the outcome of the last answered card.
func (s *SpeedSession) Result() SpeedResult { return s.result }

// Start validates cfg and deals the first card.
func (s *SpeedSession) Start(cfg SpeedConfig) error {
	if s.phase != SpeedSetup {
		return ErrWrongPhase
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	pool := Pool(s.table, cfg.Range)
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	s.cfg = cfg
	s.pool = pool
	s.score = 0
	s.count = 1
	return s.deal()
}

func (s *SpeedSession) deal() error {
	c, err := DrawCard(s.table, s.pool, s.rng)
	if err != nil {
		return err
	}
	s.card = c
	s.timer = NewCountdown(s.cfg.TimeLimit)
	s.result = SpeedResult{}
	s.phase = SpeedAwaiting
	return nil
}

// Submit scores answer against the card in play.
func (s *SpeedSession) Submit(answer string) (bool, error) {
	if s.phase != SpeedAwaiting {
		return false, ErrWrongPhase
	}
	correct := CheckSpeedAnswer(s.cfg.Mode, s.card, answer)
	if correct {
		s.score++
	} else {
		s.score--
	}
	s.result = SpeedResult{Answer: answer, Correct: correct}
	s.phase = SpeedAnswered
	return correct, nil
}

// Tick consumes one second of the card's time limit. It reports whether
// the card timed out, which scores it as wrong.
func (s *SpeedSession) Tick() bool {
	if s.phase != SpeedAwaiting {
		return false
	}
	if !s.timer.Tick() {
		return false
	}
	s.score--
	s.result = SpeedResult{TimedOut: true}
	s.phase = SpeedAnswered
	return true
}

// Advance deals the next card, or completes the session once SessionLength
// cards have been played.
func (s *SpeedSession) Advance() error {
	if s.phase != SpeedAnswered {
		return ErrWrongPhase
	}
	if s.count >= s.cfg.SessionLength {
		s.phase = SpeedComplete
		return nil
	}
	s.count++
	return s.deal()
}

// Reset returns to setup keeping the last configuration.
func (s *SpeedSession) Reset() {
	s.phase = SpeedSetup
	s.card = Card{}
	s.count = 0
	s.score = 0
	s.timer = Countdown{}
	s.result = SpeedResult{}
}
