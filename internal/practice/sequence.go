package practice

import (
	"strings"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/validation"
)

// SequenceConfig configures a sequence challenge.
type SequenceConfig struct {
	Length       int `validate:"min=3,max=20"`
	StudySeconds int `validate:"min=10,max=120"`
	Range        Range
}

// DefaultSequenceConfig returns a three-number, thirty-second challenge.
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{Length: 3, StudySeconds: 30, Range: FullRange()}
}

// Validate checks the configuration bounds.
func (c SequenceConfig) Validate() error {
	return validation.Struct(c)
}

// GenerateSequence draws length numbers from pool with replacement.
func GenerateSequence(pool []int, length int, rng Rand) ([]int, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	seq := make([]int, length)
	for i := range seq {
		seq[i] = pool[rng.IntN(len(pool))]
	}
	return seq, nil
}

// Narrative stitches numbers into sentences three at a time: the person of
// the first, the action of the second and the object of the third. A
// trailing pair or single number gets a shorter sentence.
func Narrative(table pao.Table, numbers []int) string {
	field := func(n int, k pao.Kind, fallback string) string {
		if e, ok := table.Lookup(n); ok && e.Field(k) != "" {
			return e.Field(k)
		}
		return fallback
	}

	var sentences []string
	for i := 0; i < len(numbers); i += 3 {
		group := numbers[i:min(i+3, len(numbers))]
		person := field(group[0], pao.Person, "Someone")
		switch len(group) {
		case 3:
			sentences = append(sentences, person+" is "+field(group[1], pao.Action, "doing something")+" with a "+field(group[2], pao.Object, "something"))
		case 2:
			sentences = append(sentences, person+" is "+field(group[1], pao.Action, "doing something"))
		default:
			sentences = append(sentences, person+" appears")
		}
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}

// SequencePhase is the stage of a sequence challenge.
type SequencePhase int

const (
	SequenceSetup SequencePhase = iota
	SequenceStudying
	SequenceRecall
)

func (p SequencePhase) String() string {
	switch p {
	case SequenceSetup:
		return "setup"
	case SequenceStudying:
		return "studying"
	case SequenceRecall:
		return "recall"
	}
	return "unknown"
}

// SequenceChallenge runs setup, studying and recall. Studying ends when the
// countdown reaches zero.
type SequenceChallenge struct {
	table     pao.Table
	rng       Rand
	cfg       SequenceConfig
	phase     SequencePhase
	numbers   []int
	narrative string
	timer     Countdown
	revealed  bool
}

// NewSequenceChallenge creates a challenge in the setup phase.
func NewSequenceChallenge(table pao.Table, rng Rand) *SequenceChallenge {
	return &SequenceChallenge{table: table, rng: rng, cfg: DefaultSequenceConfig()}
}

// Config returns the active configuration.
func (s *SequenceChallenge) Config() SequenceConfig { return s.cfg }

// Phase returns the current phase.
func (s *SequenceChallenge) Phase() SequencePhase { return s.phase }

// Numbers returns the generated sequence.
func (s *SequenceChallenge) Numbers() []int { return s.numbers }

// Narrative returns the story for the generated sequence.
func (s *SequenceChallenge) Narrative() string { return s.narrative }

// Remaining returns the seconds left to study.
func (s *SequenceChallenge) Remaining() int { return s.timer.Remaining }

// Revealed reports whether the answer is visible during recall.
func (s *SequenceChallenge) Revealed() bool { return s.revealed }

// Start validates cfg, generates a sequence and begins studying.
func (s *SequenceChallenge) Start(cfg SequenceConfig) error {
	if s.phase != SequenceSetup {
		return ErrWrongPhase
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return s.study()
}

func (s *SequenceChallenge) study() error {
	seq, err := GenerateSequence(Pool(s.table, s.cfg.Range), s.cfg.Length, s.rng)
	if err != nil {
		return err
	}
	s.numbers = seq
	s.narrative = Narrative(s.table, seq)
	s.timer = NewCountdown(s.cfg.StudySeconds)
	s.revealed = false
	s.phase = SequenceStudying
	return nil
}

// Tick advances the study countdown by one second and reports whether it
// moved the challenge into recall.
func (s *SequenceChallenge) Tick() bool {
	if s.phase != SequenceStudying {
		return false
	}
	if s.timer.Tick() {
		s.phase = SequenceRecall
		return true
	}
	return false
}

// FinishStudy ends studying early.
func (s *SequenceChallenge) FinishStudy() error {
	if s.phase != SequenceStudying {
		return ErrWrongPhase
	}
	s.timer.Remaining = 0
	s.phase = SequenceRecall
	return nil
}

// ToggleReveal shows or hides the answer during recall.
func (s *SequenceChallenge) ToggleReveal() error {
	if s.phase != SequenceRecall {
		return ErrWrongPhase
	}
	s.revealed = !s.revealed
	return nil
}

// NewSequence draws a fresh sequence with the same settings and restarts
// studying.
func (s *SequenceChallenge) NewSequence() error {
	if s.phase != SequenceRecall {
		return ErrWrongPhase
	}
	return s.study()
}

// ChangeSettings abandons the current sequence and returns to setup.
func (s *SequenceChallenge) ChangeSettings() {
	s.phase = SequenceSetup
	s.numbers = nil
	s.narrative = ""
	s.timer = Countdown{}
	s.revealed = false
}
