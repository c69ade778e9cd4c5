package practice

import (
	"fmt"
	"math"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/validation"
)

// Direction is the way a question is asked.
type Direction string

const (
	NameToNumber Direction = "name-to-number"
	NumberToName Direction = "number-to-name"
	Mixed        Direction = "mixed"
)

// OptionCount is the number of choices offered per question.
const OptionCount = 4

// QuizConfig configures quiz generation.
type QuizConfig struct {
	Direction     Direction `validate:"oneof=name-to-number number-to-name mixed"`
	QuestionCount int       `validate:"min=5,max=50"`
	Range         Range
}

// DefaultQuizConfig returns a ten-question mixed quiz over the full table.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{Direction: Mixed, QuestionCount: 10, Range: FullRange()}
}

// Validate checks the configuration bounds.
func (c QuizConfig) Validate() error {
	return validation.Struct(c)
}

// Question is one multiple-choice question.
type Question struct {
	ID        string
	Direction Direction
	Kind      pao.Kind
	Text      string
	Correct   string
	Options   []string
	Number    int
}

// GenerateQuiz builds min(cfg.QuestionCount, pool size) questions. Source
// numbers are drawn without replacement. Distractors come from the same
// pool; when the pool is too small the rest of the table tops them up.
func GenerateQuiz(table pao.Table, cfg QuizConfig, rng Rand) ([]Question, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool := Pool(table, cfg.Range)
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if len(table) < OptionCount {
		return nil, ErrTooFewEntries
	}

	order := append([]int(nil), pool...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	count := min(cfg.QuestionCount, len(order))
	kinds := pao.Kinds()
	questions := make([]Question, 0, count)
	for i, n := range order[:count] {
		kind := kinds[rng.IntN(len(kinds))]
		dir := cfg.Direction
		if dir == Mixed {
			dir = []Direction{NameToNumber, NumberToName}[rng.IntN(2)]
		}
		q, err := buildQuestion(table, pool, n, kind, dir, rng)
		if err != nil {
			return nil, err
		}
		q.ID = fmt.Sprintf("%s-%d", dir, i)
		questions = append(questions, q)
	}
	return questions, nil
}

func buildQuestion(table pao.Table, pool []int, n int, kind pao.Kind, dir Direction, rng Rand) (Question, error) {
	value := table[n].Field(kind)
	q := Question{Direction: dir, Kind: kind, Number: n}

	var label func(int) string
	switch dir {
	case NameToNumber:
		q.Text = fmt.Sprintf(`What number corresponds to "%s"?`, value)
		q.Correct = pao.FormatNumber(n)
		label = pao.FormatNumber
	default:
		q.Text = fmt.Sprintf("What %s corresponds to number %s?", kind, pao.FormatNumber(n))
		q.Correct = value
		label = func(m int) string { return table[m].Field(kind) }
	}

	distractors := pickDistractors(pool, n, q.Correct, label, OptionCount-1, rng)
	if len(distractors) < OptionCount-1 {
		distractors = append(distractors, pickDistractors(outside(table, pool), n, q.Correct, label, OptionCount-1-len(distractors), rng, distractors...)...)
	}
	if len(distractors) < OptionCount-1 {
		return Question{}, ErrTooFewEntries
	}

	q.Options = append([]string{q.Correct}, distractors...)
	rng.Shuffle(len(q.Options), func(i, j int) { q.Options[i], q.Options[j] = q.Options[j], q.Options[i] })
	return q, nil
}

// pickDistractors walks candidates in random order collecting up to want
// labels that differ from the correct answer and from each other.
func pickDistractors(candidates []int, source int, correct string, label func(int) string, want int, rng Rand, taken ...string) []string {
	shuffled := append([]int(nil), candidates...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	seen := map[string]bool{correct: true}
	for _, t := range taken {
		seen[t] = true
	}
	var out []string
	for _, m := range shuffled {
		if len(out) == want {
			break
		}
		if m == source {
			continue
		}
		l := label(m)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func outside(table pao.Table, pool []int) []int {
	in := make(map[int]bool, len(pool))
	for _, n := range pool {
		in[n] = true
	}
	var out []int
	for _, n := range table.Keys() {
		if !in[n] {
			out = append(out, n)
		}
	}
	return out
}

// Quiz tracks progress through a generated batch of questions.
type Quiz struct {
	questions []Question
	index     int
	score     int
	answered  bool
	chosen    string
}

// NewQuiz starts a quiz over questions.
func NewQuiz(questions []Question) *Quiz {
	return &Quiz{questions: questions}
}

// Current returns the question being asked. ok is false once the quiz is
// finished.
func (q *Quiz) Current() (Question, bool) {
	if q.index >= len(q.questions) {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Answer records the selected option and locks the question.
func (q *Quiz) Answer(option string) (bool, error) {
	cur, ok := q.Current()
	if !ok {
		return false, ErrWrongPhase
	}
	if q.answered {
		return false, ErrAlreadyAnswered
	}
	q.answered = true
	q.chosen = option
	correct := option == cur.Correct
	if correct {
		q.score++
	}
	return correct, nil
}

// Answered reports whether the current question is locked.
func (q *Quiz) Answered() bool { return q.answered }

// Chosen returns the option picked for the current question.
func (q *Quiz) Chosen() string { return q.chosen }

// Next moves to the following question. It returns false when the quiz has
// no more questions.
func (q *Quiz) Next() (bool, error) {
	if !q.answered {
		return false, ErrNotAnswered
	}
	q.index++
	q.answered = false
	q.chosen = ""
	return q.index < len(q.questions), nil
}

// Done reports whether every question has been answered and passed.
func (q *Quiz) Done() bool { return q.index >= len(q.questions) }

// Index returns the zero-based position of the current question.
func (q *Quiz) Index() int { return q.index }

// Total returns the number of questions.
func (q *Quiz) Total() int { return len(q.questions) }

// Score returns the number of correct answers.
func (q *Quiz) Score() int { return q.score }

// Accuracy returns the score as a whole percentage of the total.
func (q *Quiz) Accuracy() int {
	return Percent(q.score, len(q.questions))
}

// Verdict returns the summary line for the final accuracy.
func (q *Quiz) Verdict() string {
	return Verdict(q.Accuracy())
}

// Percent rounds part/total to a whole percentage.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// Verdict maps an accuracy percentage to feedback.
func Verdict(accuracy int) string {
	switch {
	case accuracy == 100:
		return "Perfect score!"
	case accuracy >= 80:
		return "Great job!"
	case accuracy >= 60:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}
