package practice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/validation"
)

func TestGenerateQuizProperties(t *testing.T) {
	table := pao.Default()
	configs := []QuizConfig{
		{Direction: Mixed, QuestionCount: 10, Range: FullRange()},
		{Direction: NameToNumber, QuestionCount: 50, Range: FullRange()},
		{Direction: NumberToName, QuestionCount: 20, Range: Range{Start: 10, End: 19}},
		{Direction: Mixed, QuestionCount: 5, Range: Range{Start: 98, End: 99}},
		{Direction: NameToNumber, QuestionCount: 7, Range: Range{Start: 42, End: 42}},
	}

	for seed := uint64(1); seed <= 25; seed++ {
		for _, cfg := range configs {
			rng := NewSeededRand(seed)
			qs, err := GenerateQuiz(table, cfg, rng)
			require.NoError(t, err)

			pool := Pool(table, cfg.Range)
			assert.Len(t, qs, min(cfg.QuestionCount, len(pool)))

			seen := map[int]bool{}
			for _, q := range qs {
				assert.False(t, seen[q.Number], "number %d repeated", q.Number)
				seen[q.Number] = true
				assert.True(t, cfg.Range.Contains(q.Number))

				require.Len(t, q.Options, OptionCount)
				matches := 0
				distinct := map[string]bool{}
				for _, o := range q.Options {
					if o == q.Correct {
						matches++
					}
					distinct[o] = true
				}
				assert.Equal(t, 1, matches, "question %s", q.ID)
				assert.Len(t, distinct, OptionCount)

				if cfg.Direction != Mixed {
					assert.Equal(t, cfg.Direction, q.Direction)
				}
				switch q.Direction {
				case NameToNumber:
					assert.Equal(t, pao.FormatNumber(q.Number), q.Correct)
				case NumberToName:
					assert.Equal(t, table[q.Number].Field(q.Kind), q.Correct)
				}
			}
		}
	}
}

func TestGenerateQuizRangeBoundsBatch(t *testing.T) {
	cfg := QuizConfig{Direction: Mixed, QuestionCount: 10, Range: Range{Start: 0, End: 4}}
	qs, err := GenerateQuiz(pao.Default(), cfg, NewSeededRand(7))
	require.NoError(t, err)
	require.Len(t, qs, 5)

	got := map[int]bool{}
	for _, q := range qs {
		got[q.Number] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true}, got)
}

func TestGenerateQuizDistractorsStayInPool(t *testing.T) {
	cfg := QuizConfig{Direction: NameToNumber, QuestionCount: 10, Range: Range{Start: 20, End: 29}}
	qs, err := GenerateQuiz(pao.Default(), cfg, NewSeededRand(3))
	require.NoError(t, err)
	for _, q := range qs {
		for _, o := range q.Options {
			n, ok := pao.ParseNumber(o)
			require.True(t, ok)
			assert.True(t, n >= 20 && n <= 29, "option %s outside pool", o)
		}
	}
}

func TestGenerateQuizQuestionText(t *testing.T) {
	table := pao.Table{
		1: pao.NewEntry("Archer", "aiming", "arrow"),
		2: pao.NewEntry("Ballerina", "bouncing", "ball"),
		3: pao.NewEntry("Chef", "chopping", "carrot"),
		4: pao.NewEntry("Diver", "diving", "dolphin"),
		5: pao.NewEntry("Engineer", "welding", "engine"),
	}
	cfg := QuizConfig{Direction: NumberToName, QuestionCount: 5, Range: FullRange()}
	qs, err := GenerateQuiz(table, cfg, NewSeededRand(11))
	require.NoError(t, err)
	for _, q := range qs {
		assert.Equal(t, "What "+string(q.Kind)+" corresponds to number "+pao.FormatNumber(q.Number)+"?", q.Text)
	}

	cfg.Direction = NameToNumber
	qs, err = GenerateQuiz(table, cfg, NewSeededRand(11))
	require.NoError(t, err)
	for _, q := range qs {
		assert.Equal(t, `What number corresponds to "`+table[q.Number].Field(q.Kind)+`"?`, q.Text)
	}
}

func TestGenerateQuizRejectsBadConfig(t *testing.T) {
	table := pao.Default()
	_, err := GenerateQuiz(table, QuizConfig{Direction: Mixed, QuestionCount: 4, Range: FullRange()}, NewSeededRand(1))
	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "QuestionCount")

	_, err = GenerateQuiz(table, QuizConfig{Direction: "backwards", QuestionCount: 10, Range: FullRange()}, NewSeededRand(1))
	require.Error(t, err)

	_, err = GenerateQuiz(table, QuizConfig{Direction: Mixed, QuestionCount: 10, Range: Range{Start: 50, End: 40}}, NewSeededRand(1))
	require.Error(t, err)
}

func TestGenerateQuizEmptyPool(t *testing.T) {
	table := pao.Table{
		1: pao.NewEntry("a", "b", "c"),
		2: pao.NewEntry("d", "e", "f"),
		3: pao.NewEntry("g", "h", "i"),
		4: pao.NewEntry("j", "k", "l"),
	}
	_, err := GenerateQuiz(table, QuizConfig{Direction: Mixed, QuestionCount: 5, Range: Range{Start: 50, End: 60}}, NewSeededRand(1))
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestGenerateQuizTooFewEntries(t *testing.T) {
	table := pao.Table{
		1: pao.NewEntry("a", "b", "c"),
		2: pao.NewEntry("d", "e", "f"),
	}
	_, err := GenerateQuiz(table, QuizConfig{Direction: Mixed, QuestionCount: 5, Range: FullRange()}, NewSeededRand(1))
	assert.ErrorIs(t, err, ErrTooFewEntries)
}

func sampleQuestions() []Question {
	return []Question{
		{ID: "q0", Correct: "02", Options: []string{"01", "02", "03", "04"}},
		{ID: "q1", Correct: "ball", Options: []string{"arrow", "ball", "carrot", "engine"}},
		{ID: "q2", Correct: "07", Options: []string{"07", "08", "09", "10"}},
		{ID: "q3", Correct: "Chef", Options: []string{"Chef", "Diver", "Mime", "Ogre"}},
		{ID: "q4", Correct: "11", Options: []string{"11", "12", "13", "14"}},
	}
}

func TestQuizScoringAndLocking(t *testing.T) {
	q := NewQuiz(sampleQuestions())

	ok, err := q.Answer("02")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, q.Score())

	_, err = q.Answer("01")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, 1, q.Score())
	assert.Equal(t, "02", q.Chosen())

	more, err := q.Next()
	require.NoError(t, err)
	assert.True(t, more)

	_, err = q.Next()
	assert.ErrorIs(t, err, ErrNotAnswered)

	ok, err = q.Answer("arrow")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, q.Score(), "wrong answers never subtract")
}

func TestQuizCompletesWithAccuracy(t *testing.T) {
	q := NewQuiz(sampleQuestions())
	answers := []string{"02", "ball", "08", "Chef", "11"}
	for i, a := range answers {
		cur, ok := q.Current()
		require.True(t, ok)
		assert.Equal(t, i, q.Index())
		_, err := q.Answer(a)
		require.NoError(t, err)
		more, err := q.Next()
		require.NoError(t, err)
		assert.Equal(t, i < len(answers)-1, more, "after %s", cur.ID)
	}

	assert.True(t, q.Done())
	_, ok := q.Current()
	assert.False(t, ok)
	assert.Equal(t, 4, q.Score())
	assert.Equal(t, 80, q.Accuracy())
	assert.Equal(t, "Great job!", q.Verdict())

	_, err := q.Answer("02")
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		accuracy int
		want     string
	}{
		{100, "Perfect score!"},
		{99, "Great job!"},
		{80, "Great job!"},
		{79, "Good effort!"},
		{60, "Good effort!"},
		{59, "Keep practicing!"},
		{0, "Keep practicing!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Verdict(tt.accuracy), "accuracy %d", tt.accuracy)
	}
}

func TestPercentRounds(t *testing.T) {
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 0, Percent(0, 0))
}
