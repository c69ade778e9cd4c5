package practice

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/paomind/internal/practice"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

type quizPhase int

const (
	quizSetup quizPhase = iota
	quizQuestion
	quizSummary
)

var directions = []engine.Direction{engine.Mixed, engine.NameToNumber, engine.NumberToName}

// QuizScreen runs a multiple-choice quiz: setup, questions, summary.
type QuizScreen struct {
	deps    screen.Deps
	phase   quizPhase
	form    setupForm
	dir     *setting
	count   *setting
	scope   *setting
	start   *setting
	end     *setting
	cfg     engine.QuizConfig
	quiz    *engine.Quiz
	choice  components.MultiChoice
	advance *components.Ticker
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Disposer = (*QuizScreen)(nil)

func NewQuiz(deps screen.Deps) *QuizScreen {
	s := &QuizScreen{deps: deps}
	s.dir = &setting{Label: "Question types", Options: []string{"Mixed", "Name → Number", "Number → Name"}}
	s.count = &setting{Label: "Questions", Value: deps.Practice.QuizCount, Min: 5, Max: 50}
	if s.count.Value == 0 {
		s.count.Value = engine.DefaultQuizConfig().QuestionCount
	}
	s.scope, s.start, s.end = rangeSettings()
	s.form = setupForm{settings: []*setting{s.dir, s.count, s.scope, s.start, s.end}}
	if deps.Practice.AutoAdvance > 0 {
		s.advance = components.NewTicker(deps.Practice.AutoAdvance)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string { return "Quiz Challenge" }

func (s *QuizScreen) Dispose() {
	if s.advance != nil {
		s.advance.Stop()
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case quizQuestion:
		if s.quiz.Answered() {
			return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Back"}}
		}
		return []layout.KeyHint{{Key: "1-4", Description: "Answer"}, {Key: "↑↓ Enter", Description: "Choose"}, {Key: "Esc", Description: "Back"}}
	case quizSummary:
		return []layout.KeyHint{{Key: "R", Description: "Try again"}, {Key: "S", Description: "Settings"}, {Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Setting"}, {Key: "←→", Description: "Change"}, {Key: "Enter", Description: "Start"}}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TickMsg:
		if s.advance == nil || !s.advance.Owns(msg) {
			return s, nil
		}
		s.advance.Stop()
		s.next()
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case quizSetup:
			if s.form.update(msg) {
				s.begin()
			}
		case quizQuestion:
			return s, s.updateQuestion(msg)
		case quizSummary:
			switch msg.String() {
			case "r", "enter":
				s.begin()
			case "s":
				s.phase = quizSetup
			}
		}
	}
	return s, nil
}

func (s *QuizScreen) config() engine.QuizConfig {
	return engine.QuizConfig{
		Direction:     directions[s.dir.Choice],
		QuestionCount: s.count.Value,
		Range:         numberRange(s.scope, s.start, s.end),
	}
}

func (s *QuizScreen) begin() {
	cfg := s.config()
	if err := cfg.Validate(); err != nil {
		s.form.err = err.Error()
		s.phase = quizSetup
		return
	}
	questions, err := engine.GenerateQuiz(s.deps.Table, cfg, s.deps.Random())
	if err != nil {
		s.form.err = err.Error()
		s.phase = quizSetup
		return
	}
	s.cfg = cfg
	s.form.err = ""
	s.quiz = engine.NewQuiz(questions)
	s.phase = quizQuestion
	s.ask()
}

func (s *QuizScreen) ask() {
	q, ok := s.quiz.Current()
	if !ok {
		s.phase = quizSummary
		return
	}
	s.choice = components.NewMultiChoice(q.Text, q.Options, slices.Index(q.Options, q.Correct))
}

func (s *QuizScreen) updateQuestion(msg tea.KeyMsg) tea.Cmd {
	if s.quiz.Answered() {
		if msg.String() == "enter" || msg.String() == "space" {
			s.next()
		}
		return nil
	}
	s.choice, _ = s.choice.Update(msg)
	if !s.choice.Submitted {
		return nil
	}
	if _, err := s.quiz.Answer(s.choice.Options[s.choice.ChosenIndex]); err != nil {
		return nil
	}
	if s.advance != nil {
		return s.advance.Start()
	}
	return nil
}

func (s *QuizScreen) next() {
	if s.advance != nil {
		s.advance.Stop()
	}
	more, err := s.quiz.Next()
	if err != nil {
		return
	}
	if !more {
		s.phase = quizSummary
		return
	}
	s.ask()
}

func (s *QuizScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	var body string
	switch s.phase {
	case quizSetup:
		body = theme.Title.Width(w).Render("Quiz Challenge") + "\n" +
			theme.Subtitle.Width(w).Render("Test your knowledge with customizable questions") + "\n\n" +
			components.Panel(theme.Tag.Render("Configure Quiz")+"\n\n"+s.form.view(), w)
	case quizQuestion:
		body = s.viewQuestion(w)
	case quizSummary:
		body = s.viewSummary(w)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (s *QuizScreen) viewQuestion(w int) string {
	pct := float64(s.quiz.Index()) / float64(max(s.quiz.Total(), 1))
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.quiz.Index()+1, s.quiz.Total()), pct, false, w-4).View()
	score := theme.Hint.Render(fmt.Sprintf("Score: %d", s.quiz.Score()))

	var b strings.Builder
	b.WriteString(progress + "\n" + score + "\n\n")
	b.WriteString(s.choice.View())
	if s.quiz.Answered() {
		q, _ := s.quiz.Current()
		b.WriteString("\n")
		if s.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("The answer was " + q.Correct))
		}
		label := "Next Question"
		if s.quiz.Index()+1 >= s.quiz.Total() {
			label = "Finish Quiz"
		}
		b.WriteString("\n\n" + theme.ButtonActive.Render(label))
	}
	return components.Panel(b.String(), w)
}

func (s *QuizScreen) viewSummary(w int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(w-4).Render("Quiz Complete!") + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(w-4).Align(lipgloss.Center).
		Render(fmt.Sprintf("%d / %d", s.quiz.Score(), s.quiz.Total())) + "\n")
	b.WriteString(theme.Subtitle.Width(w-4).Render(fmt.Sprintf("%d%% accuracy", s.quiz.Accuracy())) + "\n\n")
	b.WriteString(theme.Body.Width(w-4).Align(lipgloss.Center).Render(s.quiz.Verdict()))
	return components.Panel(b.String(), w)
}
