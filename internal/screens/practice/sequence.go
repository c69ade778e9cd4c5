package practice

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/pao"
	engine "github.com/abhisek/paomind/internal/practice"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

// SequenceScreen shows a number sequence to memorize, then hides it until
// the user asks to check their recall.
type SequenceScreen struct {
	deps      screen.Deps
	challenge *engine.SequenceChallenge
	form      setupForm
	length    *setting
	study     *setting
	scope     *setting
	start     *setting
	end       *setting
	clock     *components.Ticker
}

var _ screen.Screen = (*SequenceScreen)(nil)
var _ screen.KeyHintProvider = (*SequenceScreen)(nil)
var _ screen.Disposer = (*SequenceScreen)(nil)

func NewSequence(deps screen.Deps) *SequenceScreen {
	def := engine.DefaultSequenceConfig()
	s := &SequenceScreen{
		deps:      deps,
		challenge: engine.NewSequenceChallenge(deps.Table, deps.Random()),
		clock:     components.NewTicker(time.Second),
	}
	s.length = &setting{Label: "Sequence length", Value: orDefault(deps.Practice.SequenceLength, def.Length), Min: 3, Max: 20}
	s.study = &setting{Label: "Study time", Value: orDefault(deps.Practice.StudySeconds, def.StudySeconds), Min: 10, Max: 120, Step: 5, Format: seconds}
	s.scope, s.start, s.end = rangeSettings()
	s.form = setupForm{settings: []*setting{s.length, s.study, s.scope, s.start, s.end}}
	return s
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (s *SequenceScreen) Init() tea.Cmd { return nil }

func (s *SequenceScreen) Title() string { return "Sequence Challenge" }

func (s *SequenceScreen) Dispose() { s.clock.Stop() }

// Challenge exposes the underlying state machine.
func (s *SequenceScreen) Challenge() *engine.SequenceChallenge { return s.challenge }

func (s *SequenceScreen) KeyHints() []layout.KeyHint {
	switch s.challenge.Phase() {
	case engine.SequenceStudying:
		return []layout.KeyHint{{Key: "Enter", Description: "I'm ready"}, {Key: "Esc", Description: "Back"}}
	case engine.SequenceRecall:
		return []layout.KeyHint{
			{Key: "Space", Description: "Show/hide answer"},
			{Key: "N", Description: "New sequence"},
			{Key: "S", Description: "Settings"},
		}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Setting"}, {Key: "←→", Description: "Change"}, {Key: "Enter", Description: "Start"}}
}

func (s *SequenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TickMsg:
		if !s.clock.Owns(msg) {
			return s, nil
		}
		if s.challenge.Tick() {
			s.clock.Stop()
			return s, nil
		}
		return s, s.clock.Next()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *SequenceScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.challenge.Phase() {
	case engine.SequenceSetup:
		if !s.form.update(msg) {
			return nil
		}
		cfg := engine.SequenceConfig{
			Length:       s.length.Value,
			StudySeconds: s.study.Value,
			Range:        numberRange(s.scope, s.start, s.end),
		}
		if err := s.challenge.Start(cfg); err != nil {
			s.form.err = err.Error()
			return nil
		}
		s.form.err = ""
		return s.clock.Start()

	case engine.SequenceStudying:
		if msg.String() == "enter" {
			s.clock.Stop()
			_ = s.challenge.FinishStudy()
		}

	case engine.SequenceRecall:
		switch msg.String() {
		case "space", "r", "enter":
			_ = s.challenge.ToggleReveal()
		case "n":
			if err := s.challenge.NewSequence(); err == nil {
				return s.clock.Start()
			}
		case "s":
			s.clock.Stop()
			s.challenge.ChangeSettings()
		}
	}
	return nil
}

func (s *SequenceScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	var body string
	switch s.challenge.Phase() {
	case engine.SequenceSetup:
		body = theme.Title.Width(w).Render("Sequence Challenge") + "\n" +
			theme.Subtitle.Width(w).Render("Test your memory with number sequences") + "\n\n" +
			components.Panel(theme.Tag.Render("Configure Challenge")+"\n\n"+s.form.view(), w)
	case engine.SequenceStudying:
		body = s.viewStudying(w)
	case engine.SequenceRecall:
		body = s.viewRecall(w)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (s *SequenceScreen) numberGrid() string {
	var cells []string
	for _, n := range s.challenge.Numbers() {
		cells = append(cells, theme.Card.Render(pao.FormatNumber(n)))
	}
	var rows []string
	for i := 0; i < len(cells); i += 6 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:min(i+6, len(cells))]...))
	}
	return strings.Join(rows, "\n")
}

func (s *SequenceScreen) viewStudying(w int) string {
	total := s.challenge.Config().StudySeconds
	left := s.challenge.Remaining()
	timer := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("⏱ %ds", left))
	bar := components.NewProgressBar("", float64(left)/float64(max(total, 1)), false, w-4).View()

	return components.Panel(
		theme.Tag.Render("Study the Sequence")+"  "+timer+"\n"+
			theme.Hint.Render("Memorize these numbers in order")+"\n\n"+
			s.numberGrid()+"\n\n"+bar, w)
}

func (s *SequenceScreen) viewRecall(w int) string {
	var b strings.Builder
	b.WriteString(theme.Tag.Render("Recall Phase") + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Recite the %d numbers from memory, then check yourself.", len(s.challenge.Numbers()))) + "\n\n")
	if s.challenge.Revealed() {
		b.WriteString(theme.Subtitle.Render("Number Sequence") + "\n" + s.numberGrid() + "\n\n")
		b.WriteString(theme.Subtitle.Render("Memory Story") + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(w - 4).Render(s.challenge.Narrative()))
	} else {
		b.WriteString(theme.ButtonInactive.Render("Show Answer"))
	}
	return components.Panel(b.String(), w)
}
