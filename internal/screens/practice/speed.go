package practice

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/pao"
	engine "github.com/abhisek/paomind/internal/practice"
	"github.com/abhisek/paomind/internal/router"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

var speedModes = []engine.SpeedMode{engine.SpeedNumberToName, engine.SpeedNameToNumber}

// SpeedScreen runs timed single-card drills with negative scoring.
type SpeedScreen struct {
	deps    screen.Deps
	session *engine.SpeedSession
	form    setupForm
	mode    *setting
	limit   *setting
	length  *setting
	scope   *setting
	start   *setting
	end     *setting
	input   components.TextInput
	clock   *components.Ticker
	advance *components.Ticker
}

var _ screen.Screen = (*SpeedScreen)(nil)
var _ screen.KeyHintProvider = (*SpeedScreen)(nil)
var _ screen.Disposer = (*SpeedScreen)(nil)
var _ screen.InputCapturer = (*SpeedScreen)(nil)

func NewSpeed(deps screen.Deps) *SpeedScreen {
	def := engine.DefaultSpeedConfig()
	s := &SpeedScreen{
		deps:    deps,
		session: engine.NewSpeedSession(deps.Table, deps.Random()),
		clock:   components.NewTicker(time.Second),
	}
	if deps.Practice.AutoAdvance > 0 {
		s.advance = components.NewTicker(deps.Practice.AutoAdvance)
	}
	s.mode = &setting{Label: "Training mode", Options: []string{"Number → Name", "Name → Number"}}
	s.limit = &setting{Label: "Time per card", Value: orDefault(deps.Practice.SpeedLimit, def.TimeLimit), Min: 1, Max: 30, Format: seconds}
	s.length = &setting{Label: "Cards per session", Value: orDefault(deps.Practice.SpeedSession, def.SessionLength), Min: 5, Max: 50}
	s.scope, s.start, s.end = rangeSettings()
	s.form = setupForm{settings: []*setting{s.mode, s.limit, s.length, s.scope, s.start, s.end}}
	return s
}

func (s *SpeedScreen) Init() tea.Cmd { return nil }

func (s *SpeedScreen) Title() string { return "Speed Training" }

func (s *SpeedScreen) Dispose() {
	s.clock.Stop()
	if s.advance != nil {
		s.advance.Stop()
	}
}

// Session exposes the underlying state machine.
func (s *SpeedScreen) Session() *engine.SpeedSession { return s.session }

func (s *SpeedScreen) CapturesInput() bool {
	return s.session.Phase() == engine.SpeedAwaiting
}

func (s *SpeedScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case engine.SpeedAwaiting:
		return []layout.KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Back"}}
	case engine.SpeedAnswered:
		return []layout.KeyHint{{Key: "Enter", Description: "Next card"}}
	case engine.SpeedComplete:
		return []layout.KeyHint{{Key: "R", Description: "Train again"}, {Key: "S", Description: "Settings"}, {Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Setting"}, {Key: "←→", Description: "Change"}, {Key: "Enter", Description: "Start"}}
}

func (s *SpeedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TickMsg:
		switch {
		case s.clock.Owns(msg):
			if s.session.Tick() {
				return s, s.answered()
			}
			return s, s.clock.Next()
		case s.advance != nil && s.advance.Owns(msg):
			s.advance.Stop()
			return s, s.next()
		}
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if s.session.Phase() == engine.SpeedAwaiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SpeedScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.session.Phase() {
	case engine.SpeedSetup:
		if s.form.update(msg) {
			return s.begin()
		}

	case engine.SpeedAwaiting:
		switch msg.String() {
		case "esc":
			return func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if _, err := s.session.Submit(s.input.Value()); err == nil {
				return s.answered()
			}
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd

	case engine.SpeedAnswered:
		if msg.String() == "enter" || msg.String() == "space" {
			return s.next()
		}

	case engine.SpeedComplete:
		switch msg.String() {
		case "r", "enter":
			s.session.Reset()
			return s.begin()
		case "s":
			s.session.Reset()
		}
	}
	return nil
}

func (s *SpeedScreen) config() engine.SpeedConfig {
	return engine.SpeedConfig{
		Mode:          speedModes[s.mode.Choice],
		TimeLimit:     s.limit.Value,
		SessionLength: s.length.Value,
		Range:         numberRange(s.scope, s.start, s.end),
	}
}

func (s *SpeedScreen) begin() tea.Cmd {
	if err := s.session.Start(s.config()); err != nil {
		s.form.err = err.Error()
		return nil
	}
	s.form.err = ""
	return s.deal()
}

// deal prepares the input for the card in play and starts its clock.
func (s *SpeedScreen) deal() tea.Cmd {
	numeric := s.session.Config().Mode == engine.SpeedNameToNumber
	placeholder := "Type the name"
	limit := 80
	if numeric {
		placeholder, limit = "00", 2
	}
	s.input = components.NewTextInput(placeholder, numeric, limit)
	return tea.Batch(s.input.Focus(), s.clock.Start())
}

// answered stops the card clock and schedules the auto-advance.
func (s *SpeedScreen) answered() tea.Cmd {
	s.clock.Stop()
	s.input.Blur()
	s.input.Submit(s.session.Result().Correct)
	if s.advance != nil {
		return s.advance.Start()
	}
	return nil
}

func (s *SpeedScreen) next() tea.Cmd {
	if s.advance != nil {
		s.advance.Stop()
	}
	if err := s.session.Advance(); err != nil {
		return nil
	}
	if s.session.Phase() == engine.SpeedComplete {
		return nil
	}
	return s.deal()
}

func (s *SpeedScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	var body string
	switch s.session.Phase() {
	case engine.SpeedSetup:
		body = theme.Title.Width(w).Render("Speed Training") + "\n" +
			theme.Subtitle.Width(w).Render("Rapid recall challenges to improve speed") + "\n\n" +
			components.Panel(theme.Tag.Render("Configure Training")+"\n\n"+s.form.view(), w)
	case engine.SpeedAwaiting, engine.SpeedAnswered:
		body = s.viewCard(w)
	case engine.SpeedComplete:
		body = s.viewComplete(w)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

func (s *SpeedScreen) viewCard(w int) string {
	cfg := s.session.Config()
	card := s.session.Card()

	head := theme.Hint.Render(fmt.Sprintf("Card %d of %d", s.session.Count(), cfg.SessionLength)) +
		"   " + theme.Tag.Render(fmt.Sprintf("Score: %d", s.session.Score())) +
		"   " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("⏱ %ds", s.session.Remaining()))

	var b strings.Builder
	b.WriteString(head + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(card.Prompt(cfg.Mode)) + "\n\n")
	b.WriteString(s.input.View())

	if s.session.Phase() == engine.SpeedAnswered {
		res := s.session.Result()
		b.WriteString("\n\n")
		switch {
		case res.TimedOut:
			b.WriteString(theme.Incorrect.Render("Time's up! −1"))
		case res.Correct:
			b.WriteString(theme.Correct.Render("Correct! +1"))
		default:
			b.WriteString(theme.Incorrect.Render("Not quite. −1"))
		}
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("%s %s is %s", card.Kind.Label(), pao.FormatNumber(card.Number), card.Name)))
	}
	return components.Panel(b.String(), w)
}

func (s *SpeedScreen) viewComplete(w int) string {
	cfg := s.session.Config()
	var b strings.Builder
	b.WriteString(theme.Title.Width(w-4).Render("Session Complete!") + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(w-4).Align(lipgloss.Center).
		Render(fmt.Sprintf("Score: %d", s.session.Score())) + "\n")
	b.WriteString(theme.Subtitle.Width(w-4).Render(fmt.Sprintf("%d cards at %ds each", cfg.SessionLength, cfg.TimeLimit)))
	return components.Panel(b.String(), w)
}
