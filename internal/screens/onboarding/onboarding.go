package onboarding

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

type slide struct {
	title string
	body  string

	// copyText is put on the clipboard with "c". Empty disables copying.
	copyText  string
	copyLabel string
	extra     func(s *OnboardingScreen, width int) string
}

var slides = []slide{
	{
		title: "Welcome to PAO Memory",
		body:  "Master the Person-Action-Object technique to remember numbers effortlessly. Transform digits into vivid stories!",
		extra: func(s *OnboardingScreen, width int) string { return s.exampleCards(width) },
	},
	{
		title:     "Import Your PAO",
		body:      "Already have a PAO system? Paste it in plain text format and we'll convert it for you, or import a CSV or JSON file from Settings.",
		copyText:  custom.TextFormatGuide,
		copyLabel: "format guide",
		extra: func(_ *OnboardingScreen, width int) string {
			return components.Panel(theme.Hint.Render("Format guide:")+"\n"+custom.TextFormatGuide, width)
		},
	},
	{
		title:     "Create with AI",
		body:      "Let AI build your personalized PAO system. Copy this prompt and use it with ChatGPT, Claude, or any AI assistant:",
		copyText:  custom.Prompt(),
		copyLabel: "prompt",
		extra: func(_ *OnboardingScreen, width int) string {
			return components.Panel(promptPreview(custom.Prompt(), 6), width)
		},
	},
	{
		title: "You're Ready!",
		body:  "Start practicing, create stories, and unlock your memory potential. Need help? Access the guide anytime from Settings.",
	},
}

// exampleNumber is the number walked through on the first slide.
const exampleNumber = 2

// OnboardingScreen walks a new user through the app in four slides.
type OnboardingScreen struct {
	deps      screen.Deps
	step      int
	status    string
	statusErr bool
	done      bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

func New(deps screen.Deps) *OnboardingScreen {
	return &OnboardingScreen{deps: deps}
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (s *OnboardingScreen) Title() string {
	return "Getting Started"
}

// Step returns the zero-based index of the visible slide.
func (s *OnboardingScreen) Step() int {
	return s.step
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←/→", Description: "Navigate"}}
	if slides[s.step].copyText != "" {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Copy " + slides[s.step].copyLabel})
	}
	if s.last() {
		return append(hints, layout.KeyHint{Key: "Enter", Description: "Get Started"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Next"},
		layout.KeyHint{Key: "S", Description: "Skip"},
	)
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "right", "l", "enter", "space":
		if s.last() {
			return s, s.finish()
		}
		s.step++
		s.status = ""
	case "left", "h":
		if s.step > 0 {
			s.step--
			s.status = ""
		}
	case "s", "esc":
		return s, s.finish()
	case "c":
		s.copy()
	}
	return s, nil
}

func (s *OnboardingScreen) last() bool {
	return s.step == len(slides)-1
}

func (s *OnboardingScreen) finish() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	return func() tea.Msg { return flow.OnboardingDoneMsg{} }
}

func (s *OnboardingScreen) copy() {
	sl := slides[s.step]
	if sl.copyText == "" {
		return
	}
	if s.deps.Copy == nil {
		s.status, s.statusErr = "Clipboard is not available", true
		return
	}
	if err := s.deps.Copy(sl.copyText); err != nil {
		s.deps.Logger().Warn("clipboard copy failed", zap.Error(err))
		s.status, s.statusErr = "Could not copy: "+err.Error(), true
		return
	}
	s.status, s.statusErr = "Copied "+sl.copyLabel+"!", false
}

func (s *OnboardingScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	sl := slides[s.step]

	sections := []string{
		theme.Title.Width(w).Render(sl.title),
		lipgloss.NewStyle().Foreground(theme.Text).Width(w).Align(lipgloss.Center).Render(sl.body),
	}
	if sl.extra != nil {
		sections = append(sections, sl.extra(s, w))
	}
	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status, s.statusErr))
	}
	sections = append(sections, s.dots())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *OnboardingScreen) dots() string {
	var parts []string
	for i := range slides {
		if i == s.step {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return strings.Join(parts, " ") + theme.Hint.Render(fmt.Sprintf("   %d/%d", s.step+1, len(slides)))
}

// exampleCards shows how one number becomes a scene.
func (s *OnboardingScreen) exampleCards(width int) string {
	n := pao.FormatNumber(exampleNumber)
	t := s.deps.Resolver().Resolve(pao.NumberInputs{Person: n, Action: n, Object: n})
	if !t.Complete() {
		return ""
	}
	cardW := max((width-4)/3, 12)
	var cards []string
	for _, k := range pao.Kinds() {
		f := t.Field(k)
		cards = append(cards, components.ItemCard(k.Label(), n, f.Display(), f.Resolved, cardW))
	}
	caption := theme.Hint.Render(fmt.Sprintf("%s → %s %s a %s", n, t.Person.Value, t.Action.Value, t.Object.Value))
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n" + caption
}

func promptPreview(prompt string, lines int) string {
	all := strings.Split(prompt, "\n")
	if len(all) <= lines {
		return prompt
	}
	return strings.Join(all[:lines], "\n") + "\n" + theme.Hint.Render(fmt.Sprintf("… %d more lines", len(all)-lines))
}
