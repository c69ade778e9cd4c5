package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/store"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

var gettingStarted = []string{
	"Start by exploring the default PAO system",
	"Create your own custom PAO items",
	"Practice with interactive exercises",
	"Track your progress as you learn",
}

// HomeScreen turns three typed numbers into a PAO triple and a story.
type HomeScreen struct {
	deps      screen.Deps
	resolver  *pao.Resolver
	teller    *pao.Storyteller
	inputs    [3]components.TextInput
	focus     int
	triple    pao.Triple
	story     string
	hasStory  bool
	user      *store.User
	welcome   bool
	status    string
	statusErr bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.InputCapturer = (*HomeScreen)(nil)

// New creates the home screen. When showWelcome is set a one-time greeting
// covers the page until dismissed.
func New(deps screen.Deps, user *store.User, showWelcome bool) *HomeScreen {
	h := &HomeScreen{
		deps:     deps,
		resolver: deps.Resolver(),
		teller:   pao.NewStoryteller(deps.Random()),
		user:     user,
		welcome:  showWelcome,
	}
	for i := range h.inputs {
		h.inputs[i] = components.NewTextInput("00-99", true, 2)
	}
	h.setFocus(0)
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.inputs[h.focus].Focus()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// CapturesInput is false while the welcome card is up so page keys work.
func (h *HomeScreen) CapturesInput() bool { return !h.welcome }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.welcome {
		return []layout.KeyHint{{Key: "Enter", Description: "Let's Get Started!"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next number"},
		{Key: "Ctrl+R", Description: "New story"},
		{Key: "Ctrl+Y", Description: "Copy story"},
		{Key: "Ctrl+X", Description: "Clear"},
	}
}

// Triple returns the triple for the current inputs.
func (h *HomeScreen) Triple() pao.Triple { return h.triple }

// Story returns the current story and whether one could be told.
func (h *HomeScreen) Story() (string, bool) { return h.story, h.hasStory }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.DataChangedMsg:
		h.refresh()
		return h, nil

	case tea.KeyMsg:
		if h.welcome {
			if msg.String() == "enter" || msg.String() == "esc" {
				h.welcome = false
				return h, func() tea.Msg { return flow.WelcomeSeenMsg{} }
			}
			return h, nil
		}
		switch msg.String() {
		case "tab", "down":
			return h, h.setFocus((h.focus + 1) % len(h.inputs))
		case "shift+tab", "up":
			return h, h.setFocus((h.focus + len(h.inputs) - 1) % len(h.inputs))
		case "ctrl+r":
			h.tell()
			return h, nil
		case "ctrl+y":
			h.copyStory()
			return h, nil
		case "ctrl+x":
			for i := range h.inputs {
				h.inputs[i].Reset()
			}
			h.status = ""
			h.refresh()
			return h, h.setFocus(0)
		}
	}

	before := h.numbers()
	var cmd tea.Cmd
	h.inputs[h.focus], cmd = h.inputs[h.focus].Update(msg)
	if h.numbers() != before {
		h.status = ""
		h.refresh()
	}
	return h, cmd
}

func (h *HomeScreen) numbers() pao.NumberInputs {
	return pao.NumberInputs{
		Person: h.inputs[0].Value(),
		Action: h.inputs[1].Value(),
		Object: h.inputs[2].Value(),
	}
}

// SetNumbers fills the three inputs, as if typed.
func (h *HomeScreen) SetNumbers(in pao.NumberInputs) {
	for i, k := range pao.Kinds() {
		h.inputs[i].SetValue(in.Input(k))
	}
	h.refresh()
}

func (h *HomeScreen) refresh() {
	h.triple = h.resolver.Resolve(h.numbers())
	h.tell()
}

func (h *HomeScreen) tell() {
	h.story, h.hasStory = h.teller.Tell(h.triple)
}

func (h *HomeScreen) copyStory() {
	if !h.hasStory {
		h.status, h.statusErr = "Nothing to copy yet", true
		return
	}
	if h.deps.Copy == nil {
		h.status, h.statusErr = "Clipboard is not available", true
		return
	}
	if err := h.deps.Copy(h.story); err != nil {
		h.deps.Logger().Warn("clipboard copy failed", zap.Error(err))
		h.status, h.statusErr = "Could not copy: "+err.Error(), true
		return
	}
	h.status, h.statusErr = "Story copied!", false
}

func (h *HomeScreen) setFocus(i int) tea.Cmd {
	h.focus = i
	var cmd tea.Cmd
	for j := range h.inputs {
		if j == i {
			cmd = h.inputs[j].Focus()
		} else {
			h.inputs[j].Blur()
		}
	}
	return cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.welcome {
		return h.renderWelcome(width, height)
	}

	w := components.ContentWidth(width)
	colW := max(w/3, 14)

	var inputCols, cardCols []string
	for i, k := range pao.Kinds() {
		label := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == h.focus {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		preview := ""
		if f := h.triple.Field(k); f.Resolved {
			preview = theme.Hint.Render(f.Value)
		}
		inputCols = append(inputCols, lipgloss.NewStyle().Width(colW).Render(
			label.Render(k.Label())+"\n"+h.inputs[i].View()+"\n"+preview,
		))

		f := h.triple.Field(k)
		number := ""
		if in := h.numbers().Input(k); in != "" {
			if n, ok := pao.ParseNumber(in); ok {
				number = pao.FormatNumber(n)
			}
		}
		cardCols = append(cardCols, components.ItemCard(k.Label(), number, f.Display(), f.Resolved, colW))
	}

	story := theme.Hint.Render(pao.StoryPlaceholder)
	if h.hasStory {
		story = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.story)
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, inputCols...),
		lipgloss.JoinHorizontal(lipgloss.Top, cardCols...),
		components.Panel(theme.Tag.Render("Your story")+"\n"+story, w),
	}
	if h.status != "" {
		sections = append(sections, components.StatusLine(h.status, h.statusErr))
	}
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (h *HomeScreen) renderWelcome(width, height int) string {
	name := "there"
	if h.user != nil && h.user.Name != "" {
		name = h.user.Name
	}
	w := min(components.ContentWidth(width), 60)

	var b strings.Builder
	b.WriteString(theme.Title.Width(w-4).Render(fmt.Sprintf("Welcome, %s!", name)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(w-4).Render(
		"You're all set to master the Person-Action-Object memory technique!") + "\n\n")
	b.WriteString(theme.Tag.Render("Getting Started") + "\n")
	for _, line := range gettingStarted {
		b.WriteString(theme.Body.Render("  • "+line) + "\n")
	}
	b.WriteString("\n" + theme.ButtonActive.Render("Let's Get Started!"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Panel(b.String(), w))
}
