// Package practice holds the practice pages: the mode menu and one screen
// per drill.
package practice

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/router"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

type modeEntry struct {
	mode  flow.PracticeMode
	blurb string
	build func(screen.Deps) screen.Screen
}

var modes = []modeEntry{
	{flow.PracticeFlashcards, "Study PAO associations", func(d screen.Deps) screen.Screen { return NewFlashcards(d) }},
	{flow.PracticeSpeed, "Rapid recall challenges", func(d screen.Deps) screen.Screen { return NewSpeed(d) }},
	{flow.PracticeQuiz, "Mixed question practice", func(d screen.Deps) screen.Screen { return NewQuiz(d) }},
	{flow.PracticeSequence, "Remember sequences of numbers", func(d screen.Deps) screen.Screen { return NewSequence(d) }},
}

// MenuScreen lists the practice modes.
type MenuScreen struct {
	deps screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

func NewMenu(deps screen.Deps) *MenuScreen {
	s := &MenuScreen{deps: deps}
	var items []components.MenuItem
	for _, m := range modes {
		items = append(items, components.MenuItem{
			Label:  m.mode.Label(),
			Action: s.open(m),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

// open starts mode m: the controller records the mode and the router
// shows its screen.
func (s *MenuScreen) open(m modeEntry) func() tea.Cmd {
	return func() tea.Cmd {
		next := m.build(s.deps)
		return tea.Sequence(
			func() tea.Msg { return flow.StartPracticeMsg{Mode: m.mode} },
			func() tea.Msg { return router.PushScreenMsg{Screen: next} },
		)
	}
}

func (s *MenuScreen) Init() tea.Cmd { return nil }

func (s *MenuScreen) Title() string { return "Practice" }

func (s *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Start"}}
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MenuScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	var lines []string
	for i, m := range modes {
		label := "    " + m.mode.Label()
		style := theme.Unselected
		if i == s.menu.Selected {
			label = "  ▸ " + m.mode.Label()
			style = theme.Selected
		}
		lines = append(lines, style.Render(label)+"\n"+theme.Hint.Render("      "+m.blurb))
	}
	body := theme.Title.Width(w).Render("Practice") + "\n" +
		theme.Subtitle.Width(w).Render("Choose how you want to train") + "\n\n" +
		components.Panel(strings.Join(lines, "\n\n"), w)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}
