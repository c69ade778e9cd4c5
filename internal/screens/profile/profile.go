package profile

import (
	"context"
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

// ProfileScreen shows who is signed in and what they have built.
type ProfileScreen struct {
	deps       screen.Deps
	user       *store.User
	menu       components.Menu
	confirm    components.ButtonRow
	confirming bool
	status     string
	statusErr  bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

func New(deps screen.Deps, user *store.User) *ProfileScreen {
	s := &ProfileScreen{deps: deps, user: user}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Clear custom PAO data", Action: s.askClear},
		{Label: "Log out", Action: func() tea.Cmd {
			return func() tea.Msg { return flow.LogoutMsg{} }
		}},
	})
	return s
}

func (s *ProfileScreen) Init() tea.Cmd { return nil }

func (s *ProfileScreen) Title() string { return "Profile" }

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{{Key: "←→", Description: "Choose"}, {Key: "Y", Description: "Clear all"}, {Key: "N", Description: "Keep"}}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}}
}

func (s *ProfileScreen) askClear() tea.Cmd {
	if s.count() == 0 {
		s.status, s.statusErr = "No custom PAO data to clear", true
		return nil
	}
	s.confirming = true
	s.status = ""
	s.confirm = components.NewButtonRow(
		components.NewButton("Clear all", "y", func() tea.Cmd {
			s.confirming = false
			return s.clear()
		}),
		components.NewButton("Keep", "n", func() tea.Cmd {
			s.confirming = false
			return nil
		}),
	)
	return nil
}

func (s *ProfileScreen) count() int {
	if s.deps.Custom == nil {
		return 0
	}
	return s.deps.Custom.Count()
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.confirming {
		if kmsg.String() == "esc" {
			s.confirming = false
			return s, nil
		}
		var cmd tea.Cmd
		s.confirm, cmd = s.confirm.Update(msg)
		return s, cmd
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ProfileScreen) clear() tea.Cmd {
	n := s.count()
	if err := s.deps.Custom.Clear(context.Background()); err != nil {
		s.deps.Logger().Error("clear custom items", zap.Error(err))
		s.status, s.statusErr = "Could not clear data: "+err.Error(), true
		return nil
	}
	s.deps.Logger().Info("cleared custom items", zap.Int("count", n))
	s.status, s.statusErr = fmt.Sprintf("Cleared %d custom PAO items", n), false
	return func() tea.Msg { return flow.DataChangedMsg{} }
}

func (s *ProfileScreen) View(width, height int) string {
	w := components.ContentWidth(width)

	name, email := "Guest", ""
	if s.user != nil {
		name, email = s.user.Name, s.user.Email
	}
	who := theme.Selected.Render(name)
	if email != "" {
		who += "\n" + theme.Hint.Render(email)
	}

	var counts []string
	for _, k := range pao.Kinds() {
		n := 0
		if s.deps.Custom != nil {
			n = s.deps.Custom.CountByKind(k)
		}
		counts = append(counts, fmt.Sprintf("%-8s %3d", k.Label(), n))
	}
	counts = append(counts, fmt.Sprintf("%-8s %3d", "Total", s.count()))
	stats := theme.Tag.Render("Custom PAO") + "\n" + theme.Body.Render(strings.Join(counts, "\n"))

	var actions string
	if s.confirming {
		actions = theme.Incorrect.Render(fmt.Sprintf("Delete all %d custom items? This cannot be undone.", s.count())) +
			"\n\n" + s.confirm.View()
	} else {
		actions = s.menu.View()
	}

	parts := []string{
		theme.Title.Width(w).Render("Profile"),
		"",
		components.Panel(who, w),
		components.Panel(stats, w),
		components.Panel(actions, w),
	}
	if st := components.StatusLine(s.status, s.statusErr); st != "" {
		parts = append(parts, st)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, lipgloss.JoinVertical(lipgloss.Left, parts...))
}
