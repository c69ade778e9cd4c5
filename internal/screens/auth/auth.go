package auth

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/account"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/store"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldPassword
)

// AuthScreen is the local sign-in stub. It records who is practicing and
// nothing else.
type AuthScreen struct {
	deps     screen.Deps
	mode     account.Mode
	inputs   [3]components.TextInput
	focus    field
	problems map[string]string
	done     bool
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)
var _ screen.InputCapturer = (*AuthScreen)(nil)

// New starts on the sign-up form.
func New(deps screen.Deps) *AuthScreen {
	s := &AuthScreen{
		deps: deps,
		mode: account.SignUp,
		inputs: [3]components.TextInput{
			components.NewTextInput("Enter your name", false, 64),
			components.NewTextInput("Enter your email", false, 128),
			components.NewPasswordInput("Enter your password"),
		},
	}
	s.setFocus(fieldName)
	return s
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *AuthScreen) Title() string {
	if s.mode == account.SignUp {
		return "Sign Up"
	}
	return "Sign In"
}

func (s *AuthScreen) CapturesInput() bool { return true }

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	toggle := "Sign in instead"
	if s.mode == account.SignIn {
		toggle = "Sign up instead"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: toggle},
		{Key: "Ctrl+G", Description: "Continue as guest"},
	}
}

// Mode returns whether the form signs in or signs up.
func (s *AuthScreen) Mode() account.Mode {
	return s.mode
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus(s.step(1))
		case "shift+tab", "up":
			return s, s.setFocus(s.step(-1))
		case "ctrl+t":
			return s, s.toggleMode()
		case "ctrl+g":
			return s, s.login(account.Guest())
		case "enter":
			if s.focus != fieldPassword {
				return s, s.setFocus(s.step(1))
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		delete(s.problems, s.focus.key())
	}
	return s, cmd
}

func (f field) key() string {
	switch f {
	case fieldName:
		return "name"
	case fieldEmail:
		return "email"
	}
	return "password"
}

func (s *AuthScreen) fields() []field {
	if s.mode == account.SignUp {
		return []field{fieldName, fieldEmail, fieldPassword}
	}
	return []field{fieldEmail, fieldPassword}
}

// step returns the field delta positions away from the focused one,
// wrapping around.
func (s *AuthScreen) step(delta int) field {
	fs := s.fields()
	cur := 0
	for i, f := range fs {
		if f == s.focus {
			cur = i
		}
	}
	return fs[(cur+delta+len(fs))%len(fs)]
}

func (s *AuthScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	var cmd tea.Cmd
	for i := range s.inputs {
		if field(i) == f {
			cmd = s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	return cmd
}

func (s *AuthScreen) toggleMode() tea.Cmd {
	if s.mode == account.SignUp {
		s.mode = account.SignIn
	} else {
		s.mode = account.SignUp
	}
	s.problems = nil
	return s.setFocus(s.fields()[0])
}

func (s *AuthScreen) form() account.Form {
	return account.Form{
		Name:     s.inputs[fieldName].Value(),
		Email:    s.inputs[fieldEmail].Value(),
		Password: s.inputs[fieldPassword].Value(),
	}
}

func (s *AuthScreen) submit() tea.Cmd {
	user, problems := account.Submit(s.mode, s.form())
	if len(problems) > 0 {
		s.problems = problems
		for _, f := range s.fields() {
			if _, bad := problems[f.key()]; bad {
				return s.setFocus(f)
			}
		}
		return nil
	}
	return s.login(user)
}

func (s *AuthScreen) login(u store.User) tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	return func() tea.Msg { return flow.LoggedInMsg{User: u} }
}

func (s *AuthScreen) View(width, height int) string {
	w := min(components.ContentWidth(width), 56)

	heading, sub := "Get Started", "Create your account to continue"
	if s.mode == account.SignIn {
		heading, sub = "Welcome Back", "Sign in to your account"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(w).Render(heading) + "\n")
	b.WriteString(theme.Subtitle.Width(w).Render(sub) + "\n\n")

	labels := map[field]string{fieldName: "Name", fieldEmail: "Email", fieldPassword: "Password"}
	for _, f := range s.fields() {
		label := lipgloss.NewStyle().Foreground(theme.TextDim)
		if f == s.focus {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(label.Render(labels[f]) + "\n")
		b.WriteString(s.inputs[f].View() + "\n")
		if p := s.problems[f.key()]; p != "" {
			b.WriteString(theme.Incorrect.Render(p) + "\n")
		}
		b.WriteString("\n")
	}

	action := "Create Account"
	if s.mode == account.SignIn {
		action = "Sign In"
	}
	b.WriteString(theme.ButtonActive.Render(action))

	if s.deps.Custom != nil && s.deps.Custom.Count() > 0 {
		b.WriteString("\n\n" + theme.Correct.Render(fmt.Sprintf("✓ Your %d custom PAO items are ready", s.deps.Custom.Count())))
	}

	box := components.Panel(b.String(), w)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
