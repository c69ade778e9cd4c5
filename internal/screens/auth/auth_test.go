package auth

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/paomind/internal/account"
	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/store"
)

var (
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func typeText(s *AuthScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func loggedIn(t *testing.T, cmd tea.Cmd) store.User {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	msg, ok := cmd().(flow.LoggedInMsg)
	if !ok {
		t.Fatal("expected LoggedInMsg")
	}
	return msg.User
}

func announcesLogin(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(flow.LoggedInMsg)
	return ok
}

func TestSignUp(t *testing.T) {
	s := New(screen.Deps{})
	if s.Mode() != account.SignUp {
		t.Fatal("form should start in sign-up mode")
	}
	typeText(s, "Ada")
	s.Update(enter)
	typeText(s, "ada@example.com")
	s.Update(tab)
	typeText(s, "secret1")
	_, cmd := s.Update(enter)

	u := loggedIn(t, cmd)
	if u.Name != "Ada" || u.Email != "ada@example.com" {
		t.Errorf("user = %+v", u)
	}
	if _, cmd = s.Update(enter); cmd != nil {
		t.Error("login must only be announced once")
	}
}

func TestSignInUsesEmailLocalPart(t *testing.T) {
	s := New(screen.Deps{})
	s.Update(ctrl('t'))
	if s.Mode() != account.SignIn {
		t.Fatal("ctrl+t should switch to sign in")
	}
	typeText(s, "grace@example.com")
	s.Update(tab)
	typeText(s, "hopper!")
	_, cmd := s.Update(enter)

	if u := loggedIn(t, cmd); u.Name != "grace" {
		t.Errorf("name = %q, want grace", u.Name)
	}
}

func TestValidationProblemsShown(t *testing.T) {
	s := New(screen.Deps{})
	s.Update(tab)
	typeText(s, "not-an-email")
	s.Update(tab)
	typeText(s, "123")
	_, cmd := s.Update(enter)
	if announcesLogin(cmd) {
		t.Fatal("an invalid form must not log in")
	}
	if s.focus != fieldName {
		t.Errorf("focus = %v, want the first bad field", s.focus)
	}
	for _, k := range []string{"name", "email", "password"} {
		if s.problems[k] == "" {
			t.Errorf("expected a %s problem", k)
		}
	}
	if !strings.Contains(s.View(100, 40), s.problems["email"]) {
		t.Error("problems should be rendered")
	}

	typeText(s, "A")
	if s.problems["name"] != "" {
		t.Error("typing into a field should clear its problem")
	}
}

func TestGuest(t *testing.T) {
	s := New(screen.Deps{})
	_, cmd := s.Update(ctrl('g'))
	if u := loggedIn(t, cmd); u != account.Guest() {
		t.Errorf("user = %+v, want guest", u)
	}
}

func TestFocusWrapsWithinMode(t *testing.T) {
	s := New(screen.Deps{})
	s.Update(ctrl('t'))
	s.Update(tab)
	s.Update(tab)
	if s.focus != fieldEmail {
		t.Errorf("sign in has two fields, focus = %v", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != fieldPassword {
		t.Errorf("shift+tab should wrap backwards, focus = %v", s.focus)
	}
}

func TestShowsReadyData(t *testing.T) {
	cs := custom.NewStore(nil, nil)
	if _, err := cs.Add(context.Background(), pao.Person, custom.Draft{Number: 1, Title: "Neo"}); err != nil {
		t.Fatal(err)
	}
	s := New(screen.Deps{Custom: cs})
	if !strings.Contains(s.View(100, 40), "1 custom PAO items are ready") {
		t.Error("existing custom data should be mentioned")
	}
}
