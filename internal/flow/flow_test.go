package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/store"
)

func handle(t *testing.T, c *Controller, msg any) []Effect {
	t.Helper()
	effects, ok := c.Handle(msg)
	require.True(t, ok, "expected %T to be handled", msg)
	return effects
}

func TestFirstLaunchGoesThroughEveryPhase(t *testing.T) {
	c := New(State{})
	assert.Equal(t, PhaseSplash, c.Phase())
	assert.Equal(t, store.ThemeDark, c.Theme())

	handle(t, c, SplashDoneMsg{})
	assert.Equal(t, PhaseOnboarding, c.Phase())

	effects := handle(t, c, OnboardingDoneMsg{})
	assert.Equal(t, []Effect{{Kind: SaveOnboardingDone}}, effects)
	assert.Equal(t, PhaseAuth, c.Phase())

	u := store.User{Email: "ada@example.com", Name: "ada"}
	effects = handle(t, c, LoggedInMsg{User: u})
	assert.Equal(t, []Effect{{Kind: SaveUser, User: u}}, effects)
	assert.Equal(t, PhaseMain, c.Phase())
	assert.Equal(t, PageHome, c.Page())
	assert.Equal(t, &u, c.User())
}

func TestStartupSkipsCompletedSteps(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"onboarding pending", State{User: &store.User{Name: "x"}}, PhaseOnboarding},
		{"signed out", State{OnboardingDone: true}, PhaseAuth},
		{"returning user", State{OnboardingDone: true, User: &store.User{Name: "x"}}, PhaseMain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.state)
			handle(t, c, SplashDoneMsg{})
			assert.Equal(t, tt.want, c.Phase())
		})
	}
}

func mainController(t *testing.T) *Controller {
	t.Helper()
	c := New(State{OnboardingDone: true, User: &store.User{Name: "x"}, Theme: store.ThemeLight})
	handle(t, c, SplashDoneMsg{})
	require.Equal(t, PhaseMain, c.Phase())
	return c
}

func TestNavigationResetsPracticeMode(t *testing.T) {
	c := mainController(t)

	handle(t, c, StartPracticeMsg{Mode: PracticeQuiz})
	assert.Equal(t, PagePractice, c.Page())
	assert.Equal(t, PracticeQuiz, c.PracticeMode())

	handle(t, c, NavigateMsg{Page: PageSettings})
	assert.Equal(t, PageSettings, c.Page())
	assert.Equal(t, PracticeMenu, c.PracticeMode())

	handle(t, c, StartPracticeMsg{Mode: PracticeSpeed})
	handle(t, c, EndPracticeMsg{})
	assert.Equal(t, PagePractice, c.Page())
	assert.Equal(t, PracticeMenu, c.PracticeMode())
}

func TestNavigateIgnoredOutsideMain(t *testing.T) {
	c := New(State{})
	handle(t, c, NavigateMsg{Page: PageProfile})
	assert.Equal(t, PageHome, c.Page())
	assert.Equal(t, PhaseSplash, c.Phase())
}

func TestReplayOnboardingReturnsToMain(t *testing.T) {
	c := mainController(t)
	handle(t, c, NavigateMsg{Page: PageSettings})

	handle(t, c, ShowOnboardingMsg{})
	assert.Equal(t, PhaseOnboarding, c.Phase())

	effects := handle(t, c, OnboardingDoneMsg{})
	assert.Empty(t, effects, "flag already set")
	assert.Equal(t, PhaseMain, c.Phase())
	assert.Equal(t, PageSettings, c.Page())
}

func TestLogout(t *testing.T) {
	c := mainController(t)
	handle(t, c, NavigateMsg{Page: PageProfile})

	effects := handle(t, c, LogoutMsg{})
	assert.Equal(t, []Effect{{Kind: ClearUser}}, effects)
	assert.Equal(t, PhaseAuth, c.Phase())
	assert.Nil(t, c.User())
	assert.Equal(t, PageHome, c.Page())
}

func TestThemeChangePersistsOnlyOnChange(t *testing.T) {
	c := mainController(t)

	assert.Empty(t, handle(t, c, ThemeChangedMsg{Theme: store.ThemeLight}))
	effects := handle(t, c, ThemeChangedMsg{Theme: store.ThemeDark})
	assert.Equal(t, []Effect{{Kind: SaveTheme, Theme: store.ThemeDark}}, effects)
	assert.Equal(t, store.ThemeDark, c.Theme())
}

func TestWelcomeSeenOnce(t *testing.T) {
	c := mainController(t)
	assert.Equal(t, []Effect{{Kind: SaveWelcomeSeen}}, handle(t, c, WelcomeSeenMsg{}))
	assert.Empty(t, handle(t, c, WelcomeSeenMsg{}))
	assert.True(t, c.WelcomeSeen())
}

func TestUnknownMessageNotHandled(t *testing.T) {
	c := New(State{})
	_, ok := c.Handle("noise")
	assert.False(t, ok)
}
