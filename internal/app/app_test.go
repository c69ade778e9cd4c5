package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/router"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/screens/auth"
	"github.com/abhisek/paomind/internal/screens/create"
	"github.com/abhisek/paomind/internal/screens/home"
	"github.com/abhisek/paomind/internal/screens/onboarding"
	"github.com/abhisek/paomind/internal/screens/practice"
	"github.com/abhisek/paomind/internal/screens/profile"
	"github.com/abhisek/paomind/internal/screens/settings"
	"github.com/abhisek/paomind/internal/screens/splash"
	"github.com/abhisek/paomind/internal/store"
	"github.com/abhisek/paomind/internal/ui/theme"
)

type fakePersister struct {
	onboardingDone bool
	welcomeSeen    bool
	user           *store.User
	theme          store.Theme
}

func (f *fakePersister) SetOnboardingDone(_ context.Context, done bool) error {
	f.onboardingDone = done
	return nil
}

func (f *fakePersister) SetWelcomeSeen(_ context.Context, seen bool) error {
	f.welcomeSeen = seen
	return nil
}

func (f *fakePersister) SetUser(_ context.Context, u store.User) error {
	f.user = &u
	return nil
}

func (f *fakePersister) ClearUser(context.Context) error {
	f.user = nil
	return nil
}

func (f *fakePersister) SetTheme(_ context.Context, t store.Theme) error {
	f.theme = t
	return nil
}

type stub struct{ disposed bool }

func (s *stub) Init() tea.Cmd                           { return nil }
func (s *stub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stub) View(int, int) string                    { return "stub" }
func (s *stub) Title() string                           { return "Stub" }
func (s *stub) Dispose()                                { s.disposed = true }

func testDeps() screen.Deps {
	return screen.Deps{Table: pao.Default(), Custom: custom.NewStore(nil, nil)}
}

func signedIn() flow.State {
	return flow.State{
		OnboardingDone: true,
		WelcomeSeen:    true,
		User:           &store.User{Name: "Ada", Email: "ada@example.com"},
		Theme:          store.ThemeDark,
	}
}

func send(m AppModel, msgs ...tea.Msg) AppModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func TestFirstRunFlow(t *testing.T) {
	p := &fakePersister{}
	m := New(context.Background(), Options{Deps: testDeps(), Persist: p})
	assert.IsType(t, &splash.SplashScreen{}, m.Active())

	m = send(m, flow.SplashDoneMsg{})
	assert.IsType(t, &onboarding.OnboardingScreen{}, m.Active())

	m = send(m, flow.OnboardingDoneMsg{})
	assert.IsType(t, &auth.AuthScreen{}, m.Active())
	assert.True(t, p.onboardingDone)

	m = send(m, flow.LoggedInMsg{User: store.User{Name: "Ada", Email: "ada@example.com"}})
	require.IsType(t, &home.HomeScreen{}, m.Active())
	require.NotNil(t, p.user)
	assert.Equal(t, "Ada", p.user.Name)
	assert.Equal(t, flow.PhaseMain, m.Controller().Phase())

	m = send(m, flow.WelcomeSeenMsg{})
	assert.True(t, p.welcomeSeen)
}

func TestReturningUserSkipsStraightToHome(t *testing.T) {
	m := New(context.Background(), Options{Deps: testDeps(), State: signedIn(), SkipSplash: true})
	assert.IsType(t, &home.HomeScreen{}, m.Active())
}

func TestNavigationKeys(t *testing.T) {
	m := New(context.Background(), Options{Deps: testDeps(), State: signedIn(), SkipSplash: true})

	// home has a focused number field, so digits are typed, not followed
	m = send(m, tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.IsType(t, &home.HomeScreen{}, m.Active())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyF2})
	assert.IsType(t, &create.CreateScreen{}, m.Active())

	m = send(m, tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.IsType(t, &practice.MenuScreen{}, m.Active())

	m = send(m, tea.KeyPressMsg{Code: '4', Text: "4"})
	assert.IsType(t, &settings.SettingsScreen{}, m.Active())

	m = send(m, tea.KeyPressMsg{Code: '5', Text: "5"})
	assert.IsType(t, &profile.ProfileScreen{}, m.Active())
	assert.Equal(t, flow.PageProfile, m.Controller().Page())

	m = send(m, flow.NavigateMsg{Page: flow.PageHome})
	assert.IsType(t, &home.HomeScreen{}, m.Active())
}

func TestPracticeModeLifecycle(t *testing.T) {
	deps := testDeps()
	m := New(context.Background(), Options{Deps: deps, State: signedIn(), SkipSplash: true})
	m = send(m, flow.NavigateMsg{Page: flow.PagePractice})

	quiz := practice.NewQuiz(deps)
	m = send(m, flow.StartPracticeMsg{Mode: flow.PracticeQuiz}, router.PushScreenMsg{Screen: quiz})
	assert.Same(t, quiz, m.Active())
	assert.Equal(t, flow.PracticeQuiz, m.Controller().PracticeMode())

	// page keys are ignored inside a practice mode
	m = send(m, tea.KeyPressMsg{Code: tea.KeyF1})
	assert.Same(t, quiz, m.Active())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.IsType(t, &practice.MenuScreen{}, m.Active())
	assert.Equal(t, flow.PracticeMenu, m.Controller().PracticeMode())
}

func TestLeavingPageDisposesStack(t *testing.T) {
	m := New(context.Background(), Options{Deps: testDeps(), State: signedIn(), SkipSplash: true})
	m = send(m, flow.NavigateMsg{Page: flow.PagePractice})

	s := &stub{}
	m = send(m, router.PushScreenMsg{Screen: s})
	assert.False(t, s.disposed)

	m = send(m, flow.LogoutMsg{})
	assert.True(t, s.disposed)
	assert.IsType(t, &auth.AuthScreen{}, m.Active())
}

func TestThemeChangeAppliesAndPersists(t *testing.T) {
	t.Cleanup(func() { theme.SetMode(theme.Dark) })
	p := &fakePersister{}
	m := New(context.Background(), Options{Deps: testDeps(), State: signedIn(), Persist: p, SkipSplash: true})
	m = send(m, flow.NavigateMsg{Page: flow.PageSettings})
	settingsPage := m.Active()

	m = send(m, flow.ThemeChangedMsg{Theme: store.ThemeLight})
	assert.Equal(t, theme.Light, theme.Current())
	assert.Equal(t, store.ThemeLight, p.theme)
	assert.Same(t, settingsPage, m.Active(), "the page stays put")
}

func TestShowOnboardingReturnsToMain(t *testing.T) {
	m := New(context.Background(), Options{Deps: testDeps(), State: signedIn(), SkipSplash: true})
	m = send(m, flow.NavigateMsg{Page: flow.PageSettings}, flow.ShowOnboardingMsg{})
	assert.IsType(t, &onboarding.OnboardingScreen{}, m.Active())

	m = send(m, flow.OnboardingDoneMsg{})
	assert.IsType(t, &settings.SettingsScreen{}, m.Active())
}

func TestView(t *testing.T) {
	m := New(context.Background(), Options{Deps: testDeps(), State: signedIn(), SkipSplash: true})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.render()
	assert.Contains(t, out, "PAO Memory")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Practice")
	assert.Contains(t, out, "Profile")

	small := send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, small.render(), "Window too small")
}
