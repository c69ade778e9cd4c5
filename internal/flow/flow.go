// Package flow holds the top-level application state machine: which phase
// of the startup sequence is showing, which main page is active and which
// practice mode runs inside it. Screens never mutate this state directly;
// they emit the intent messages declared here and the root model feeds them
// to the Controller.
package flow

import (
	"github.com/abhisek/paomind/internal/store"
)

// Phase is a step of the startup sequence.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseOnboarding
	PhaseAuth
	PhaseMain
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseOnboarding:
		return "onboarding"
	case PhaseAuth:
		return "auth"
	case PhaseMain:
		return "main"
	}
	return "unknown"
}

// Page is a main-phase page reachable from the bottom navigation.
type Page int

const (
	PageHome Page = iota
	PageCreate
	PagePractice
	PageSettings
	PageProfile
)

// Pages lists the navigation pages in display order.
func Pages() []Page {
	return []Page{PageHome, PageCreate, PagePractice, PageSettings, PageProfile}
}

func (p Page) Label() string {
	switch p {
	case PageHome:
		return "Home"
	case PageCreate:
		return "Create"
	case PagePractice:
		return "Practice"
	case PageSettings:
		return "Settings"
	case PageProfile:
		return "Profile"
	}
	return "?"
}

// PracticeMode is the practice sub-mode running on the practice page.
type PracticeMode int

const (
	PracticeMenu PracticeMode = iota
	PracticeFlashcards
	PracticeQuiz
	PracticeSequence
	PracticeSpeed
)

func (m PracticeMode) Label() string {
	switch m {
	case PracticeFlashcards:
		return "Flashcards"
	case PracticeQuiz:
		return "Quiz"
	case PracticeSequence:
		return "Sequence Challenge"
	case PracticeSpeed:
		return "Speed Training"
	}
	return "Practice"
}

// Intent messages.
type (
	SplashDoneMsg     struct{}
	OnboardingDoneMsg struct{}
	ShowOnboardingMsg struct{}
	LoggedInMsg       struct{ User store.User }
	LogoutMsg         struct{}
	NavigateMsg       struct{ Page Page }
	ThemeChangedMsg   struct{ Theme store.Theme }
	StartPracticeMsg  struct{ Mode PracticeMode }
	EndPracticeMsg    struct{}
	WelcomeSeenMsg    struct{}

	// DataChangedMsg announces that the custom collection was mutated so
	// pages showing derived data can refresh.
	DataChangedMsg struct{}
)

// State is the durable state the controller starts from.
type State struct {
	OnboardingDone bool
	WelcomeSeen    bool
	User           *store.User
	Theme          store.Theme
}

// EffectKind names a persistence side effect requested by a transition.
type EffectKind int

const (
	SaveOnboardingDone EffectKind = iota
	SaveWelcomeSeen
	SaveUser
	ClearUser
	SaveTheme
)

// Effect is a side effect for the caller to carry out after a transition.
type Effect struct {
	Kind  EffectKind
	User  store.User
	Theme store.Theme
}

// Controller is the application state machine.
type Controller struct {
	phase    Phase
	page     Page
	practice PracticeMode
	state    State
	// replay is set when onboarding was reopened from settings, so finishing
	// it returns to the main phase instead of auth.
	replay bool
}

// New starts a controller in the splash phase.
func New(st State) *Controller {
	if st.Theme == "" {
		st.Theme = store.ThemeDark
	}
	return &Controller{phase: PhaseSplash, page: PageHome, state: st}
}

func (c *Controller) Phase() Phase               { return c.phase }
func (c *Controller) Page() Page                 { return c.page }
func (c *Controller) PracticeMode() PracticeMode { return c.practice }
func (c *Controller) User() *store.User          { return c.state.User }
func (c *Controller) Theme() store.Theme         { return c.state.Theme }
func (c *Controller) WelcomeSeen() bool          { return c.state.WelcomeSeen }
func (c *Controller) OnboardingDone() bool       { return c.state.OnboardingDone }

// afterStartup picks the first phase past splash/onboarding.
func (c *Controller) afterStartup() Phase {
	if !c.state.OnboardingDone {
		return PhaseOnboarding
	}
	if c.state.User == nil {
		return PhaseAuth
	}
	return PhaseMain
}

// Handle applies an intent. It reports whether msg was an intent and which
// effects the caller must persist.
func (c *Controller) Handle(msg any) (effects []Effect, handled bool) {
	switch msg := msg.(type) {
	case SplashDoneMsg:
		if c.phase == PhaseSplash {
			c.phase = c.afterStartup()
		}

	case OnboardingDoneMsg:
		if c.phase != PhaseOnboarding {
			return nil, true
		}
		if !c.state.OnboardingDone {
			c.state.OnboardingDone = true
			effects = append(effects, Effect{Kind: SaveOnboardingDone})
		}
		if c.replay {
			c.replay = false
			c.phase = PhaseMain
		} else {
			c.phase = c.afterStartup()
		}

	case ShowOnboardingMsg:
		if c.phase == PhaseMain {
			c.replay = true
			c.phase = PhaseOnboarding
		}

	case LoggedInMsg:
		u := msg.User
		c.state.User = &u
		effects = append(effects, Effect{Kind: SaveUser, User: u})
		if c.phase == PhaseAuth {
			c.phase = PhaseMain
			c.page = PageHome
			c.practice = PracticeMenu
		}

	case LogoutMsg:
		c.state.User = nil
		c.phase = PhaseAuth
		c.page = PageHome
		c.practice = PracticeMenu
		effects = append(effects, Effect{Kind: ClearUser})

	case NavigateMsg:
		if c.phase == PhaseMain && msg.Page != c.page {
			c.page = msg.Page
			c.practice = PracticeMenu
		}

	case ThemeChangedMsg:
		if msg.Theme != c.state.Theme {
			c.state.Theme = msg.Theme
			effects = append(effects, Effect{Kind: SaveTheme, Theme: msg.Theme})
		}

	case StartPracticeMsg:
		if c.phase == PhaseMain {
			c.page = PagePractice
			c.practice = msg.Mode
		}

	case EndPracticeMsg:
		c.practice = PracticeMenu

	case WelcomeSeenMsg:
		if !c.state.WelcomeSeen {
			c.state.WelcomeSeen = true
			effects = append(effects, Effect{Kind: SaveWelcomeSeen})
		}

	default:
		return nil, false
	}
	return effects, true
}
