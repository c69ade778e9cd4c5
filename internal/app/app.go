package app

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/flow"
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
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

// StatePersister records the flow state that must survive a restart.
// *store.Store implements it.
type StatePersister interface {
	SetOnboardingDone(ctx context.Context, done bool) error
	SetWelcomeSeen(ctx context.Context, seen bool) error
	SetUser(ctx context.Context, u store.User) error
	ClearUser(ctx context.Context) error
	SetTheme(ctx context.Context, t store.Theme) error
}

// Options configures the root model.
type Options struct {
	Deps    screen.Deps
	State   flow.State
	Persist StatePersister

	// SkipSplash starts past the intro animation.
	SkipSplash bool
}

// view identifies what the router is showing. A change of view drops the
// whole stack.
type view struct {
	phase flow.Phase
	page  flow.Page
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	deps    screen.Deps
	persist StatePersister
	ctrl    *flow.Controller
	router  *router.Router
	showing view
	width   int
	height  int
}

// New builds the root model from the saved state.
func New(ctx context.Context, opts Options) AppModel {
	ctrl := flow.New(opts.State)
	theme.SetMode(theme.Mode(ctrl.Theme()))
	if opts.SkipSplash {
		ctrl.Handle(flow.SplashDoneMsg{})
	}
	m := AppModel{
		ctx:     ctx,
		deps:    opts.Deps,
		persist: opts.Persist,
		ctrl:    ctrl,
	}
	m.showing = m.current()
	m.router = router.New(m.build(m.showing))
	return m
}

func (m AppModel) current() view {
	return view{phase: m.ctrl.Phase(), page: m.ctrl.Page()}
}

// build creates the root screen for v.
func (m AppModel) build(v view) screen.Screen {
	switch v.phase {
	case flow.PhaseSplash:
		return splash.New()
	case flow.PhaseOnboarding:
		return onboarding.New(m.deps)
	case flow.PhaseAuth:
		return auth.New(m.deps)
	}
	switch v.page {
	case flow.PageCreate:
		return create.New(m.deps)
	case flow.PagePractice:
		return practice.NewMenu(m.deps)
	case flow.PageSettings:
		return settings.New(m.deps, m.ctrl.Theme())
	case flow.PageProfile:
		return profile.New(m.deps, m.ctrl.User())
	}
	return home.New(m.deps, m.ctrl.User(), !m.ctrl.WelcomeSeen())
}

// Controller exposes the flow state, mostly for tests.
func (m AppModel) Controller() *flow.Controller { return m.ctrl }

// Active returns the screen on top of the stack.
func (m AppModel) Active() screen.Screen { return m.router.Active() }

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			m.router.Close()
			return m, tea.Quit
		}
		if key == "esc" && m.router.Depth() > 1 && !m.capturing() {
			return m, m.afterRoute(m.router.Pop())
		}
		if m.ctrl.Phase() == flow.PhaseMain && m.router.Depth() == 1 {
			if page, ok := navKey(key, m.capturing()); ok {
				next, cmd, _ := m.handleIntent(flow.NavigateMsg{Page: page})
				return next, cmd
			}
		}

	case flow.DataChangedMsg:
		return m, m.router.Broadcast(msg)
	}

	if next, cmd, ok := m.handleIntent(msg); ok {
		return next, cmd
	}
	return m, m.afterRoute(m.router.Update(msg))
}

// handleIntent runs msg through the controller, persists what it asks for
// and swaps the stack when the visible page changed. ok is false when msg
// is not a flow intent.
func (m AppModel) handleIntent(msg tea.Msg) (next AppModel, cmd tea.Cmd, ok bool) {
	effects, ok := m.ctrl.Handle(msg)
	if !ok {
		return m, nil, false
	}
	m.apply(effects)

	if t, ok := msg.(flow.ThemeChangedMsg); ok {
		theme.SetMode(theme.Mode(t.Theme))
	}

	v := m.current()
	if v == m.showing {
		return m, nil, true
	}
	m.deps.Logger().Debug("view changed",
		zap.Stringer("phase", v.phase),
		zap.String("page", v.page.Label()))
	m.router.Close()
	m.showing = v
	m.router = router.New(m.build(v))
	return m, m.router.Active().Init(), true
}

// afterRoute ends the practice mode once its screen has left the stack.
func (m AppModel) afterRoute(cmd tea.Cmd) tea.Cmd {
	if m.showing.page == flow.PagePractice && m.router.Depth() == 1 &&
		m.ctrl.PracticeMode() != flow.PracticeMenu {
		m.ctrl.Handle(flow.EndPracticeMsg{})
	}
	return cmd
}

func (m AppModel) apply(effects []flow.Effect) {
	if m.persist == nil {
		return
	}
	for _, e := range effects {
		var err error
		switch e.Kind {
		case flow.SaveOnboardingDone:
			err = m.persist.SetOnboardingDone(m.ctx, true)
		case flow.SaveWelcomeSeen:
			err = m.persist.SetWelcomeSeen(m.ctx, true)
		case flow.SaveUser:
			err = m.persist.SetUser(m.ctx, e.User)
		case flow.ClearUser:
			err = m.persist.ClearUser(m.ctx)
		case flow.SaveTheme:
			err = m.persist.SetTheme(m.ctx, e.Theme)
		}
		if err != nil {
			m.deps.Logger().Error("persist flow state", zap.Int("effect", int(e.Kind)), zap.Error(err))
		}
	}
}

// navKey maps "f1".."f5", and "1".."5" unless a text field has focus, to
// the navigation pages.
func navKey(key string, capturing bool) (flow.Page, bool) {
	if rest, ok := strings.CutPrefix(key, "f"); ok {
		key = rest
	} else if capturing {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	pages := flow.Pages()
	if err != nil || n < 1 || n > len(pages) {
		return 0, false
	}
	return pages[n-1], true
}

func (m AppModel) navItems() []layout.NavItem {
	var items []layout.NavItem
	for i, p := range flow.Pages() {
		items = append(items, layout.NavItem{Key: strconv.Itoa(i + 1), Label: p.Label()})
	}
	return items
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 && !m.capturing() && !slices.ContainsFunc(hints, func(h layout.KeyHint) bool { return h.Key == "Esc" }) {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	if m.ctrl.Phase() == flow.PhaseMain && m.router.Depth() == 1 {
		if m.capturing() {
			hints = append(hints, layout.KeyHint{Key: "F1-F5", Description: "Pages"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "1-5", Description: "Pages"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the current frame as plain text.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	// the splash owns the whole window
	if m.ctrl.Phase() == flow.PhaseSplash {
		return m.router.View(m.width, m.height)
	}

	title := m.router.Active().Title()
	user := ""
	if u := m.ctrl.User(); u != nil {
		user = u.Name
	}
	header := layout.RenderHeader(title, user, m.width)

	footer := layout.RenderFooter(m.footerHints(), m.width)
	if m.ctrl.Phase() == flow.PhaseMain {
		active := 0
		for i, p := range flow.Pages() {
			if p == m.ctrl.Page() {
				active = i
			}
		}
		footer = layout.RenderNav(m.navItems(), active, m.width) + "\n" + footer
	}

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
