package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	taglineAt    = 1200 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// the three slots light up one after another while the banner fades in
var slotFrames = []string{"Person", "Action", "Object"}

// SplashScreen plays a short intro and then announces SplashDoneMsg. Any key
// skips ahead.
type SplashScreen struct {
	ticker  *components.Ticker
	elapsed time.Duration
	done    bool
}

var _ screen.Screen = (*SplashScreen)(nil)
var _ screen.Disposer = (*SplashScreen)(nil)

func New() *SplashScreen {
	return &SplashScreen{ticker: components.NewTicker(tickInterval)}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return s.ticker.Start()
}

func (s *SplashScreen) Dispose() {
	s.ticker.Stop()
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TickMsg:
		if !s.ticker.Owns(msg) {
			return s, nil
		}
		s.elapsed += tickInterval
		if s.elapsed >= totalDur {
			return s, s.finish()
		}
		return s, s.ticker.Next()

	case tea.KeyPressMsg:
		return s, s.finish()
	}
	return s, nil
}

func (s *SplashScreen) finish() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	s.ticker.Stop()
	return func() tea.Msg { return flow.SplashDoneMsg{} }
}

func (s *SplashScreen) View(width, height int) string {
	var sections []string

	lit := min(int(s.elapsed/(bannerAt/2)), len(slotFrames))
	var slots []string
	for i, label := range slotFrames {
		style := lipgloss.NewStyle().Foreground(theme.Border)
		if i < lit {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		slots = append(slots, style.Render(label))
	}
	sections = append(sections, strings.Join(slots, "  ·  "))

	if s.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width))
	}

	if s.elapsed >= taglineAt {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Turn numbers into stories."),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
