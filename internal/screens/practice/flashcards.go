package practice

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/pao"
	engine "github.com/abhisek/paomind/internal/practice"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

// FlashcardScreen flips through the table one slot at a time.
type FlashcardScreen struct {
	deps screen.Deps
	deck *engine.Deck
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

func NewFlashcards(deps screen.Deps) *FlashcardScreen {
	return &FlashcardScreen{deps: deps, deck: engine.NewDeck(deps.Table, pao.Person)}
}

func (s *FlashcardScreen) Init() tea.Cmd { return nil }

func (s *FlashcardScreen) Title() string { return "Flashcards" }

// Deck exposes the cards being studied.
func (s *FlashcardScreen) Deck() *engine.Deck { return s.deck }

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "P/A/O", Description: "Type"},
		{Key: "X", Description: "Shuffle"},
	}
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "space", "enter", "f":
		s.deck.Flip()
	case "right", "l", "n":
		s.deck.Next()
	case "left", "h":
		s.deck.Prev()
	case "p":
		s.deck.SetKind(pao.Person)
	case "a":
		s.deck.SetKind(pao.Action)
	case "o":
		s.deck.SetKind(pao.Object)
	case "x":
		s.deck.Shuffle(s.deps.Random())
	}
	return s, nil
}

func (s *FlashcardScreen) View(width, height int) string {
	w := min(components.ContentWidth(width), 48)

	var tabs []string
	for _, k := range pao.Kinds() {
		if k == s.deck.Kind() {
			tabs = append(tabs, theme.ButtonActive.Render(k.Label()))
		} else {
			tabs = append(tabs, theme.ButtonInactive.Render(k.Label()))
		}
	}

	n, value, ok := s.deck.Current()
	card := theme.Hint.Render("No cards")
	if ok {
		face := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(pao.FormatNumber(n))
		hint := theme.Hint.Render("press space to flip")
		if s.deck.Flipped() {
			face = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
			hint = theme.Hint.Render(fmt.Sprintf("%s for %s", s.deck.Kind().Label(), pao.FormatNumber(n)))
		}
		card = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Width(w-2).
			Height(7).
			Align(lipgloss.Center, lipgloss.Center).
			Render(face + "\n\n" + hint)
	}

	position := theme.Hint.Render(fmt.Sprintf("%d / %d", s.deck.Position()+1, s.deck.Len()))
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "", card, "", position)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
