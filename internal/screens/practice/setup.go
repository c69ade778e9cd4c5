package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/paomind/internal/pao"
	engine "github.com/abhisek/paomind/internal/practice"
	"github.com/abhisek/paomind/internal/ui/theme"
)

// setting is one adjustable row of a setup form. A setting with Options is
// a choice; otherwise it is a number stepped within [Min, Max].
type setting struct {
	Label   string
	Options []string
	Choice  int
	Value   int
	Min     int
	Max     int
	Step    int
	Format  func(int) string

	// Hidden rows are skipped by navigation and not rendered.
	Hidden func() bool
}

func (s *setting) adjust(delta int) {
	if len(s.Options) > 0 {
		s.Choice = (s.Choice + delta + len(s.Options)) % len(s.Options)
		return
	}
	step := max(s.Step, 1)
	s.Value = min(max(s.Value+delta*step, s.Min), s.Max)
}

func (s *setting) display() string {
	if len(s.Options) > 0 {
		return s.Options[s.Choice]
	}
	if s.Format != nil {
		return s.Format(s.Value)
	}
	return fmt.Sprint(s.Value)
}

// setupForm is the configuration step shared by quiz, sequence and speed.
type setupForm struct {
	settings []*setting
	cursor   int
	err      string
}

func (f *setupForm) visible(i int) bool {
	h := f.settings[i].Hidden
	return h == nil || !h()
}

func (f *setupForm) move(delta int) {
	for i := f.cursor + delta; i >= 0 && i < len(f.settings); i += delta {
		if f.visible(i) {
			f.cursor = i
			return
		}
	}
}

// update handles navigation keys and reports whether enter was pressed.
func (f *setupForm) update(msg tea.KeyMsg) (submit bool) {
	switch msg.String() {
	case "up", "k":
		f.move(-1)
	case "down", "j", "tab":
		f.move(1)
	case "left", "h":
		f.settings[f.cursor].adjust(-1)
		f.err = ""
	case "right", "l":
		f.settings[f.cursor].adjust(1)
		f.err = ""
	case "enter":
		return true
	}
	return false
}

func (f *setupForm) view() string {
	var b strings.Builder
	for i, s := range f.settings {
		if !f.visible(i) {
			continue
		}
		line := fmt.Sprintf("%-18s ‹ %s ›", s.Label, s.display())
		if i == f.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}
	if f.err != "" {
		b.WriteString("\n" + theme.Incorrect.Render(f.err) + "\n")
	}
	b.WriteString("\n" + theme.ButtonActive.Render("Start"))
	return b.String()
}

// rangeSettings returns the rows choosing the number range: all numbers
// or a custom inclusive start and end.
func rangeSettings() (scope, start, end *setting) {
	scope = &setting{Label: "Numbers", Options: []string{"All 00-99", "Custom range"}}
	all := func() bool { return scope.Choice == 0 }
	start = &setting{Label: "Start number", Value: pao.MinNumber, Min: pao.MinNumber, Max: pao.MaxNumber, Format: pao.FormatNumber, Hidden: all}
	end = &setting{Label: "End number", Value: pao.MaxNumber, Min: pao.MinNumber, Max: pao.MaxNumber, Format: pao.FormatNumber, Hidden: all}
	return scope, start, end
}

func numberRange(scope, start, end *setting) engine.Range {
	if scope.Choice == 0 {
		return engine.FullRange()
	}
	return engine.Range{Start: start.Value, End: end.Value}
}

func seconds(n int) string { return fmt.Sprintf("%ds", n) }
