package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/ui/theme"
)

// Button is a pressable label. Enter or space presses it while it has
// focus; its shortcut key presses it at any time.
type Button struct {
	Label    string
	Shortcut string
	OnPress  func() tea.Cmd
}

func NewButton(label, shortcut string, onPress func() tea.Cmd) Button {
	return Button{Label: label, Shortcut: shortcut, OnPress: onPress}
}

func (b Button) view(focused bool) string {
	label := b.Label
	if b.Shortcut != "" {
		label += " (" + strings.ToUpper(b.Shortcut) + ")"
	}
	if focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render("  " + label)
}

// ButtonRow lays buttons out side by side with one of them focused.
type ButtonRow struct {
	buttons []Button
	focus   int
}

// NewButtonRow focuses the first button.
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{buttons: buttons}
}

// Focused returns the index of the focused button.
func (r ButtonRow) Focused() int { return r.focus }

func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.buttons) == 0 {
		return r, nil
	}
	key := kmsg.String()
	switch key {
	case "left", "h", "shift+tab":
		r.focus = (r.focus + len(r.buttons) - 1) % len(r.buttons)
		return r, nil
	case "right", "l", "tab":
		r.focus = (r.focus + 1) % len(r.buttons)
		return r, nil
	case "enter", "space":
		return r, r.press(r.focus)
	}
	for i, b := range r.buttons {
		if b.Shortcut != "" && key == b.Shortcut {
			r.focus = i
			return r, r.press(i)
		}
	}
	return r, nil
}

func (r ButtonRow) press(i int) tea.Cmd {
	if r.buttons[i].OnPress == nil {
		return nil
	}
	return r.buttons[i].OnPress()
}

func (r ButtonRow) View() string {
	cells := make([]string, 0, len(r.buttons)*2)
	for i, b := range r.buttons {
		if i > 0 {
			cells = append(cells, "  ")
		}
		cells = append(cells, b.view(i == r.focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
