package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for page sections so
// boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Panel wraps content in a rounded-border box at the given width.
func Panel(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Padding(0, 1).
		Render(content)
}

// ItemCard renders one Person, Action or Object card. An unresolved card is
// drawn dim with its value shown as "unknown".
func ItemCard(label, number, value string, resolved bool, width int) string {
	border := theme.Border
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if resolved {
		border = theme.Primary
		valueStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	}

	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label)
	if number != "" {
		head += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  #" + number)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		Align(lipgloss.Center).
		Render(head + "\n\n" + valueStyle.Render(value))
}

// StatusLine renders a one-line message; isErr picks the error color.
func StatusLine(msg string, isErr bool) string {
	if msg == "" {
		return ""
	}
	if isErr {
		return theme.Incorrect.Render("✗ " + msg)
	}
	return theme.Correct.Render("✓ " + msg)
}
