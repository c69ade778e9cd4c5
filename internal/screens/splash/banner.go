package splash

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/paomind/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗  ██████╗
 ██╔══██╗██╔══██╗██╔═══██╗
 ██████╔╝███████║██║   ██║
 ██╔═══╝ ██╔══██║██║   ██║
 ██║     ██║  ██║╚██████╔╝
 ╚═╝     ╚═╝  ╚═╝ ╚═════╝`

const bannerCompact = "P  A  O"

// RenderBanner returns the PAO banner in the primary color, or a one-line
// fallback below 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
