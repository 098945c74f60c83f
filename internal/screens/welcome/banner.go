package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calmly/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██╗     ███╗   ███╗██╗  ██╗   ██╗
 ██╔════╝██╔══██╗██║     ████╗ ████║██║  ╚██╗ ██╔╝
 ██║     ███████║██║     ██╔████╔██║██║   ╚████╔╝
 ██║     ██╔══██║██║     ██║╚██╔╝██║██║    ╚██╔╝
 ╚██████╗██║  ██║███████╗██║ ╚═╝ ██║███████╗██║
  ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚══════╝╚═╝`

const bannerCompact = "c a l m l y"

// RenderBanner returns the banner in the primary color, with a compact
// fallback below 54 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
