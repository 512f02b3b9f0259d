package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

const bannerArt = `╦ ╦╔═╗╔═╗╔╗ ╔═╗╦═╗╔═╗╦╔╦╗╔═╗╦═╗
║║║║╣ ║ ╦╠╩╗║╣ ╠╦╝║╣ ║ ║ ║╣ ╠╦╝
╚╩╝╚═╝╚═╝╚═╝╚═╝╩╚═╚═╝╩ ╩ ╚═╝╩╚═`

const bannerCompact = "W E G B E R E I T E R"

// RenderBanner returns the app banner with the "Digitaler" kicker above it.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	kicker := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("D I G I T A L E R")

	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := bannerArt
	if width < 40 {
		art = bannerCompact
	}
	return lipgloss.JoinVertical(lipgloss.Center, kicker, style.Render(art))
}
