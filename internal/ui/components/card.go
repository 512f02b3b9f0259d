package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so stacked
// boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(content)
}

// Heading renders a centered screen heading with an optional subtitle.
func Heading(title, subtitle string, width int) string {
	s := lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Title.Render(title))
	if subtitle != "" {
		s += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Width(min(width, 72)).Render(subtitle))
	}
	return s
}
