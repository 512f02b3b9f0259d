package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

// Button renders a single labelled button.
func Button(label string, selected, disabled bool) string {
	switch {
	case disabled:
		return theme.ButtonInactive.
			Foreground(theme.TextDim).
			BorderForeground(theme.BgCard).
			Render(label)
	case selected:
		return theme.ButtonActive.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Render("▸ " + label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}

// ButtonRow is a horizontal row of buttons with one selected.
type ButtonRow struct {
	Labels   []string
	Selected int
	Disabled bool
}

// NewButtonRow creates a row with the first button selected.
func NewButtonRow(labels ...string) ButtonRow {
	return ButtonRow{Labels: labels}
}

// Left moves the selection one button to the left.
func (r ButtonRow) Left() ButtonRow {
	if r.Selected > 0 {
		r.Selected--
	}
	return r
}

// Right moves the selection one button to the right.
func (r ButtonRow) Right() ButtonRow {
	if r.Selected < len(r.Labels)-1 {
		r.Selected++
	}
	return r
}

// View renders the row, buttons separated by two spaces.
func (r ButtonRow) View() string {
	buttons := make([]string, 0, len(r.Labels)*2)
	for i, l := range r.Labels {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, Button(l, !r.Disabled && i == r.Selected, r.Disabled))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
