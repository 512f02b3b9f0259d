package help

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/router"
	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/ui/components"
	"github.com/abhisek/wegbereiter/internal/ui/layout"
	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

// Global are the keys that work on every screen.
var Global = []layout.KeyHint{
	{Key: "?", Description: "Hilfe"},
	{Key: "Esc", Description: "Zurück"},
	{Key: "Ctrl+C", Description: "Beenden"},
}

var closeKey = key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("Esc", "Schließen"))

// HelpScreen is an overlay listing the keys of the screen below it.
type HelpScreen struct {
	title string
	hints []layout.KeyHint
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates the overlay for the screen named title with its hints.
func New(title string, hints []layout.KeyHint) *HelpScreen {
	return &HelpScreen{title: title, hints: hints}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "Hilfe"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return screen.Hints(closeKey)
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, closeKey) {
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	if h.title != "" && len(h.hints) > 0 {
		b.WriteString(theme.Subtitle.Render(h.title))
		b.WriteString("\n")
		writeHints(&b, h.hints)
		b.WriteString("\n")
	}
	b.WriteString(theme.Subtitle.Render("Überall"))
	b.WriteString("\n")
	writeHints(&b, Global)

	content := theme.Title.Render("Tastenkürzel") + "\n\n" +
		components.Card(strings.TrimRight(b.String(), "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func writeHints(b *strings.Builder, hints []layout.KeyHint) {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(10)
	for _, hint := range hints {
		b.WriteString(keyStyle.Render(hint.Key))
		b.WriteString(theme.Body.Render(hint.Description))
		b.WriteString("\n")
	}
}
