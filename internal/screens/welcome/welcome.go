package welcome

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/ui/components"
	"github.com/abhisek/wegbereiter/internal/ui/layout"
	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const rocketArt = `    /\
   /  \
  | ◉◉ |
  |    |
 /|    |\
/_|____|_\
   ^^^^`

// Trail frames cycle below the rocket.
var trailFrames = []string{"✦ · ✦", "· ✦ ·"}

type tickMsg time.Time

// Starter leaves the start screen.
type Starter interface {
	Start() bool
}

type keyMap struct {
	Start key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Expedition starten")),
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Beenden")),
}

// WelcomeScreen shows an animated splash with the start button.
type WelcomeScreen struct {
	quiz      Starter
	elapsed   time.Duration
	tickCount int
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that starts the expedition on quiz.
func New(quiz Starter) *WelcomeScreen {
	return &WelcomeScreen{quiz: quiz}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return screen.Hints(keys.Start, keys.Quit)
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Start):
			// A key press during the animation starts right away.
			w.elapsed = totalDur
			w.quiz.Start()
			return w, nil
		case key.Matches(msg, keys.Quit):
			return w, tea.Quit
		}
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rocket := lipgloss.NewStyle().Foreground(theme.Primary).Render(rocketArt)
	sections = append(sections, rocket)

	// Phase 2+: twinkling trail
	if w.elapsed >= phase1End {
		frame := trailFrames[w.tickCount%len(trailFrames)]
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(frame))
	}

	// Phase 3+: banner, tagline and start button
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-4, 60)).
			Align(lipgloss.Center).
			Render("Meistere die deutsche Rechtschreibung auf einer futuristischen Lern-Expedition.")
		sections = append(sections, tagline, "")
		sections = append(sections, components.Button("Expedition starten", true, false))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
