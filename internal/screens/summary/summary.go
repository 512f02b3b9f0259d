package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/session"
	"github.com/abhisek/wegbereiter/internal/ui/components"
	"github.com/abhisek/wegbereiter/internal/ui/layout"
	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

// Quiz is the part of the session controller the summary drives.
type Quiz interface {
	State() session.State
	Restart() bool
	BackToMap() bool
}

type keyMap struct {
	Navigate key.Binding
	Select   key.Binding
}

var keys = keyMap{
	Navigate: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "Auswählen")),
	Select:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Bestätigen")),
}

// SummaryScreen shows the result of a finished lesson.
type SummaryScreen struct {
	quiz Quiz
	menu components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary for the controller's finished lesson.
func New(quiz Quiz) *SummaryScreen {
	s := &SummaryScreen{quiz: quiz}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label: "Nochmal versuchen",
			Icon:  "↻",
			Action: func() tea.Cmd {
				s.quiz.Restart()
				return nil
			},
		},
		{
			Label: "Zurück zur Karte",
			Icon:  "◈",
			Action: func() tea.Cmd {
				s.quiz.BackToMap()
				return nil
			},
		},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Ergebnis"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return screen.Hints(keys.Navigate, keys.Select)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.quiz.State()
	cw := components.ContentWidth(width)
	pct := st.Percentage()

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	scoreStyle := theme.Correct
	if pct <= 50 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	result := strings.Join([]string{
		theme.Subtitle.Render("Dein Ergebnis"),
		"",
		scoreStyle.Render(fmt.Sprintf("%d%%", pct)),
		theme.Body.Render(fmt.Sprintf("%d von %d richtig", st.Score, st.Total())),
		"",
		components.NewProgressBar("", float64(pct)/100, false, cw-8).View(),
		"",
		theme.Hint.Render(st.SummaryMessage()),
	}, "\n")
	card := components.Card(
		lipgloss.NewStyle().Width(cw-6).Align(lipgloss.Center).Render(result), cw)

	var sections []string
	sections = append(sections, center(theme.Title.Render("Mission abgeschlossen!")))
	if st.Lesson != nil {
		sections = append(sections, center(theme.Subtitle.Render(st.Lesson.Title)))
	}
	sections = append(sections, "", center(card), "", center(s.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
