package lessonmap

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/content"
	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/ui/components"
	"github.com/abhisek/wegbereiter/internal/ui/layout"
	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

// Selector opens a lesson by ID.
type Selector interface {
	SelectLesson(id string) bool
}

type keyMap struct {
	Move   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Move:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "Auswählen")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Starten")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Beenden")),
}

// LessonMapScreen lists the lessons of the catalogue.
type LessonMapScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LessonMapScreen)(nil)
var _ screen.KeyHintProvider = (*LessonMapScreen)(nil)

// New creates the lesson map. best maps lesson IDs to the best recorded
// percentage; it may be nil.
func New(quiz Selector, lessons []content.Lesson, best map[string]int) *LessonMapScreen {
	items := make([]components.MenuItem, 0, len(lessons))
	for _, l := range lessons {
		label := l.Title
		if pct, ok := best[l.ID]; ok {
			label = fmt.Sprintf("%s · Bestwert %d%%", label, pct)
		}
		id := l.ID
		items = append(items, components.MenuItem{
			Label:       label,
			Description: l.Description,
			Icon:        components.IconGlyph(l.Icon),
			Action: func() tea.Cmd {
				quiz.SelectLesson(id)
				return nil
			},
		})
	}
	return &LessonMapScreen{menu: components.NewMenu(items)}
}

func (s *LessonMapScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonMapScreen) Title() string {
	return "Missionskarte"
}

func (s *LessonMapScreen) KeyHints() []layout.KeyHint {
	return screen.Hints(keys.Move, keys.Select, keys.Quit)
}

func (s *LessonMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, keys.Quit) {
		return s, tea.Quit
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Selected returns the index of the highlighted lesson.
func (s *LessonMapScreen) Selected() int {
	return s.menu.Selected
}

// Select highlights lesson i, clamped to the list.
func (s *LessonMapScreen) Select(i int) {
	s.menu.Selected = max(0, min(i, len(s.menu.Items)-1))
}

func (s *LessonMapScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(components.Heading("Missionskarte", "Wähle deinen nächsten Lernpfad.", width))
	b.WriteString("\n\n")

	if len(s.menu.Items) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Keine Lektionen vorhanden.")))
		return b.String()
	}

	cw := components.ContentWidth(width)
	menu := lipgloss.NewStyle().Width(cw - 6).Render(strings.TrimRight(s.menu.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(menu, cw)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
