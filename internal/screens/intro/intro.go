package intro

import (
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

// NoExamplesText is shown for lessons without example categories.
const NoExamplesText = "Für diese Lektion gibt es keine speziellen Beispiele. Auf geht's!"

// Starter begins the exercises of the selected lesson.
type Starter interface {
	StartExercises() bool
}

type keyMap struct {
	Start  key.Binding
	Scroll key.Binding
}

var keys = keyMap{
	Start:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Übungen starten")),
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "Blättern")),
}

// IntroScreen presents a lesson's rules and examples before the exercises.
type IntroScreen struct {
	quiz   Starter
	lesson content.Lesson
	offset int
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates the intro for lesson.
func New(quiz Starter, lesson content.Lesson) *IntroScreen {
	return &IntroScreen{quiz: quiz, lesson: lesson}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return s.lesson.Title
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return screen.Hints(keys.Scroll, keys.Start)
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Start):
		s.quiz.StartExercises()
	case key.Matches(kmsg, keys.Scroll):
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		default:
			s.offset++
		}
	}
	return s, nil
}

func (s *IntroScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	head := components.Heading(s.lesson.Title, s.lesson.Description, width)
	button := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Button("Übungen starten", true, false))

	body := s.renderExamples(cw - 6)
	lines := strings.Split(body, "\n")

	// Scroll the examples so heading and button always stay visible.
	avail := height - lipgloss.Height(head) - lipgloss.Height(button) - 6
	if avail < 3 {
		avail = 3
	}
	if limit := max(len(lines)-avail, 0); s.offset > limit {
		s.offset = limit
	}
	if len(lines) > avail {
		lines = lines[s.offset : s.offset+avail]
	}
	card := components.Card(strings.Join(lines, "\n"), cw)

	content := head + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n\n" +
		button
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *IntroScreen) renderExamples(w int) string {
	if len(s.lesson.ExampleCategories) == 0 {
		return theme.Subtitle.Width(w).Render(NoExamplesText)
	}

	wordStyle := theme.Emphasis.Width(12)
	explStyle := theme.Body.Width(max(w-14, 10))

	var b strings.Builder
	for i, cat := range s.lesson.ExampleCategories {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(cat.Title))
		for _, ex := range cat.Examples {
			b.WriteString("\n")
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				wordStyle.Render(ex.Word), "  ", explStyle.Render(ex.Explanation)))
		}
	}
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Left).Render(b.String())
}
