package lesson

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wegbereiter/internal/content"
	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/session"
	"github.com/abhisek/wegbereiter/internal/ui/components"
	"github.com/abhisek/wegbereiter/internal/ui/layout"
	"github.com/abhisek/wegbereiter/internal/ui/theme"
)

const (
	flashInterval = 120 * time.Millisecond
	flashFrames   = 6
)

// Quiz is the part of the session controller the lesson screen drives.
type Quiz interface {
	State() session.State
	SubmitAnswer(a session.Answer) bool
	Advance() bool
}

// flashMsg advances the feedback animation started for one evaluation.
type flashMsg struct {
	token uint64
}

type keyMap struct {
	Move  key.Binding
	Pick  key.Binding
	Yes   key.Binding
	No    key.Binding
	Enter key.Binding
	Next  key.Binding
}

var keys = keyMap{
	Move:  key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←→", "Auswählen")),
	Pick:  key.NewBinding(key.WithKeys("1", "2"), key.WithHelp("1/2", "Antworten")),
	Yes:   key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Richtig")),
	No:    key.NewBinding(key.WithKeys("f"), key.WithHelp("F", "Falsch")),
	Enter: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Antworten")),
	Next:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Weiter")),
}

// LessonScreen shows the current exercise, takes the answer and shows the
// feedback until the learner moves on.
type LessonScreen struct {
	quiz    Quiz
	choices components.ButtonRow

	// Feedback animation, restarted for every new token.
	flashToken uint64
	flashLeft  int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates the lesson screen for the controller's current lesson.
func New(quiz Quiz) *LessonScreen {
	s := &LessonScreen{quiz: quiz}
	s.resetChoices(quiz.State())
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	if l := s.quiz.State().Lesson; l != nil {
		return l.Title
	}
	return ""
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	st := s.quiz.State()
	if st.Answered {
		return screen.Hints(keys.Next)
	}
	if _, ok := st.Exercise.(content.Identify); ok {
		return screen.Hints(keys.Move, keys.Enter, keys.Yes, keys.No)
	}
	return screen.Hints(keys.Move, keys.Enter, keys.Pick)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flashMsg:
		// Ticks of an older evaluation are dropped.
		if msg.token != s.flashToken || s.flashLeft == 0 {
			return s, nil
		}
		s.flashLeft--
		if s.flashLeft > 0 {
			return s, flash(msg.token)
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	st := s.quiz.State()

	if st.Answered {
		if key.Matches(msg, keys.Next) && s.quiz.Advance() {
			s.flashLeft = 0
			s.resetChoices(s.quiz.State())
		}
		return s, nil
	}

	_, identify := st.Exercise.(content.Identify)
	switch {
	case key.Matches(msg, keys.Move):
		switch msg.String() {
		case "left", "h":
			s.choices = s.choices.Left()
		default:
			s.choices = s.choices.Right()
		}
	case key.Matches(msg, keys.Enter):
		return s, s.submit(st, s.choices.Selected)
	case key.Matches(msg, keys.Pick):
		return s, s.submit(st, int(msg.String()[0]-'1'))
	case identify && key.Matches(msg, keys.Yes):
		return s, s.submit(st, 0)
	case identify && key.Matches(msg, keys.No):
		return s, s.submit(st, 1)
	}
	return s, nil
}

// submit answers with the button at index i and starts the feedback flash.
func (s *LessonScreen) submit(st session.State, i int) tea.Cmd {
	a := answerAt(st.Exercise, i)
	if a == nil {
		return nil
	}
	s.choices.Selected = i
	if !s.quiz.SubmitAnswer(a) {
		return nil
	}
	fb := s.quiz.State().Feedback
	if fb == nil {
		return nil
	}
	s.flashToken = fb.Token
	s.flashLeft = flashFrames
	return flash(fb.Token)
}

func flash(token uint64) tea.Cmd {
	return tea.Tick(flashInterval, func(time.Time) tea.Msg {
		return flashMsg{token: token}
	})
}

// answerAt maps the i-th button of ex to an answer.
func answerAt(ex content.Exercise, i int) session.Answer {
	if i < 0 || i > 1 {
		return nil
	}
	switch e := ex.(type) {
	case content.Identify:
		return session.Claim(i == 0)
	case content.Complete:
		return session.Choice(e.Options[i])
	}
	return nil
}

func (s *LessonScreen) resetChoices(st session.State) {
	switch e := st.Exercise.(type) {
	case content.Identify:
		s.choices = components.NewButtonRow("Richtig", "Falsch")
	case content.Complete:
		s.choices = components.NewButtonRow(e.Options[0], e.Options[1])
	default:
		s.choices = components.NewButtonRow()
	}
}

func (s *LessonScreen) View(width, height int) string {
	st := s.quiz.State()
	if st.Screen != session.ScreenLesson || st.Lesson == nil || st.Exercise == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	// Short terminals drop the blank spacer lines.
	gap := []string{""}
	if layout.IsCompactHeight(height) {
		gap = nil
	}

	var sections []string
	sections = append(sections,
		center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(st.Lesson.Title)),
		center(theme.Title.Render(fmt.Sprintf("Frage %d / %d", st.ExerciseIndex+1, st.Total()))),
		center(components.NewProgressBar("", st.Progress(), false, cw).View()),
	)
	sections = append(sections, gap...)

	card := s.renderExercise(st.Exercise, cw-6)
	if s.flashLeft > 0 && st.Feedback != nil {
		card = renderFlash(*st.Feedback, s.flashLeft) + "\n\n" + card
	}
	sections = append(sections, center(components.Card(card, cw)))
	sections = append(sections, gap...)

	row := s.choices
	row.Disabled = st.Answered
	sections = append(sections, center(row.View()))

	if st.Answered && st.Feedback != nil {
		sections = append(sections, gap...)
		sections = append(sections, center(renderFeedback(*st.Feedback, st.Exercise)))
		sections = append(sections, gap...)
		sections = append(sections, center(components.Button("Weiter", true, false)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

func (s *LessonScreen) renderExercise(ex content.Exercise, w int) string {
	sentence := theme.Body.Width(w).Align(lipgloss.Center)
	switch e := ex.(type) {
	case content.Identify:
		word := theme.Emphasis.Render(spaced(e.Word))
		return sentence.Render(e.Masked()) + "\n\n" + word
	case content.Complete:
		before, after := e.Parts()
		return sentence.Render(before + theme.Blank.Render("    ") + after)
	}
	return ""
}

// spaced letter-spaces a word for emphasis.
func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}

func renderFlash(fb session.Feedback, left int) string {
	mark, style := "✓", theme.Correct
	if !fb.Correct() {
		mark, style = "✗", theme.Incorrect
	}
	// Pulse by alternating the mark's weight.
	if left%2 == 0 {
		style = style.Bold(false)
	}
	return style.Render(mark + "  " + mark + "  " + mark)
}

func renderFeedback(fb session.Feedback, ex content.Exercise) string {
	if fb.Correct() {
		return theme.Correct.Render(praiseText)
	}
	return theme.Incorrect.Render(correctionText + CorrectAnswerText(ex))
}
