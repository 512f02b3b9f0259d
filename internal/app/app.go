package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wegbereiter/internal/content"
	"github.com/abhisek/wegbereiter/internal/router"
	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/screens/help"
	"github.com/abhisek/wegbereiter/internal/screens/intro"
	"github.com/abhisek/wegbereiter/internal/screens/lesson"
	"github.com/abhisek/wegbereiter/internal/screens/lessonmap"
	"github.com/abhisek/wegbereiter/internal/screens/summary"
	"github.com/abhisek/wegbereiter/internal/screens/welcome"
	"github.com/abhisek/wegbereiter/internal/session"
	"github.com/abhisek/wegbereiter/internal/store"
	"github.com/abhisek/wegbereiter/internal/ui/layout"
)

// Options holds dependencies for the application.
type Options struct {
	Catalog   *content.Catalog // nil uses the built-in lessons
	EventRepo store.EventRepo  // nil disables history
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model. It owns the quiz controller and
// shows the screen registered for the controller's current screen tag.
type AppModel struct {
	catalog  *content.Catalog
	quiz     *session.Controller
	router   *router.Router
	recorder *Recorder
	logger   *zap.Logger

	best   map[string]int
	width  int
	height int
}

// newAppModel wires the controller, the screen registry and the recorder.
func newAppModel(opts Options) *AppModel {
	m := &AppModel{
		catalog: opts.Catalog,
		logger:  opts.Logger,
		best:    map[string]int{},
	}
	if m.catalog == nil {
		m.catalog = content.Default()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	m.quiz = session.New(m.catalog, session.WithLogger(m.logger))
	m.recorder = NewRecorder(opts.EventRepo, m.logger)
	m.recorder.Attach(m.quiz)

	m.router = router.New(map[session.Screen]router.Factory{
		session.ScreenStart: func() screen.Screen { return welcome.New(m.quiz) },
		session.ScreenMap:   m.newLessonMap,
		session.ScreenLessonIntro: func() screen.Screen {
			l, _ := m.quiz.Lesson()
			return intro.New(m.quiz, l)
		},
		session.ScreenLesson:  func() screen.Screen { return lesson.New(m.quiz) },
		session.ScreenSummary: func() screen.Screen { return summary.New(m.quiz) },
	})
	return m
}

func (m *AppModel) newLessonMap() screen.Screen {
	return m.lessonMap()
}

func (m *AppModel) lessonMap() *lessonmap.LessonMapScreen {
	return lessonmap.New(m.quiz, m.catalog.Lessons(), m.best)
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Sync(m.quiz.Screen()), m.recorder.LoadBest())
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bestScoresMsg:
		m.best = msg.best
		// Rebuild the map so the scores show up, unless an overlay is open.
		if m.router.Tag() == session.ScreenMap && m.router.Depth() == 1 {
			next := m.lessonMap()
			if prev, ok := m.router.Active().(*lessonmap.LessonMapScreen); ok {
				next.Select(prev.Selected())
			}
			return m, m.router.Replace(next)
		}
		return m, nil

	case historySavedMsg:
		if msg.failed > 0 {
			m.logger.Debug("history writes dropped", zap.Int("failed", msg.failed))
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?":
			if m.router.Depth() == 1 {
				return m, m.router.Push(m.helpFor(m.router.Active()))
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, m.router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.router.Sync(m.quiz.Screen()), m.recorder.Flush())
}

func (m *AppModel) helpFor(s screen.Screen) screen.Screen {
	if s == nil {
		return help.New("", nil)
	}
	var hints []layout.KeyHint
	if p, ok := s.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	return help.New(s.Title(), hints)
}

func (m *AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() == 1 {
		hints = append(hints, layout.KeyHint{Key: "?", Description: "Hilfe"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Beenden"})
}

func (m *AppModel) status() layout.Status {
	st := m.quiz.State()
	switch st.Screen {
	case session.ScreenLesson, session.ScreenSummary:
		return layout.Status{Score: st.Score, Total: st.Total()}
	}
	return layout.Status{}
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m *AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
