package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/session"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// registry returns a router whose factories record every screen they build.
func registry() (*Router, map[session.Screen][]*stubScreen) {
	built := make(map[session.Screen][]*stubScreen)
	factories := make(map[session.Screen]Factory)
	for _, tag := range []session.Screen{session.ScreenStart, session.ScreenMap, session.ScreenLesson} {
		factories[tag] = func() screen.Screen {
			s := &stubScreen{title: tag.String()}
			built[tag] = append(built[tag], s)
			return s
		}
	}
	return New(factories), built
}

func TestSync_ActivatesScreenForTag(t *testing.T) {
	r, built := registry()

	r.Sync(session.ScreenStart)

	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "start" {
		t.Errorf("expected active 'start', got %q", r.Active().Title())
	}
	if !built[session.ScreenStart][0].initRan {
		t.Error("expected Init() to run on entered screen")
	}
	if r.Tag() != session.ScreenStart {
		t.Errorf("Tag = %v", r.Tag())
	}
}

func TestSync_SameTagKeepsScreen(t *testing.T) {
	r, built := registry()

	r.Sync(session.ScreenMap)
	r.Sync(session.ScreenMap)

	if len(built[session.ScreenMap]) != 1 {
		t.Errorf("factory called %d times, want 1", len(built[session.ScreenMap]))
	}
}

func TestSync_NewTagBuildsFreshScreen(t *testing.T) {
	r, built := registry()

	r.Sync(session.ScreenLesson)
	r.Sync(session.ScreenMap)
	r.Sync(session.ScreenLesson)

	if len(built[session.ScreenLesson]) != 2 {
		t.Fatalf("factory called %d times, want 2", len(built[session.ScreenLesson]))
	}
	if r.Active() != screen.Screen(built[session.ScreenLesson][1]) {
		t.Error("expected the second lesson screen to be active")
	}
}

func TestSync_UnknownTagIsIgnored(t *testing.T) {
	r, _ := registry()
	r.Sync(session.ScreenStart)

	r.Sync(session.ScreenSummary)

	if r.Active().Title() != "start" {
		t.Errorf("expected active 'start', got %q", r.Active().Title())
	}
	if r.Tag() != session.ScreenStart {
		t.Errorf("Tag = %v, want start", r.Tag())
	}
}

func TestSync_DropsOverlays(t *testing.T) {
	r, _ := registry()
	r.Sync(session.ScreenStart)
	r.Push(&stubScreen{title: "help"})

	r.Sync(session.ScreenMap)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

func TestPush(t *testing.T) {
	r, _ := registry()
	r.Sync(session.ScreenStart)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r, _ := registry()
	r.Sync(session.ScreenStart)
	r.Push(&stubScreen{title: "second"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "start" {
		t.Errorf("expected active 'start', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r, _ := registry()
	r.Sync(session.ScreenStart)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestNavigationMessages(t *testing.T) {
	r, built := registry()
	r.Sync(session.ScreenStart)

	overlay := &stubScreen{title: "overlay"}
	r.Update(PushScreenMsg{Screen: overlay})
	if r.Active() != screen.Screen(overlay) {
		t.Fatal("expected overlay to be active after PushScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "start" {
		t.Errorf("expected active 'start' after PopScreenMsg, got %q", r.Active().Title())
	}
	if built[session.ScreenStart][0].updates != 0 {
		t.Error("navigation messages must not reach screens")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, built := registry()
	r.Sync(session.ScreenStart)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if built[session.ScreenStart][0].updates != 1 {
		t.Errorf("updates = %d, want 1", built[session.ScreenStart][0].updates)
	}
}

func TestEmptyRouter(t *testing.T) {
	r := New(nil)
	if r.Active() != nil {
		t.Error("expected nil active screen")
	}
	if r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) != nil {
		t.Error("expected nil command")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view")
	}
}
