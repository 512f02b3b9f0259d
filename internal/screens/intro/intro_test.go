package intro

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wegbereiter/internal/content"
	"github.com/abhisek/wegbereiter/internal/session"
)

func introFor(t *testing.T, id string) (*IntroScreen, *session.Controller) {
	t.Helper()
	c := session.New(content.Default())
	c.Start()
	if !c.SelectLesson(id) {
		t.Fatalf("select %q failed", id)
	}
	l, _ := c.Lesson()
	return New(c, l), c
}

func TestIntro_Title(t *testing.T) {
	s, c := introFor(t, "lesson1")
	l, _ := c.Lesson()
	if s.Title() != l.Title {
		t.Errorf("Title = %q, want %q", s.Title(), l.Title)
	}
}

func TestIntro_ShowsExamples(t *testing.T) {
	s, c := introFor(t, "lesson1")
	l, _ := c.Lesson()

	view := s.View(100, 60)
	if !strings.Contains(view, l.ExampleCategories[0].Title) {
		t.Errorf("view missing category %q", l.ExampleCategories[0].Title)
	}
	if !strings.Contains(view, "Übungen starten") {
		t.Error("view missing start button")
	}
	if strings.Contains(view, NoExamplesText) {
		t.Error("lesson with examples should not show the fallback text")
	}
}

func TestIntro_NoExamplesFallback(t *testing.T) {
	c := session.New(content.Default())
	s := New(c, content.Lesson{ID: "x", Title: "Leer", Icon: content.IconBook})

	view := s.View(120, 40)
	if !strings.Contains(view, "keine speziellen Beispiele") {
		t.Error("expected no-examples message")
	}
}

func TestIntro_EnterStartsExercises(t *testing.T) {
	s, c := introFor(t, "lesson2")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if c.Screen() != session.ScreenLesson {
		t.Errorf("screen = %v, want lesson", c.Screen())
	}
}

func TestIntro_ScrollClamps(t *testing.T) {
	s, _ := introFor(t, "lesson1")

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("offset = %d after scrolling up at top", s.offset)
	}

	for i := 0; i < 100; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(80, 24)
	if s.offset >= 100 {
		t.Errorf("offset = %d, expected clamping on render", s.offset)
	}
}

func TestIntro_KeyHints(t *testing.T) {
	s, _ := introFor(t, "lesson1")
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
