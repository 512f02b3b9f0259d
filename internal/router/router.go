package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wegbereiter/internal/screen"
	"github.com/abhisek/wegbereiter/internal/session"
)

// PushScreenMsg requests the router to push an overlay screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the top overlay off the stack.
type PopScreenMsg struct{}

// Factory builds the screen shown for one quiz screen tag.
type Factory func() screen.Screen

// Router maps quiz screen tags to screens. The bottom of the stack is always
// the screen for the current tag; overlays such as help sit on top of it.
type Router struct {
	factories map[session.Screen]Factory
	tag       session.Screen
	stack     []screen.Screen
}

// New creates a Router from a registry of screen factories.
func New(factories map[session.Screen]Factory) *Router {
	return &Router{factories: factories, tag: -1}
}

// Sync activates the screen registered for tag when the tag changed since
// the last call. The new screen replaces the whole stack and its Init runs.
func (r *Router) Sync(tag session.Screen) tea.Cmd {
	if tag == r.tag && len(r.stack) > 0 {
		return nil
	}
	f, ok := r.factories[tag]
	if !ok {
		return nil
	}
	r.tag = tag
	return r.Replace(f())
}

// Tag returns the quiz screen tag of the base screen.
func (r *Router) Tag() session.Screen {
	return r.tag
}

// Replace swaps the whole stack for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack = []screen.Screen{s}
	return s.Init()
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
