package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"honnef.co/go/chaikin"
)

// newSized returns a model with a 40×10 cell canvas, an 80×40 surface.
func newSized(t *testing.T) Model {
	t.Helper()
	m := update(t, New(Options{}), tea.WindowSizeMsg{Width: 40, Height: 13})
	if got := m.ctrl.Bounds(); got != chaikin.NewRectFromSize(80, 40) {
		t.Fatalf("got bounds %v, want 80x40", got)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func ctrlClick(x, y int) tea.MouseMsg {
	msg := click(x, y)
	msg.Ctrl = true
	return msg
}

func move(x, y int, ctrl bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Ctrl: ctrl, Action: tea.MouseActionMotion}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestClickAddsPointAtCellCenter(t *testing.T) {
	m := newSized(t)
	m = update(t, m, click(3, 1))
	m = update(t, m, click(0, 10))
	want := []chaikin.Point{chaikin.Pt(7, 2), chaikin.Pt(1, 38)}
	if d := cmp.Diff(want, m.ctrl.Points()); d != "" {
		t.Error(d)
	}
}

func TestClickOutsideCanvasIgnored(t *testing.T) {
	m := newSized(t)
	for _, msg := range []tea.MouseMsg{
		click(3, 0),  // title
		click(3, 11), // status line
		click(40, 3), // right of the canvas
	} {
		m = update(t, m, msg)
	}
	if pts := m.ctrl.Points(); len(pts) != 0 {
		t.Errorf("got points %v, want none", pts)
	}
}

func TestOtherButtonsIgnored(t *testing.T) {
	m := newSized(t)
	msg := click(3, 3)
	msg.Button = tea.MouseButtonRight
	m = update(t, m, msg)
	msg.Button = tea.MouseButtonWheelUp
	m = update(t, m, msg)
	if pts := m.ctrl.Points(); len(pts) != 0 {
		t.Errorf("got points %v, want none", pts)
	}
}

func TestModifiedDrag(t *testing.T) {
	m := newSized(t)
	m = update(t, m, click(3, 1))
	m = update(t, m, ctrlClick(3, 1))
	if _, ok := m.ctrl.Mode().(chaikin.Dragging); !ok {
		t.Fatalf("got mode %v, want dragging", m.ctrl.Mode())
	}
	m = update(t, m, move(5, 2, true))
	if d := cmp.Diff([]chaikin.Point{chaikin.Pt(11, 6)}, m.ctrl.Points()); d != "" {
		t.Error(d)
	}

	// Releasing the modifier ends the drag before the move is handled.
	m = update(t, m, move(8, 4, false))
	if _, ok := m.ctrl.Mode().(chaikin.Editing); !ok {
		t.Errorf("got mode %v, want editing", m.ctrl.Mode())
	}
	if m.ctrl.ModifierHeld() {
		t.Error("modifier still held")
	}
	if d := cmp.Diff([]chaikin.Point{chaikin.Pt(11, 6)}, m.ctrl.Points()); d != "" {
		t.Error(d)
	}
}

func TestConfiguredModifier(t *testing.T) {
	m := update(t, New(Options{Modifier: "alt"}), tea.WindowSizeMsg{Width: 40, Height: 13})
	m = update(t, m, click(3, 1))
	m = update(t, m, ctrlClick(3, 1))
	if n := len(m.ctrl.Points()); n != 2 {
		t.Fatalf("ctrl should add a point when alt is the modifier, got %d points", n)
	}
	msg := click(3, 1)
	msg.Alt = true
	m = update(t, m, msg)
	if _, ok := m.ctrl.Mode().(chaikin.Dragging); !ok {
		t.Errorf("got mode %v, want dragging", m.ctrl.Mode())
	}
}

func TestToggleKey(t *testing.T) {
	m := newSized(t)
	m = update(t, m, click(3, 1))
	m = update(t, m, runes("m"))
	if !m.ctrl.ModifierHeld() {
		t.Fatal("toggle key should hold the modifier")
	}
	m = update(t, m, click(3, 1))
	if got, want := m.ctrl.Mode(), (chaikin.Dragging{Index: 0, Original: chaikin.Pt(7, 2)}); got != want {
		t.Fatalf("got mode %v, want %v", got, want)
	}
	// Unmodified motion keeps the sticky modifier.
	m = update(t, m, move(4, 1, false))
	if d := cmp.Diff([]chaikin.Point{chaikin.Pt(9, 2)}, m.ctrl.Points()); d != "" {
		t.Error(d)
	}
	m = update(t, m, runes("m"))
	if m.ctrl.ModifierHeld() {
		t.Error("second toggle should release the modifier")
	}
	if _, ok := m.ctrl.Mode().(chaikin.Editing); !ok {
		t.Errorf("got mode %v, want editing", m.ctrl.Mode())
	}
}

func TestAnimationTicks(t *testing.T) {
	m := newSized(t)
	for _, x := range []int{1, 10, 20} {
		m = update(t, m, click(x, 5))
	}
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting the animation should schedule a tick")
	}
	if !m.ticking {
		t.Fatal("model should be ticking")
	}

	for i := range 3 {
		m, cmd = updateCmd(t, m, tickMsg{gen: m.gen})
		if cmd == nil {
			t.Fatalf("tick %d should schedule the next tick", i)
		}
	}
	if got := m.ctrl.Iteration(); got != 3 {
		t.Errorf("got iteration %d, want 3", got)
	}
	if got := len(m.ctrl.Displayed()); got != 12 {
		t.Errorf("got %d displayed points, want 12", got)
	}

	// Enter while animating keeps the pending tick.
	m, cmd = updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter while animating should not schedule another tick")
	}
}

func TestStaleTickDropped(t *testing.T) {
	m := newSized(t)
	m = update(t, m, click(1, 5))
	m = update(t, m, click(10, 5))
	m = update(t, m, click(20, 5))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := m.gen

	m = update(t, m, runes("r"))
	if m.ticking {
		t.Fatal("reset should stop the timer")
	}
	m = update(t, m, click(1, 5))
	m = update(t, m, click(10, 5))
	m = update(t, m, click(20, 5))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := updateCmd(t, m, tickMsg{gen: stale})
	if cmd != nil || m.ctrl.Iteration() != 0 {
		t.Errorf("stale tick was handled: iteration %d", m.ctrl.Iteration())
	}
	m = update(t, m, tickMsg{gen: m.gen})
	if got := m.ctrl.Iteration(); got != 1 {
		t.Errorf("got iteration %d, want 1", got)
	}
}

func TestTickWhileEditingIgnored(t *testing.T) {
	m := newSized(t)
	m = update(t, m, click(1, 5))
	m, cmd := updateCmd(t, m, tickMsg{gen: m.gen})
	if cmd != nil {
		t.Error("tick while editing should not schedule anything")
	}
	if m.ctrl.Displayed() != nil {
		t.Errorf("got displayed %v, want none", m.ctrl.Displayed())
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := updateCmd(t, newSized(t), msg)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("got %T, want tea.QuitMsg", cmd())
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestView(t *testing.T) {
	if got := New(Options{}).View(); got != "Loading..." {
		t.Errorf("got %q before the first resize", got)
	}

	m := newSized(t)
	m = update(t, m, click(3, 1))
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 13 {
		t.Fatalf("got %d lines, want 13", len(lines))
	}
	if !strings.Contains(lines[0], chaikin.Title) {
		t.Errorf("title line %q", lines[0])
	}
	if !strings.ContainsFunc(lines[1], func(r rune) bool { return r >= 0x2801 && r <= 0x28FF }) {
		t.Errorf("first canvas row %q has no marker dots", lines[1])
	}
	for _, want := range []string{"editing", "points 1", "iteration 0/7", "drag off"} {
		if !strings.Contains(lines[11], want) {
			t.Errorf("status line %q doesn't contain %q", lines[11], want)
		}
	}
}
