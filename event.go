package chaikin

import "fmt"

// Event is an abstract input delivered to [Controller.Handle]. The host
// decodes device input into these types.
type Event interface {
	event()
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonMiddle
)

// Modifiers is the set of modifier keys held during a pointer press.
type Modifiers uint8

const (
	// ModDrag is the drag modifier. A primary press with it held selects a
	// control point instead of adding one.
	ModDrag Modifiers = 1 << iota
)

func (m Modifiers) Has(o Modifiers) bool { return m&o == o }

// Cursor is the pointer position relative to the drawing surface, if it can
// be resolved.
type Cursor struct {
	pos Point
	ok  bool
}

// CursorUnavailable is a cursor that has no position on the drawing surface.
var CursorUnavailable = Cursor{}

// CursorAt returns a cursor at pt.
func CursorAt(pt Point) Cursor {
	return Cursor{pos: pt, ok: true}
}

// Position returns the cursor's position and whether it has one.
func (c Cursor) Position() (Point, bool) {
	return c.pos, c.ok
}

func (c Cursor) String() string {
	if !c.ok {
		return "unavailable"
	}
	return c.pos.String()
}

type keyKind int

const (
	keyChar keyKind = iota
	keyEnter
	keyEscape
	keyModifier
)

// Key is a keyboard key. Only the keys in this package's variables and
// characters created by [KeyChar] are distinguished.
type Key struct {
	kind keyKind
	ch   rune
}

var (
	KeyEnter    = Key{kind: keyEnter}
	KeyEscape   = Key{kind: keyEscape}
	KeyModifier = Key{kind: keyModifier}
)

// KeyChar returns the key that produces the character ch.
func KeyChar(ch rune) Key {
	return Key{kind: keyChar, ch: ch}
}

func (k Key) String() string {
	switch k.kind {
	case keyEnter:
		return "enter"
	case keyEscape:
		return "escape"
	case keyModifier:
		return "modifier"
	default:
		return fmt.Sprintf("%q", k.ch)
	}
}

type (
	// PointerPressed reports a press of a pointer button.
	PointerPressed struct {
		Cursor    Cursor
		Modifiers Modifiers
		Button    Button
	}
	// PointerMoved reports a change of the pointer position.
	PointerMoved struct {
		Cursor Cursor
	}
	KeyPressed struct {
		Key Key
	}
	KeyReleased struct {
		Key Key
	}
	// TimerTick is delivered by the host every [TickPeriod] while
	// [Controller.Subscription] is active.
	TimerTick struct{}

	// StartAnimation, Reset and Quit are the commands that Enter, "r" and
	// Escape map to. Hosts may deliver them directly.
	StartAnimation struct{}
	Reset          struct{}
	Quit           struct{}
)

func (PointerPressed) event() {}
func (PointerMoved) event()   {}
func (KeyPressed) event()     {}
func (KeyReleased) event()    {}
func (TimerTick) event()      {}
func (StartAnimation) event() {}
func (Reset) event()          {}
func (Quit) event()           {}

// Status tells the host whether an event was consumed. Ignored events may
// be given default handling by the host.
type Status int

const (
	Ignored Status = iota
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Command is an action the host has to carry out after an event.
type Command int

const (
	CommandNone Command = iota
	// CommandQuit asks the host to terminate the program with exit code 0.
	CommandQuit
)
