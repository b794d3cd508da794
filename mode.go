package chaikin

import "fmt"

// Mode is the interaction state of a [Controller]. It is one of [Editing],
// [Dragging] or [Animating]. Whether the drag modifier is held is tracked
// separately, since it can change in every mode.
type Mode interface {
	mode()
	String() string
}

// Editing is the initial mode. Primary presses add control points.
type Editing struct{}

// Dragging is entered by a modified press on a control point. Pointer moves
// reposition the point at Index; Original is its position when the drag
// started.
type Dragging struct {
	Index    int
	Original Point
}

// Animating steps through refinement iterations on every timer tick. Point
// editing is disabled.
type Animating struct{}

func (Editing) mode()   {}
func (Dragging) mode()  {}
func (Animating) mode() {}

func (Editing) String() string    { return "editing" }
func (d Dragging) String() string { return fmt.Sprintf("dragging #%d from %s", d.Index, d.Original) }
func (Animating) String() string  { return "animating" }
