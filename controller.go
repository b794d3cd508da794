package chaikin

import (
	"slices"
	"time"
)

const (
	// Title is the static title of the drawing window.
	Title = "Chaikin's Algorithm Animation"

	// TargetIterations is the number of refinement passes an animation run
	// ramps up to before it starts over.
	TargetIterations = 7
	// TickPeriod is the period of the animation timer.
	TickPeriod = 250 * time.Millisecond
	// HitRadius is the maximum distance between a press and a control point
	// for the press to select the point for dragging.
	HitRadius = 5.0
	// MarkerRadius is the radius of the markers drawn at control points.
	MarkerRadius = 2.5
)

// Subscription describes the timer the host has to run. It is derived from
// the controller's state and has to be re-evaluated after every event.
type Subscription struct {
	Active bool
	Period time.Duration
}

// Session is a snapshot of a controller's state.
type Session struct {
	// Points are the control points in the order they were placed.
	Points []Point
	// Displayed is the most recently refined sequence.
	Displayed        []Point
	TargetIterations int
	CurrentIteration int
	Mode             Mode
	ModifierHeld     bool
}

// Controller owns the editing and animation state and updates it in
// response to events. All mutation goes through [Controller.Handle].
//
// A Controller is not safe for concurrent use; the host has to deliver events
// one at a time.
type Controller struct {
	bounds Rect

	points       []Point
	displayed    []Point
	target       int
	iteration    int
	mode         Mode
	modifierHeld bool
}

// NewController returns a controller in its initial state. Pointer events
// outside of bounds are ignored. An empty bounds rectangle accepts every
// finite position.
func NewController(bounds Rect) *Controller {
	return &Controller{
		bounds: bounds,
		target: TargetIterations,
		mode:   Editing{},
	}
}

// SetBounds changes the extent of the drawing surface, for example after the
// host window was resized. Existing points are kept even if they now lie
// outside.
func (c *Controller) SetBounds(bounds Rect) {
	c.bounds = bounds
}

func (c *Controller) Bounds() Rect { return c.bounds }

// Handle applies ev to the controller's state. It reports whether ev was
// consumed and which command, if any, the host has to carry out.
func (c *Controller) Handle(ev Event) (Status, Command) {
	prev := c.mode
	status, cmd := c.dispatch(ev)
	if c.mode != prev {
		Logger().Debug("mode changed", "from", prev.String(), "to", c.mode.String())
	}
	return status, cmd
}

func (c *Controller) dispatch(ev Event) (Status, Command) {
	switch ev := ev.(type) {
	case PointerPressed:
		return c.pointerPressed(ev), CommandNone
	case PointerMoved:
		return c.pointerMoved(ev), CommandNone
	case KeyPressed:
		return c.keyPressed(ev.Key)
	case KeyReleased:
		return c.keyReleased(ev.Key), CommandNone
	case TimerTick:
		return c.tick(), CommandNone
	case StartAnimation:
		c.start()
		return Captured, CommandNone
	case Reset:
		c.reset()
		return Captured, CommandNone
	case Quit:
		return Captured, CommandQuit
	default:
		return Ignored, CommandNone
	}
}

// resolve returns the position of cur if it lies on the drawing surface.
func (c *Controller) resolve(cur Cursor) (Point, bool) {
	pt, ok := cur.Position()
	if !ok || !pt.IsFinite() {
		return Point{}, false
	}
	if !c.bounds.IsEmpty() && !c.bounds.Contains(pt) {
		return Point{}, false
	}
	return pt, true
}

func (c *Controller) pointerPressed(ev PointerPressed) Status {
	pt, ok := c.resolve(ev.Cursor)
	if !ok || ev.Button != ButtonPrimary {
		return Ignored
	}
	if _, ok := c.mode.(Animating); ok {
		return Ignored
	}

	if c.modifierHeld || ev.Modifiers.Has(ModDrag) {
		i, ok := c.HitTest(pt)
		if !ok {
			return Ignored
		}
		c.mode = Dragging{Index: i, Original: c.points[i]}
		return Captured
	}

	// An unmodified press ends a drag that was started by a press carrying
	// ModDrag, and then adds a point like in Editing.
	c.mode = Editing{}
	c.points = append(c.points, pt)
	return Captured
}

func (c *Controller) pointerMoved(ev PointerMoved) Status {
	d, ok := c.mode.(Dragging)
	if !ok {
		return Ignored
	}
	pt, ok := c.resolve(ev.Cursor)
	if !ok {
		return Ignored
	}
	c.points[d.Index] = pt
	return Captured
}

func (c *Controller) keyPressed(k Key) (Status, Command) {
	switch k {
	case KeyEnter:
		c.start()
		return Captured, CommandNone
	case KeyEscape:
		return Captured, CommandQuit
	case KeyChar('r'):
		c.reset()
		return Captured, CommandNone
	case KeyModifier:
		c.modifierHeld = true
		return Ignored, CommandNone
	default:
		return Ignored, CommandNone
	}
}

func (c *Controller) keyReleased(k Key) Status {
	if k != KeyModifier {
		return Ignored
	}
	c.modifierHeld = false
	if _, ok := c.mode.(Dragging); ok {
		c.mode = Editing{}
	}
	return Ignored
}

// start enters Animating. It is a no-op while already animating, so the
// current iteration is not restarted.
func (c *Controller) start() {
	if _, ok := c.mode.(Animating); ok {
		return
	}
	c.mode = Animating{}
}

// reset returns to the initial state, keeping the backing storage.
func (c *Controller) reset() {
	c.points = c.points[:0]
	c.displayed = c.displayed[:0]
	c.iteration = 0
	c.mode = Editing{}
}

// tick advances the animation by one step. The animation never stops on its
// own: once the target is reached the iteration counter starts over. Two
// points are displayed as they are and never advance past iteration 0.
func (c *Controller) tick() Status {
	if _, ok := c.mode.(Animating); !ok {
		return Ignored
	}

	if c.iteration < c.target && len(c.points) > 1 {
		if len(c.points) == 2 {
			c.displayed = append(c.displayed[:0], c.points...)
			c.iteration = 0
			return Captured
		}
		refined, err := Refine(c.points, c.iteration)
		if err != nil {
			Logger().Warn("refinement failed", "iteration", c.iteration, "points", len(c.points), "err", err)
			return Captured
		}
		c.displayed = refined
		Logger().Debug("tick", "iteration", c.iteration, "points", len(c.points), "displayed", len(c.displayed))
		c.iteration++
		return Captured
	}

	if len(c.points) == 0 {
		c.displayed = c.displayed[:0]
	}
	c.iteration = 0
	return Captured
}

// HitTest returns the index of the first control point, in placement order,
// that lies within [HitRadius] of pt. When several points are in range the
// one with the lowest index wins, even if a later one is closer.
func (c *Controller) HitTest(pt Point) (int, bool) {
	for i, p := range c.points {
		if (Circle{Center: p, Radius: HitRadius}).Covers(pt) {
			return i, true
		}
	}
	return -1, false
}

// Subscription returns the timer the host has to run for the current state.
// It is active exactly while animating.
func (c *Controller) Subscription() Subscription {
	_, animating := c.mode.(Animating)
	return Subscription{Active: animating, Period: TickPeriod}
}

// Points returns a copy of the control points.
func (c *Controller) Points() []Point { return clonePoints(c.points) }

// Displayed returns a copy of the most recently refined sequence.
func (c *Controller) Displayed() []Point { return clonePoints(c.displayed) }

func (c *Controller) Mode() Mode { return c.mode }

// Iteration returns the number of refinement passes rendered so far in the
// current animation run.
func (c *Controller) Iteration() int { return c.iteration }

func (c *Controller) ModifierHeld() bool { return c.modifierHeld }

// Session returns a snapshot of the controller's state. The slices are
// copies.
func (c *Controller) Session() Session {
	return Session{
		Points:           c.Points(),
		Displayed:        c.Displayed(),
		TargetIterations: c.target,
		CurrentIteration: c.iteration,
		Mode:             c.mode,
		ModifierHeld:     c.modifierHeld,
	}
}

// Scene returns the draw commands for the current state.
func (c *Controller) Scene() Scene {
	return NewScene(c.points, c.displayed)
}

func clonePoints(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	return slices.Clone(pts)
}
