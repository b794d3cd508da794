// Package chaikin implements Chaikin's corner-cutting curve subdivision and
// the interaction state machine of a program that animates it: the user
// places control points on a canvas, and the polyline through them is
// smoothed one refinement pass per animation tick.
//
// # Refinement
//
// [Refine] maps a sequence of points and an iteration count to a new
// sequence. Each pass keeps the first and last point and replaces every
// segment p0→p1 with the two points at a quarter and at three quarters of
// the segment ([Line.Cut]). Interior input points are dropped, so after
// enough passes the polyline approaches a quadratic B-spline through the
// control polygon.
//
// Refine is a pure function. The controller always refines the original
// control points with a growing iteration count instead of feeding a
// previous result back in, so that iteration k is reproducible from the
// control points alone.
//
// # Interaction
//
// A [Controller] owns the session state and is driven by abstract [Event]
// values that the host decodes from its input devices: pointer presses and
// moves, key presses and releases, and timer ticks. The controller is always
// in exactly one [Mode]:
//
//   - [Editing]: a primary press adds a control point.
//   - [Dragging]: entered by a primary press within [HitRadius] of a control
//     point while the drag modifier is held. Pointer moves reposition that
//     point. Releasing the modifier ends the drag.
//   - [Animating]: entered with Enter. Every tick displays the next
//     refinement iteration, up to [TargetIterations], after which the ramp
//     starts over at iteration 0. Only a reset leaves this mode.
//
// Enter starts the animation, "r" resets the session and Escape asks the
// host to quit.
//
// The host has to run a timer with period [TickPeriod] exactly while
// [Controller.Subscription] is active and re-check the subscription after
// every event.
//
// # Drawing
//
// The controller does not draw. [Controller.Scene] describes a frame as a
// filled [Circle] of radius [MarkerRadius] for every control point and an
// open [Polyline] through the refined points, stroked with [DefaultStroke].
package chaikin
