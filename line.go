package chaikin

import "iter"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Cut returns the two corner-cutting points of the segment: q lies a quarter
// of the way from P0 to P1 and r three quarters of the way.
//
// The points are computed as weighted sums of the endpoints rather than with
// [Line.Eval], so q is exactly 0.75·P0 + 0.25·P1 and r is exactly
// 0.25·P0 + 0.75·P1.
func (l Line) Cut() (q, r Point) {
	q = Point{
		X: 0.75*l.P0.X + 0.25*l.P1.X,
		Y: 0.75*l.P0.Y + 0.25*l.P1.Y,
	}
	r = Point{
		X: 0.25*l.P0.X + 0.75*l.P1.X,
		Y: 0.25*l.P0.Y + 0.75*l.P1.Y,
	}
	return q, r
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Nearest returns the squared distance from pt to the closest point on the
// segment and that point's parameter t.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}
