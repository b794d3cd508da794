package chaikin

import "math"

// Circle is used both for the control point markers and for hit-testing
// presses against control points.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

// Covers reports whether pt lies inside the circle or on its perimeter.
func (c Circle) Covers(pt Point) bool {
	return pt.Sub(c.Center).Hypot() <= math.Abs(c.Radius)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}
