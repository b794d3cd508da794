package chaikin

import "iter"

// Scene is what the drawing collaborator paints for one frame: a filled
// marker per control point and, if there is one, the refined curve stroked
// as an open polyline.
type Scene struct {
	Markers []Circle
	Curve   Polyline
	Stroke  Stroke
}

// NewScene returns the scene of a frame with markers at points and the
// curve through displayed. The slices are not retained.
func NewScene(points, displayed []Point) Scene {
	markers := make([]Circle, len(points))
	for i, p := range points {
		markers[i] = Circle{Center: p, Radius: MarkerRadius}
	}
	return Scene{
		Markers: markers,
		Curve:   Polyline(clonePoints(displayed)),
		Stroke:  DefaultStroke,
	}
}

// HasCurve reports whether the scene contains a polyline. A scene with an
// empty curve draws markers only.
func (s Scene) HasCurve() bool {
	return len(s.Curve) > 0
}

// CurveElements returns the path elements of the curve. It yields nothing if
// the scene has no curve.
func (s Scene) CurveElements() iter.Seq[PathElement] {
	return s.Curve.Elements()
}

// BoundingBox returns the smallest rectangle enclosing the markers and the
// curve, not accounting for the stroke width.
func (s Scene) BoundingBox() Rect {
	var (
		r     Rect
		empty = true
	)
	add := func(o Rect) {
		if empty {
			r, empty = o, false
			return
		}
		r = r.UnionPoint(o.Origin()).UnionPoint(Pt(o.X1, o.Y1))
	}
	for _, m := range s.Markers {
		add(m.BoundingBox())
	}
	if s.HasCurve() {
		add(s.Curve.BoundingBox())
	}
	return r
}
