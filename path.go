package chaikin

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
)

// PathElement is a drawing command for an open polyline. A valid path starts
// with a MoveTo.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s)", kind, el.P0)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// Polyline is an open path through an ordered sequence of points. It is never
// closed: the last point is not connected back to the first.
type Polyline []Point

// Elements returns the path elements of the polyline: a MoveTo to the first
// point followed by a LineTo for every point after it. An empty polyline has
// no elements.
func (pl Polyline) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pl {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Lines returns the segments between consecutive points.
func (pl Polyline) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1], pl[i]}) {
				return
			}
		}
	}
}

// Length returns the sum of the lengths of the polyline's segments.
func (pl Polyline) Length() float64 {
	var sum float64
	for l := range pl.Lines() {
		sum += l.Length()
	}
	return sum
}

// BoundingBox returns the smallest rectangle enclosing every point. The zero
// Rect is returned for an empty polyline.
func (pl Polyline) BoundingBox() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	r := Rect{X0: pl[0].X, Y0: pl[0].Y, X1: pl[0].X, Y1: pl[0].Y}
	for _, pt := range pl[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}
