package chaikin

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidRefinementInput is returned when asked to refine fewer than
	// two points.
	ErrInvalidRefinementInput = errors.New("chaikin: refinement needs at least 2 points")
	// ErrInvalidIterations is returned for a negative iteration count.
	ErrInvalidIterations = errors.New("chaikin: negative iteration count")
)

// Refine applies iterations passes of Chaikin's corner cutting to points and
// returns the result in a newly allocated slice. points is never modified.
//
// Each pass keeps the first and last point and replaces every segment p0→p1
// with the two points 0.75·p0 + 0.25·p1 and 0.25·p0 + 0.75·p1 (see
// [Line.Cut]). Interior points of the input do not survive a pass. That makes
// Refine(P, n) equal to Refine(Refine(P, 1), n-1).
//
// Refine(P, 0) returns a copy of P for any P, including empty ones. If
// iterations is positive, P must have at least two points; otherwise the
// error wraps [ErrInvalidRefinementInput]. A negative count yields
// [ErrInvalidIterations].
//
// Refine is a pure function and is safe to call concurrently.
func Refine(points []Point, iterations int) ([]Point, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("refine %d times: %w", iterations, ErrInvalidIterations)
	}
	if iterations == 0 {
		return slices.Clone(points), nil
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("refine %d points: %w", len(points), ErrInvalidRefinementInput)
	}

	// Two buffers are enough: every pass reads one and overwrites the other.
	size := RefinedLen(len(points), iterations)
	src := make([]Point, 0, size)
	dst := make([]Point, 0, size)
	src = cut(src, points)
	for range iterations - 1 {
		dst = cut(dst[:0], src)
		src, dst = dst, src
	}
	return src, nil
}

// RefineOnce applies a single pass of corner cutting. It is equivalent to
// Refine(points, 1).
func RefineOnce(points []Point) ([]Point, error) {
	return Refine(points, 1)
}

// RefinedLen returns the length of Refine's result for an input of m points
// and n passes. Every pass doubles the number of points: the two endpoints
// are kept and each of the m-1 segments contributes two points.
//
// It returns 0 if no such result exists, that is for negative n, or for
// positive n with fewer than two points.
func RefinedLen(m, n int) int {
	switch {
	case n < 0:
		return 0
	case n == 0:
		return m
	case m < 2:
		return 0
	default:
		return m << n
	}
}

// cut appends one pass of corner cutting of src to dst. src must have at
// least two points.
func cut(dst, src []Point) []Point {
	dst = append(dst, src[0])
	for i := range len(src) - 1 {
		q, r := Line{src[i], src[i+1]}.Cut()
		dst = append(dst, q, r)
	}
	return append(dst, src[len(src)-1])
}
