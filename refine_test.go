package chaikin

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

var testPolylines = map[string][]Point{
	"two":      {Pt(0, 0), Pt(10, 0)},
	"corner":   {Pt(0, 0), Pt(10, 0), Pt(10, 10)},
	"zigzag":   {Pt(5, 5), Pt(50, 80), Pt(95, 5), Pt(140, 80), Pt(185, 5)},
	"repeated": {Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	"fraction": {Pt(-3.3, 7.1), Pt(12.9, -0.7), Pt(0.1, 0.2), Pt(44.4, 17.17)},
}

func TestRefineIdentity(t *testing.T) {
	inputs := [][]Point{nil, {}, {Pt(3, 4)}}
	for _, pts := range testPolylines {
		inputs = append(inputs, pts)
	}
	for _, pts := range inputs {
		got, err := Refine(pts, 0)
		if err != nil {
			t.Fatalf("Refine(%v, 0) failed: %v", pts, err)
		}
		if !slices.Equal(got, pts) {
			t.Errorf("Refine(%v, 0) = %v", pts, got)
		}
	}
}

func TestRefineIdentityCopies(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	got, _ := Refine(pts, 0)
	got[0] = Pt(99, 99)
	if pts[0] != Pt(0, 0) {
		t.Error("Refine(P, 0) returned P's backing array")
	}
}

func TestRefineOnePass(t *testing.T) {
	got, err := RefineOnce(testPolylines["corner"])
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(0, 0), Pt(2.5, 0), Pt(7.5, 0), Pt(10, 2.5), Pt(10, 7.5), Pt(10, 10)}
	diff(t, want, got)
}

func TestRefineTwoPasses(t *testing.T) {
	got, err := Refine(testPolylines["corner"], 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(0, 0),
		Pt(0.625, 0), Pt(1.875, 0),
		Pt(3.75, 0), Pt(6.25, 0),
		Pt(8.125, 0.625), Pt(9.375, 1.875),
		Pt(10, 3.75), Pt(10, 6.25),
		Pt(10, 8.125), Pt(10, 9.375),
		Pt(10, 10),
	}
	diff(t, want, got)
}

func TestRefineTwoPoints(t *testing.T) {
	got, err := RefineOnce(testPolylines["two"])
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(2.5, 0), Pt(7.5, 0), Pt(10, 0)}, got)
}

func TestRefineKeepsEndpoints(t *testing.T) {
	for name, pts := range testPolylines {
		for n := 1; n <= TargetIterations; n++ {
			got, err := Refine(pts, n)
			if err != nil {
				t.Fatalf("%s: Refine(_, %d) failed: %v", name, n, err)
			}
			if got[0] != pts[0] || got[len(got)-1] != pts[len(pts)-1] {
				t.Errorf("%s: Refine(_, %d) moved the endpoints: got %v…%v, want %v…%v",
					name, n, got[0], got[len(got)-1], pts[0], pts[len(pts)-1])
			}
		}
	}
}

func TestRefineDecomposition(t *testing.T) {
	for name, pts := range testPolylines {
		once, err := RefineOnce(pts)
		if err != nil {
			t.Fatal(err)
		}
		for n := 0; n < TargetIterations; n++ {
			direct, err := Refine(pts, n+1)
			if err != nil {
				t.Fatal(err)
			}
			stepped, err := Refine(once, n)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(direct, stepped) {
				t.Errorf("%s: Refine(P, %d) != Refine(Refine(P, 1), %d)", name, n+1, n)
			}
		}
	}
}

func TestRefineLength(t *testing.T) {
	for name, pts := range testPolylines {
		for n := 0; n <= TargetIterations; n++ {
			got, err := Refine(pts, n)
			if err != nil {
				t.Fatal(err)
			}
			if want := RefinedLen(len(pts), n); len(got) != want {
				t.Errorf("%s: len(Refine(P, %d)) = %d, want %d", name, n, len(got), want)
			}
		}
		if got, want := RefinedLen(len(pts), 1), 2*(len(pts)-1)+2; got != want {
			t.Errorf("%s: one pass yields %d points, want %d", name, got, want)
		}
	}
}

func TestRefinedLen(t *testing.T) {
	tests := []struct {
		m, n, want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{1, 1, 0},
		{0, 3, 0},
		{2, 1, 4},
		{3, 1, 6},
		{3, 7, 384},
		{5, -1, 0},
	}
	for _, tt := range tests {
		if got := RefinedLen(tt.m, tt.n); got != tt.want {
			t.Errorf("RefinedLen(%d, %d) = %d, want %d", tt.m, tt.n, got, tt.want)
		}
	}
}

func TestRefineInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		points     []Point
		iterations int
		want       error
	}{
		{"empty", nil, 1, ErrInvalidRefinementInput},
		{"single", []Point{Pt(1, 1)}, 3, ErrInvalidRefinementInput},
		{"negative", testPolylines["corner"], -1, ErrInvalidIterations},
		{"negative on empty", nil, -2, ErrInvalidIterations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Refine(tt.points, tt.iterations)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got error %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Errorf("got partial result %v", got)
			}
		})
	}
}

func TestRefineDoesNotModifyInput(t *testing.T) {
	pts := slices.Clone(testPolylines["zigzag"])
	if _, err := Refine(pts, 4); err != nil {
		t.Fatal(err)
	}
	diff(t, testPolylines["zigzag"], pts)
}

func TestRefineConcurrent(t *testing.T) {
	pts := testPolylines["fraction"]
	want, err := Refine(pts, 5)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([][]Point, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Refine(pts, 5)
		}()
	}
	wg.Wait()
	for i, got := range results {
		if !slices.Equal(got, want) {
			t.Errorf("goroutine %d got a different result", i)
		}
	}
}

func BenchmarkRefine(b *testing.B) {
	pts := testPolylines["zigzag"]
	for range b.N {
		Refine(pts, TargetIterations)
	}
}
