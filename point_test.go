package chaikin

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(2.5, 5), Pt(0, 0).Lerp(Pt(10, 20), 0.25))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointFinite(t *testing.T) {
	tests := []struct {
		pt       Point
		inf, nan bool
		finite   bool
	}{
		{Pt(1, 2), false, false, true},
		{Pt(math.Inf(-1), 2), true, false, false},
		{Pt(1, math.NaN()), false, true, false},
	}
	for _, tt := range tests {
		if got := tt.pt.IsInf(); got != tt.inf {
			t.Errorf("%v.IsInf() = %v", tt.pt, got)
		}
		if got := tt.pt.IsNaN(); got != tt.nan {
			t.Errorf("%v.IsNaN() = %v", tt.pt, got)
		}
		if got := tt.pt.IsFinite(); got != tt.finite {
			t.Errorf("%v.IsFinite() = %v", tt.pt, got)
		}
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(7.5, -0.25).String(); s != "(7.5, -0.25)" {
		t.Errorf("got %q", s)
	}
	if s := Vec(1, 2).String(); s != "⟨1, 2⟩" {
		t.Errorf("got %q", s)
	}
	if x, y := Pt(1.4, 2.6).Round().Splat(); x != 1 || y != 3 {
		t.Errorf("got (%v, %v), want (1, 3)", x, y)
	}
}

func TestVecOps(t *testing.T) {
	v := Vec(3, 4)
	if h := v.Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	if h := v.Hypot2(); h != 25 {
		t.Errorf("got squared magnitude %v, want 25", h)
	}
	diff(t, Vec(-3, -4), v.Negate())
	diff(t, Vec(4, 6), v.Add(Vec(1, 2)))
	diff(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	diff(t, Vec(1.5, 2), Vec(0, 0).Lerp(v, 0.5))
}
