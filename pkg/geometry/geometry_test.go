package geometry

import (
	"math"
	"testing"
)

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 10}, true},
		{Point{29.9, 19.9}, true},
		{Point{30, 15}, false},
		{Point{15, 20}, false},
		{Point{9, 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectangleIntersection(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rectangle{X: 5, Y: 5, Width: 10, Height: 10}
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected overlap")
	}
	want := Rectangle{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Errorf("Intersection = %v, want %v", got, want)
	}
	if _, ok := a.Intersection(Rectangle{X: 20, Y: 20, Width: 1, Height: 1}); ok {
		t.Error("expected no overlap")
	}
}

func TestPaddingFit(t *testing.T) {
	p := PaddingAll(10)
	fit := p.Fit(Size{Width: 90, Height: 0}, Size{Width: 100, Height: 100})
	if math.Abs(fit.Horizontal()-10) > epsilon {
		t.Errorf("horizontal = %v, want 10", fit.Horizontal())
	}
	if fit.Vertical() != 20 {
		t.Errorf("vertical = %v, want 20", fit.Vertical())
	}
}

func TestSizeEqualInfinite(t *testing.T) {
	if !Infinite.Equal(Infinite) {
		t.Error("infinite sizes should be equal")
	}
	if Infinite.Equal(Size{Width: 1, Height: 1}) {
		t.Error("finite and infinite sizes should differ")
	}
}
