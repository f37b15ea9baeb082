package geom

import (
	"math"
	"testing"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Vector2{X: 60, Y: 60}, 15)
	want := Bounds{Top: 45, Right: 75, Bottom: 75, Left: 45}
	if b != want {
		t.Errorf("BoundsOf() = %+v, want %+v", b, want)
	}
}

func TestPad(t *testing.T) {
	b := BoundsOf(Vector2{X: 60, Y: 60}, 15)

	tests := []struct {
		amount float64
		want   Bounds
	}{
		{0, Bounds{Top: 45, Right: 75, Bottom: 75, Left: 45}},
		{4, Bounds{Top: 41, Right: 79, Bottom: 79, Left: 41}},
		{-5, Bounds{Top: 50, Right: 70, Bottom: 70, Left: 50}},
	}

	for _, tt := range tests {
		got := b.Pad(tt.amount)
		if got != tt.want {
			t.Errorf("Pad(%v) = %+v, want %+v", tt.amount, got, tt.want)
		}
	}
}

func TestPadPanicsWhenInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pad() with shrink larger than half-width should panic")
		}
	}()
	BoundsOf(Vector2{X: 0, Y: 0}, 2).Pad(-5)
}

func TestValidatePanicsOnNaN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BoundsOf() with NaN center should panic")
		}
	}()
	BoundsOf(Vector2{X: math.NaN(), Y: 0}, 1)
}

func TestContainsPoint(t *testing.T) {
	b := RectAt(Vector2{X: 80, Y: 40}, 40, 40)

	tests := []struct {
		name string
		p    Vector2
		want bool
	}{
		{"inside", Vector2{X: 100, Y: 60}, true},
		{"on left edge", Vector2{X: 80, Y: 60}, true},
		{"on corner", Vector2{X: 120, Y: 80}, true},
		{"left of box", Vector2{X: 79.9, Y: 60}, false},
		{"below box", Vector2{X: 100, Y: 81}, false},
	}

	for _, tt := range tests {
		if got := b.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("%s: ContainsPoint(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestTouches(t *testing.T) {
	a := RectAt(Vector2{X: 0, Y: 0}, 10, 10)

	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"overlapping", RectAt(Vector2{X: 5, Y: 5}, 10, 10), true},
		{"edge contact", RectAt(Vector2{X: 10, Y: 0}, 10, 10), true},
		{"corner contact", RectAt(Vector2{X: 10, Y: 10}, 10, 10), true},
		{"separated", RectAt(Vector2{X: 10.5, Y: 0}, 10, 10), false},
	}

	for _, tt := range tests {
		if got := a.Touches(tt.b); got != tt.want {
			t.Errorf("%s: Touches() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Touches(a); got != tt.want {
			t.Errorf("%s: reversed Touches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Vector2{
		{{X: 100, Y: 100}, {X: 108, Y: 100}},
		{{X: -3, Y: 7}, {X: 12, Y: -40}},
		{{X: 0, Y: 0}, {X: 0, Y: 0}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%v, %v) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
		if CirclesHit(p[0], 15, p[1], 3) != CirclesHit(p[1], 3, p[0], 15) {
			t.Errorf("CirclesHit not symmetric for %v", p)
		}
	}
}

func TestCirclesHit(t *testing.T) {
	tests := []struct {
		name string
		b    Vector2
		want bool
	}{
		{"pellet inside reach", Vector2{X: 108, Y: 100}, true},
		{"exactly touching", Vector2{X: 118, Y: 100}, false},
		{"out of reach", Vector2{X: 130, Y: 100}, false},
	}

	a := Vector2{X: 100, Y: 100}
	for _, tt := range tests {
		if got := CirclesHit(a, 15, tt.b, 3); got != tt.want {
			t.Errorf("%s: CirclesHit() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVectorAxisAccess(t *testing.T) {
	v := Vector2{X: 3, Y: -4}
	if v.Along(AxisX) != 3 || v.Along(AxisY) != -4 {
		t.Errorf("Along() returned wrong components for %+v", v)
	}
	if got := v.With(AxisY, 0); got != (Vector2{X: 3, Y: 0}) {
		t.Errorf("With(AxisY, 0) = %+v", got)
	}
	if AxisX.Other() != AxisY || AxisY.Other() != AxisX {
		t.Error("Other() should swap axes")
	}
}
