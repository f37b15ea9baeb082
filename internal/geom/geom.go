// Package geom provides the axis-aligned box and circle math used for movement
// and collision.
package geom

import (
	"fmt"
	"math"
)

// Vector2 is a position or velocity in world coordinates.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Along returns the component of v on the given axis.
func (v Vector2) Along(axis Axis) float64 {
	if axis == AxisX {
		return v.X
	}
	return v.Y
}

// With returns a copy of v with the component on axis replaced.
func (v Vector2) With(axis Axis, value float64) Vector2 {
	if axis == AxisX {
		v.X = value
	} else {
		v.Y = value
	}
	return v
}

// IsZero returns true if both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite returns true if neither component is NaN or infinite.
func (v Vector2) IsFinite() bool {
	return finite(v.X) && finite(v.Y)
}

// Axis selects one of the two movement axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Bounds is an axis-aligned box. Y grows downward, so Top <= Bottom.
type Bounds struct {
	Top, Right, Bottom, Left float64
}

// BoundsOf returns the box enclosing a circle.
func BoundsOf(center Vector2, radius float64) Bounds {
	b := Bounds{
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
		Left:   center.X - radius,
	}
	b.Validate()
	return b
}

// RectAt returns the box with the given top-left origin and size.
func RectAt(origin Vector2, width, height float64) Bounds {
	b := Bounds{
		Top:    origin.Y,
		Right:  origin.X + width,
		Bottom: origin.Y + height,
		Left:   origin.X,
	}
	b.Validate()
	return b
}

// Pad grows every edge outward by amount. A negative amount shrinks the box.
func (b Bounds) Pad(amount float64) Bounds {
	p := Bounds{
		Top:    b.Top - amount,
		Right:  b.Right + amount,
		Bottom: b.Bottom + amount,
		Left:   b.Left - amount,
	}
	p.Validate()
	return p
}

// Offset translates the box.
func (b Bounds) Offset(dx, dy float64) Bounds {
	return Bounds{
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
		Left:   b.Left + dx,
	}
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Area returns Width * Height.
func (b Bounds) Area() float64 { return b.Width() * b.Height() }

// Center returns the midpoint of the box.
func (b Bounds) Center() Vector2 {
	return Vector2{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// ContainsPoint returns true if p lies inside the box or on its edge.
func (b Bounds) ContainsPoint(p Vector2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Touches returns true if the boxes overlap or share an edge.
func (b Bounds) Touches(o Bounds) bool {
	return b.Top <= o.Bottom &&
		b.Right >= o.Left &&
		b.Bottom >= o.Top &&
		b.Left <= o.Right
}

// Validate panics if the box is inverted or has a non-finite edge.
// Bounds are always derived from a center or origin, so a failure here is a
// programming error.
func (b Bounds) Validate() {
	if !finite(b.Top) || !finite(b.Right) || !finite(b.Bottom) || !finite(b.Left) {
		panic(fmt.Sprintf("geom: non-finite bounds %+v", b))
	}
	if b.Left > b.Right || b.Top > b.Bottom {
		panic(fmt.Sprintf("geom: inverted bounds %+v", b))
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vector2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// CirclesHit returns true if two circles intersect.
// Circles that only touch do not count.
func CirclesHit(a Vector2, ra float64, b Vector2, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// Sign returns -1, 0 or +1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
