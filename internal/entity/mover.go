// Package entity provides the player and pursuers and their movement state.
package entity

import (
	"fmt"

	"github.com/samdwyer/pelletmaze/internal/geom"
)

// Direction is one of the four movement directions. It doubles as the
// orientation a mover is facing.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists all directions in clockwise order starting from up.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Axis returns the axis the direction moves along.
func (d Direction) Axis() geom.Axis {
	if d == DirLeft || d == DirRight {
		return geom.AxisX
	}
	return geom.AxisY
}

// Sign returns -1 for up and left, +1 for down and right.
func (d Direction) Sign() float64 {
	if d == DirUp || d == DirLeft {
		return -1
	}
	return 1
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Velocity returns a velocity of the given speed in this direction.
func (d Direction) Velocity(speed float64) geom.Vector2 {
	return geom.Vector2{}.With(d.Axis(), d.Sign()*speed)
}

// DirectionOf returns the direction for a signed step on an axis.
func DirectionOf(axis geom.Axis, sign float64) Direction {
	if axis == geom.AxisX {
		if sign < 0 {
			return DirLeft
		}
		return DirRight
	}
	if sign < 0 {
		return DirUp
	}
	return DirDown
}

// DirSet is a small set of directions.
type DirSet uint8

// Add returns the set with d included.
func (s DirSet) Add(d Direction) DirSet { return s | 1<<d }

// Has returns true if d is in the set.
func (s DirSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// OrientationPolicy decides what happens to orientation when a mover stops.
type OrientationPolicy int

const (
	// OrientationHoldLast keeps the last orientation on a full stop.
	OrientationHoldLast OrientationPolicy = iota
	// OrientationRevertUp faces up on a full stop.
	OrientationRevertUp
)

// Mover is the shared movement state of the player and pursuers.
type Mover struct {
	Position    geom.Vector2
	Velocity    geom.Vector2
	Orientation Direction
	Radius      float64
	Speed       float64
	Policy      OrientationPolicy
}

// Bounds returns the box around the mover's circle.
func (m *Mover) Bounds() geom.Bounds {
	return geom.BoundsOf(m.Position, m.Radius)
}

// UpdatePosition advances the position by one tick of velocity.
func (m *Mover) UpdatePosition() {
	m.Position = m.Position.Add(m.Velocity)
	if !m.Position.IsFinite() {
		panic(fmt.Sprintf("entity: non-finite position %+v", m.Position))
	}
}

// UpdateOrientation derives the facing from the resolved velocity.
// Horizontal movement takes precedence over vertical.
func (m *Mover) UpdateOrientation() {
	switch {
	case m.Velocity.X > 0:
		m.Orientation = DirRight
	case m.Velocity.X < 0:
		m.Orientation = DirLeft
	case m.Velocity.Y > 0:
		m.Orientation = DirDown
	case m.Velocity.Y < 0:
		m.Orientation = DirUp
	default:
		if m.Policy == OrientationRevertUp {
			m.Orientation = DirUp
		}
	}
}

// Stop zeroes the velocity.
func (m *Mover) Stop() {
	m.Velocity = geom.Vector2{}
}
