package entity

import (
	"math"

	"github.com/samdwyer/pelletmaze/internal/geom"
)

// Hold is the sign of a held directional input on one axis.
type Hold int8

const (
	HoldNone     Hold = 0
	HoldNegative Hold = -1
	HoldPositive Hold = 1
)

// PointerPress describes a pointer event.
type PointerPress int

const (
	PointerDown PointerPress = iota
	PointerMove
	PointerUp
)

// String returns the event name.
func (p PointerPress) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Player is the controllable actor.
type Player struct {
	Mover
	Spawn geom.Vector2 // Center to return to on reset

	// LastInput is the most recently chosen direction. Its axis wins when
	// both axes could move.
	LastInput Direction

	xHeld, yHeld Hold
	pointerDown  bool
}

// NewPlayer creates a player facing right at its spawn point.
func NewPlayer(spawn geom.Vector2, radius, speed float64) *Player {
	p := &Player{
		Mover: Mover{Radius: radius, Speed: speed},
		Spawn: spawn,
	}
	p.Reset()
	return p
}

// Reset returns the player to its spawn with no velocity and no held input.
func (p *Player) Reset() {
	p.Position = p.Spawn
	p.Orientation = DirRight
	p.LastInput = DirRight
	p.Kill()
}

// Kill drops all input and stops the player.
func (p *Player) Kill() {
	p.xHeld = HoldNone
	p.yHeld = HoldNone
	p.pointerDown = false
	p.Stop()
}

// Held returns the held input on an axis.
func (p *Player) Held(axis geom.Axis) Hold {
	if axis == geom.AxisX {
		return p.xHeld
	}
	return p.yHeld
}

func (p *Player) setHeld(axis geom.Axis, h Hold) {
	if axis == geom.AxisX {
		p.xHeld = h
	} else {
		p.yHeld = h
	}
}

// PointerDown reports whether a pointer press is in progress.
func (p *Player) PointerDown() bool {
	return p.pointerDown
}

// ApplyDirection handles a discrete key press or release. A release only
// clears its axis if that axis still holds the released direction, so a
// stale key-up cannot cancel a newer key-down on the same axis.
func (p *Player) ApplyDirection(dir Direction, pressed bool) {
	axis := dir.Axis()
	sign := Hold(dir.Sign())
	if pressed {
		p.setHeld(axis, sign)
		p.LastInput = dir
		return
	}
	if p.Held(axis) == sign {
		p.setHeld(axis, HoldNone)
	}
}

// ApplyPointer handles a pointer event at world coordinates (x, y).
//
// While the pointer is down, its offset from the player's center picks
// exactly one axis. A pointer inside the vertical band (|dx| < radius) means
// vertical, inside the horizontal band means horizontal, and otherwise the
// larger offset wins with ties going horizontal.
func (p *Player) ApplyPointer(press PointerPress, x, y float64) {
	switch press {
	case PointerDown:
		p.pointerDown = true
		p.steerToward(x, y)
	case PointerMove:
		if p.pointerDown {
			p.steerToward(x, y)
		}
	case PointerUp:
		p.Kill()
	}
}

func (p *Player) steerToward(x, y float64) {
	dx := x - p.Position.X
	dy := y - p.Position.Y

	var axis geom.Axis
	switch {
	case math.Abs(dx) < p.Radius:
		axis = geom.AxisY
	case math.Abs(dy) < p.Radius:
		axis = geom.AxisX
	case math.Abs(dx) >= math.Abs(dy):
		axis = geom.AxisX
	default:
		axis = geom.AxisY
	}

	offset := dx
	if axis == geom.AxisY {
		offset = dy
	}
	p.setHeld(axis.Other(), HoldNone)
	p.setHeld(axis, Hold(geom.Sign(offset)))
	if offset != 0 {
		p.LastInput = DirectionOf(axis, offset)
	}
}

// ResolveVelocity sets each held axis to full speed in the held direction.
// An axis with nothing held keeps whatever velocity it had.
func (p *Player) ResolveVelocity() {
	if p.xHeld != HoldNone {
		p.Velocity.X = float64(p.xHeld) * p.Speed
	}
	if p.yHeld != HoldNone {
		p.Velocity.Y = float64(p.yHeld) * p.Speed
	}
}

// AxisOrder returns the axes in the order they should be tested against walls.
// The axis of the last input comes first.
func (p *Player) AxisOrder() [2]geom.Axis {
	primary := p.LastInput.Axis()
	return [2]geom.Axis{primary, primary.Other()}
}

// KeepPrimaryAxis enforces single-axis movement. If both velocity components
// survived the wall tests, the secondary one is dropped.
func (p *Player) KeepPrimaryAxis() {
	if p.Velocity.X == 0 || p.Velocity.Y == 0 {
		return
	}
	secondary := p.LastInput.Axis().Other()
	p.Velocity = p.Velocity.With(secondary, 0)
}
