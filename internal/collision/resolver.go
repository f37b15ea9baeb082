// Package collision decides wall blocking for moving entities and overlap
// between entities.
package collision

import (
	"github.com/samdwyer/pelletmaze/internal/entity"
	"github.com/samdwyer/pelletmaze/internal/geom"
	"github.com/samdwyer/pelletmaze/internal/world"
)

// Collidable is anything with a fixed box, such as a wall segment.
type Collidable interface {
	Bounds() geom.Bounds
}

// Blocked reports whether moving b, grown by padding, by v along axis would
// touch any wall. Walls are checked in order and the first hit wins; its
// index is returned, or -1 when nothing blocks. Touching edges count as a hit.
func Blocked[W Collidable](b geom.Bounds, padding float64, axis geom.Axis, v float64, walls []W) (bool, int) {
	var vx, vy float64
	if axis == geom.AxisX {
		vx = v
	} else {
		vy = v
	}
	moved := b.Pad(padding).Offset(vx, vy)

	for i := range walls {
		if moved.Touches(walls[i].Bounds()) {
			return true, i
		}
	}
	return false, -1
}

// TryMove tests the mover's current velocity on one axis against the walls.
// When blocked, that velocity component is zeroed.
func TryMove[W Collidable](m *entity.Mover, padding float64, axis geom.Axis, walls []W) bool {
	blocked, _ := Blocked(m.Bounds(), padding, axis, m.Velocity.Along(axis), walls)
	if blocked {
		m.Velocity = m.Velocity.With(axis, 0)
	}
	return blocked
}

// RectOverlapRatio returns the area shared by a and b as a fraction of b's
// area. Boxes that only share an edge do not overlap. The result is 1 when b
// lies entirely inside a.
func RectOverlapRatio(a, b geom.Bounds) float64 {
	a.Validate()
	b.Validate()

	rightmostLeft := max(a.Left, b.Left)
	leftmostRight := min(a.Right, b.Right)
	if leftmostRight <= rightmostLeft {
		return 0
	}

	bottommostTop := max(a.Top, b.Top)
	topmostBottom := min(a.Bottom, b.Bottom)
	if topmostBottom <= bottommostTop {
		return 0
	}

	intersection := (leftmostRight - rightmostLeft) * (topmostBottom - bottommostTop)
	return intersection / b.Area()
}

// CirclesHit reports whether two round entities collide.
func CirclesHit(a *entity.Mover, b *entity.Mover) bool {
	return geom.CirclesHit(a.Position, a.Radius, b.Position, b.Radius)
}

// Resolver applies one padding to every wall test in a level.
type Resolver struct {
	padding float64
}

// NewResolver creates a resolver with the given wall clearance.
func NewResolver(padding float64) *Resolver {
	return &Resolver{padding: padding}
}

// Padding returns the wall clearance.
func (r *Resolver) Padding() float64 {
	return r.padding
}

// TryMove is TryMove with the resolver's padding.
func (r *Resolver) TryMove(m *entity.Mover, axis geom.Axis, walls []world.WallSegment) bool {
	return TryMove(m, r.padding, axis, walls)
}

// Open reports whether the mover could take one step at speed in dir.
func (r *Resolver) Open(m *entity.Mover, dir entity.Direction, speed float64, walls []world.WallSegment) bool {
	blocked, _ := Blocked(m.Bounds(), r.padding, dir.Axis(), dir.Sign()*speed, walls)
	return !blocked
}

// BlockedDirections returns the set of directions the mover cannot step in.
func (r *Resolver) BlockedDirections(m *entity.Mover, walls []world.WallSegment) entity.DirSet {
	var set entity.DirSet
	for _, d := range entity.Directions {
		if !r.Open(m, d, m.Speed, walls) {
			set = set.Add(d)
		}
	}
	return set
}
