package entity

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pelletmaze/internal/gamedata"
	"github.com/samdwyer/pelletmaze/internal/geom"
)

// Pursuer is a maze enemy. While scared it can be eaten instead of ending
// the game.
type Pursuer struct {
	Mover
	Def    *gamedata.PursuerDef
	Scared bool

	scaredUntil time.Time
	prevBlocked DirSet
	steered     bool
}

// NewPursuer creates a pursuer at spawn, initially heading right.
func NewPursuer(def *gamedata.PursuerDef, spawn geom.Vector2) *Pursuer {
	p := &Pursuer{
		Mover: Mover{
			Position:    spawn,
			Orientation: DirRight,
			Radius:      def.Radius,
			Speed:       def.Speed,
		},
		Def: def,
	}
	p.Velocity = DirRight.Velocity(p.Speed)
	return p
}

// Name returns the pursuer's display name.
func (p *Pursuer) Name() string {
	return p.Def.Name
}

// Frighten marks the pursuer scared until now+d. A second power-up extends
// the deadline.
func (p *Pursuer) Frighten(now time.Time, d time.Duration) {
	p.Scared = true
	p.scaredUntil = now.Add(d)
}

// ScaredUntil returns the scared deadline. It is zero if never frightened.
func (p *Pursuer) ScaredUntil() time.Time {
	return p.scaredUntil
}

// Expire clears the scared state once now has reached the deadline and
// reports whether it did.
func (p *Pursuer) Expire(now time.Time) bool {
	if !p.Scared || now.Before(p.scaredUntil) {
		return false
	}
	p.Scared = false
	return true
}

// Color returns the current tint.
func (p *Pursuer) Color() tcell.Color {
	if p.Scared {
		return p.Def.ScaredTCellColor()
	}
	return p.Def.TCellColor()
}

// Steer picks a new heading whenever the set of blocked directions changes,
// or when the current heading is blocked. It never reverses unless that is
// the only way out, and stops when boxed in.
func (p *Pursuer) Steer(blocked DirSet, rng *rand.Rand) {
	heading := p.Orientation
	if p.steered && blocked == p.prevBlocked && !blocked.Has(heading) {
		return
	}
	p.prevBlocked = blocked
	p.steered = true

	var open []Direction
	for _, d := range Directions {
		if !blocked.Has(d) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		p.Stop()
		return
	}
	if len(open) > 1 {
		forward := open[:0:0]
		for _, d := range open {
			if d != heading.Opposite() {
				forward = append(forward, d)
			}
		}
		open = forward
	}

	next := open[rng.Intn(len(open))]
	p.Orientation = next
	p.Velocity = next.Velocity(p.Speed)
}
