package world

import "github.com/samdwyer/pelletmaze/internal/geom"

// Cell is the edge length of one map tile in world units.
const Cell = 40.0

// CellPos addresses a tile by grid column and row.
type CellPos struct {
	Col, Row int
}

// Origin returns the world coordinates of the tile's top-left corner.
func (c CellPos) Origin() geom.Vector2 {
	return geom.Vector2{X: float64(c.Col) * Cell, Y: float64(c.Row) * Cell}
}

// Center returns the world coordinates of the tile's center.
func (c CellPos) Center() geom.Vector2 {
	o := c.Origin()
	return geom.Vector2{X: o.X + Cell/2, Y: o.Y + Cell/2}
}

// Bounds returns the tile's box.
func (c CellPos) Bounds() geom.Bounds {
	return geom.RectAt(c.Origin(), Cell, Cell)
}

// CellAt returns the tile containing a world point.
func CellAt(p geom.Vector2) CellPos {
	return CellPos{Col: floorDiv(p.X), Row: floorDiv(p.Y)}
}

func floorDiv(v float64) int {
	i := int(v / Cell)
	if v < 0 && float64(i)*Cell != v {
		i--
	}
	return i
}
