package world

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pelletmaze/internal/geom"
	"github.com/samdwyer/pelletmaze/internal/telemetry"
)

const (
	// PelletRadius is the hit radius of a pellet.
	PelletRadius = 3.0
	// PelletPoints is awarded for each pellet eaten.
	PelletPoints = 10

	// PowerUpRadius is the hit radius of a power-up.
	PowerUpRadius = 8.0
	// PowerUpPoints is awarded for each power-up eaten.
	PowerUpPoints = 50
)

// Layout is a parsed symbolic map, indexed [row][col].
type Layout [][]Tile

// ParseLayout converts text rows into tiles. Rows may differ in length.
func ParseLayout(rows []string) Layout {
	layout := make(Layout, len(rows))
	for i, row := range rows {
		tiles := make([]Tile, 0, len(row))
		for _, r := range row {
			tiles = append(tiles, ParseTile(r))
		}
		layout[i] = tiles
	}
	return layout
}

// Rows returns the number of rows.
func (l Layout) Rows() int {
	return len(l)
}

// Cols returns the length of the longest row.
func (l Layout) Cols() int {
	cols := 0
	for _, row := range l {
		cols = max(cols, len(row))
	}
	return cols
}

// At returns the tile at a position, or TileEmpty outside the grid.
func (l Layout) At(c CellPos) Tile {
	if c.Row < 0 || c.Row >= len(l) || c.Col < 0 || c.Col >= len(l[c.Row]) {
		return TileEmpty
	}
	return l[c.Row][c.Col]
}

// WallSegment is one impassable tile of the maze.
type WallSegment struct {
	Code   Tile
	Origin geom.Vector2
}

// Bounds returns the segment's box. Every segment is Cell wide and tall.
func (w WallSegment) Bounds() geom.Bounds {
	return geom.RectAt(w.Origin, Cell, Cell)
}

// Pellet is a point item sitting at a tile center.
type Pellet struct {
	Center geom.Vector2
}

// PowerUp frightens pursuers when eaten.
type PowerUp struct {
	Center geom.Vector2
}

// Build converts a layout into walls, pellets and power-ups in row-major order.
func Build(layout Layout) (walls []WallSegment, pellets []Pellet, powerUps []PowerUp) {
	for i, row := range layout {
		for j, tile := range row {
			pos := CellPos{Col: j, Row: i}
			switch {
			case tile.IsWall():
				walls = append(walls, WallSegment{Code: tile, Origin: pos.Origin()})
			case tile == TileFloor:
				pellets = append(pellets, Pellet{Center: pos.Center()})
			case tile == TilePower:
				powerUps = append(powerUps, PowerUp{Center: pos.Center()})
			}
		}
	}
	return walls, pellets, powerUps
}

// Level owns the live walls and items for one playthrough of a layout.
type Level struct {
	layout   Layout
	walls    []WallSegment
	pellets  []Pellet
	powerUps []PowerUp
}

// NewLevel builds a level from a layout.
func NewLevel(ctx context.Context, layout Layout) *Level {
	l := &Level{layout: layout}
	l.Restart(ctx)
	return l
}

// Restart discards all walls and items and rebuilds them from the layout.
// Two restarts in a row produce identical contents.
func (l *Level) Restart(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.build")
	defer span.End()

	l.walls, l.pellets, l.powerUps = Build(l.layout)

	span.SetAttributes(
		attribute.Int("level.rows", l.layout.Rows()),
		attribute.Int("level.cols", l.layout.Cols()),
		attribute.Int("level.walls", len(l.walls)),
		attribute.Int("level.pellets", len(l.pellets)),
		attribute.Int("level.power_ups", len(l.powerUps)),
	)
}

// Layout returns the symbolic map the level was built from.
func (l *Level) Layout() Layout { return l.layout }

// Walls returns the wall segments in build order. Callers must not modify it.
func (l *Level) Walls() []WallSegment { return l.walls }

// Pellets returns the remaining pellets.
func (l *Level) Pellets() []Pellet { return l.pellets }

// PowerUps returns the remaining power-ups.
func (l *Level) PowerUps() []PowerUp { return l.powerUps }

// Width returns the map width in world units.
func (l *Level) Width() float64 { return float64(l.layout.Cols()) * Cell }

// Height returns the map height in world units.
func (l *Level) Height() float64 { return float64(l.layout.Rows()) * Cell }

// Bounds returns the map rectangle.
func (l *Level) Bounds() geom.Bounds {
	return geom.RectAt(geom.Vector2{}, l.Width(), l.Height())
}

// Cleared returns true once every pellet and power-up has been eaten.
func (l *Level) Cleared() bool {
	return len(l.pellets) == 0 && len(l.powerUps) == 0
}

// RemovePellets drops the pellets at the given indexes, keeping the order of
// the rest. Call only between ticks.
func (l *Level) RemovePellets(indexes []int) {
	l.pellets = removeIndexes(l.pellets, indexes)
}

// RemovePowerUps drops the power-ups at the given indexes.
func (l *Level) RemovePowerUps(indexes []int) {
	l.powerUps = removeIndexes(l.powerUps, indexes)
}

func removeIndexes[T any](items []T, indexes []int) []T {
	if len(indexes) == 0 {
		return items
	}
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		drop[i] = true
	}
	kept := make([]T, 0, len(items))
	for i, item := range items {
		if !drop[i] {
			kept = append(kept, item)
		}
	}
	return slices.Clip(kept)
}
