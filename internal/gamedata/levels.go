package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pelletmaze/internal/world"
)

// GridPoint is a tile address as written in levels.json.
type GridPoint struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// CellPos converts the point to a world cell.
func (g GridPoint) CellPos() world.CellPos {
	return world.CellPos{Col: g.Col, Row: g.Row}
}

// LevelDef is one maze with its spawn points.
//
// Rows use the box-drawing legend from world.Tile:
//
//	║ ═        vertical / horizontal pipe
//	╔ ╗ ╚ ╝    corners
//	╬ ╦ ╩ ╠ ╣  cross and connectors
//	■          block
//	[ ] ^ _    caps
//	.          pellet
//	P          power-up
//
// Any other character is empty floor.
type LevelDef struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Rows          []string    `json:"rows"`
	Player        GridPoint   `json:"player"`
	PursuerSpawns []GridPoint `json:"pursuerSpawns"`
}

// Layout parses the level's rows.
func (l *LevelDef) Layout() world.Layout {
	return world.ParseLayout(l.Rows)
}

// Validate checks that the layout is non-empty and every spawn is on open floor.
func (l *LevelDef) Validate() error {
	if l.ID == "" {
		return errors.New("level validation: id is required")
	}
	layout := l.Layout()
	if layout.Rows() == 0 || layout.Cols() == 0 {
		return fmt.Errorf("level validation: %s has an empty layout", l.ID)
	}
	if err := checkSpawn(layout, l.Player, "player"); err != nil {
		return fmt.Errorf("level validation: %s: %w", l.ID, err)
	}
	if len(l.PursuerSpawns) == 0 {
		return fmt.Errorf("level validation: %s has no pursuer spawns", l.ID)
	}
	for i, spawn := range l.PursuerSpawns {
		if err := checkSpawn(layout, spawn, fmt.Sprintf("pursuer spawn %d", i)); err != nil {
			return fmt.Errorf("level validation: %s: %w", l.ID, err)
		}
	}
	return nil
}

func checkSpawn(layout world.Layout, p GridPoint, what string) error {
	if p.Row < 0 || p.Row >= layout.Rows() || p.Col < 0 || p.Col >= len(layout[p.Row]) {
		return fmt.Errorf("%s (%d,%d) is outside the grid", what, p.Col, p.Row)
	}
	if tile := layout.At(p.CellPos()); tile.IsWall() {
		return fmt.Errorf("%s (%d,%d) is on a wall (%v)", what, p.Col, p.Row, tile)
	}
	return nil
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
