package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PlayerDef holds the player's tuning, loaded from player.json.
type PlayerDef struct {
	Radius float64 `json:"radius"` // Hit radius in world units
	Speed  float64 `json:"speed"`  // Distance moved per tick
	Color  string  `json:"color"`  // Hex tint
}

// TCellColor returns the player's tint.
func (p *PlayerDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorYellow)
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("player.json: %w", err)
	}
	return &def, nil
}

// Validate checks the tuning and that the tint, if set, is a hex color.
func (p *PlayerDef) Validate() error {
	if p.Radius <= 0 || p.Speed <= 0 {
		return errors.New("player needs a positive radius and speed")
	}
	return checkColor("color", p.Color)
}

// PursuerDef defines one pursuer, loaded from pursuers.json.
type PursuerDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "blinky")
	Name        string  `json:"name"`        // Display name
	Glyph       string  `json:"glyph"`       // Single character for rendering
	Color       string  `json:"color"`       // Hex tint while hunting
	ScaredColor string  `json:"scaredColor"` // Hex tint while scared
	Radius      float64 `json:"radius"`      // Hit radius in world units
	Speed       float64 `json:"speed"`       // Distance moved per tick
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PursuerDef) GlyphRune() rune {
	for _, r := range p.Glyph {
		return r
	}
	return 'M'
}

// TCellColor returns the hunting tint.
func (p *PursuerDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorRed)
}

// ScaredTCellColor returns the tint used while the pursuer is scared.
func (p *PursuerDef) ScaredTCellColor() tcell.Color {
	return colorOr(p.ScaredColor, tcell.ColorBlue)
}

// Validate checks the tuning and both tints.
func (p *PursuerDef) Validate() error {
	if p.Radius <= 0 || p.Speed <= 0 {
		return fmt.Errorf("pursuer %q needs a positive radius and speed", p.ID)
	}
	if err := checkColor("color", p.Color); err != nil {
		return fmt.Errorf("pursuer %q: %w", p.ID, err)
	}
	if err := checkColor("scaredColor", p.ScaredColor); err != nil {
		return fmt.Errorf("pursuer %q: %w", p.ID, err)
	}
	return nil
}

// PursuersFile represents the structure of pursuers.json.
type PursuersFile struct {
	Pursuers []PursuerDef `json:"pursuers"`
}

// LoadPursuers loads pursuer definitions from the embedded pursuers.json file.
func LoadPursuers() ([]PursuerDef, error) {
	file, err := Load[PursuersFile]("pursuers.json")
	if err != nil {
		return nil, err
	}
	return file.Pursuers, nil
}
