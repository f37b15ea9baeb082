package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pelletmaze/internal/entity"
	"github.com/samdwyer/pelletmaze/internal/gamedata"
	"github.com/samdwyer/pelletmaze/internal/world"
)

// Maze palette.
var (
	wallColor    = gamedata.MustParseHexColor("#2121DE")
	pelletColor  = gamedata.MustParseHexColor("#FFB8AE")
	powerUpColor = gamedata.MustParseHexColor("#FFB8FF")
)

// Drawable is one terminal cell's worth of artwork.
type Drawable struct {
	Rune  rune
	Style tcell.Style
}

// Assets maps tiles and entity frames to drawables. Build it once at startup
// and hand it to the renderer.
type Assets struct {
	base     tcell.Style
	tiles    map[world.Tile]Drawable
	pellet   Drawable
	powerUp  Drawable
	player   [4]Drawable
	pursuers map[string]rune
}

// NewAssets builds the drawables for a player and a set of pursuers.
func NewAssets(player *gamedata.PlayerDef, pursuers *gamedata.PursuerRegistry) *Assets {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	a := &Assets{
		base:     base,
		tiles:    make(map[world.Tile]Drawable, len(world.WallTiles)),
		pellet:   Drawable{Rune: '·', Style: base.Foreground(pelletColor)},
		powerUp:  Drawable{Rune: '●', Style: base.Foreground(powerUpColor).Bold(true)},
		pursuers: make(map[string]rune, pursuers.Count()),
	}

	wall := base.Foreground(wallColor)
	for _, t := range world.WallTiles {
		a.tiles[t] = Drawable{Rune: t.Rune(), Style: wall}
	}

	// The mouth opens toward the heading.
	playerStyle := base.Foreground(player.TCellColor()).Bold(true)
	a.player[entity.DirUp] = Drawable{Rune: 'v', Style: playerStyle}
	a.player[entity.DirRight] = Drawable{Rune: '<', Style: playerStyle}
	a.player[entity.DirDown] = Drawable{Rune: '^', Style: playerStyle}
	a.player[entity.DirLeft] = Drawable{Rune: '>', Style: playerStyle}

	for _, def := range pursuers.All() {
		a.pursuers[def.ID] = def.GlyphRune()
	}
	return a
}

// Tile returns the drawable for a wall tile. Pellets, power-ups and empty
// floor draw as blank; items are drawn from the live level instead.
func (a *Assets) Tile(t world.Tile) Drawable {
	if d, ok := a.tiles[t]; ok {
		return d
	}
	return Drawable{Rune: ' ', Style: a.base}
}

// Pellet returns the pellet drawable.
func (a *Assets) Pellet() Drawable { return a.pellet }

// PowerUp returns the power-up drawable.
func (a *Assets) PowerUp() Drawable { return a.powerUp }

// Player returns the player frame for a heading.
func (a *Assets) Player(dir entity.Direction) Drawable {
	if dir < 0 || int(dir) >= len(a.player) {
		dir = entity.DirRight
	}
	return a.player[dir]
}

// Pursuer returns a pursuer's frame in its current tint.
func (a *Assets) Pursuer(p *entity.Pursuer) Drawable {
	glyph, ok := a.pursuers[p.Def.ID]
	if !ok {
		glyph = p.Def.GlyphRune()
	}
	return Drawable{Rune: glyph, Style: a.base.Foreground(p.Color()).Bold(true)}
}

// Text returns the style for status text.
func (a *Assets) Text() tcell.Style {
	return a.base.Foreground(tcell.ColorWhite)
}
