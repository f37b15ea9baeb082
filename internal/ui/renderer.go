package ui

import (
	"fmt"

	"github.com/samdwyer/pelletmaze/internal/entity"
	"github.com/samdwyer/pelletmaze/internal/geom"
	"github.com/samdwyer/pelletmaze/internal/world"
)

// Map placement on screen. Row 0 is the score bar.
const (
	mapLeft = 1
	mapTop  = 2
)

// HUD is the text drawn around the maze.
type HUD struct {
	Score   int
	Status  string // Right side of the score bar
	Message string // Modal line under the maze; empty hides it
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	assets *Assets
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, assets *Assets) *Renderer {
	return &Renderer{screen: screen, assets: assets}
}

// Render draws one frame: walls, remaining items, pursuers, the player and
// the HUD. Each map tile is one terminal cell.
func (r *Renderer) Render(level *world.Level, player *entity.Player, pursuers []*entity.Pursuer, hud HUD) {
	r.screen.Clear()

	layout := level.Layout()
	for row := range layout {
		for col, tile := range layout[row] {
			r.draw(world.CellPos{Col: col, Row: row}, r.assets.Tile(tile))
		}
	}

	for _, p := range level.Pellets() {
		r.drawAt(p.Center, r.assets.Pellet())
	}
	for _, p := range level.PowerUps() {
		r.drawAt(p.Center, r.assets.PowerUp())
	}
	for _, p := range pursuers {
		r.drawAt(p.Position, r.assets.Pursuer(p))
	}
	r.drawAt(player.Position, r.assets.Player(player.Orientation))

	text := r.assets.Text()
	r.screen.DrawText(mapLeft, 0, fmt.Sprintf("SCORE %d", hud.Score), text)
	if hud.Status != "" {
		r.screen.DrawText(mapLeft+layout.Cols()-len(hud.Status), 0, hud.Status, text)
	}
	if hud.Message != "" {
		r.screen.DrawText(mapLeft, mapTop+layout.Rows()+1, hud.Message, text.Bold(true))
	}

	r.screen.Show()
}

func (r *Renderer) drawAt(p geom.Vector2, d Drawable) {
	r.draw(world.CellAt(p), d)
}

func (r *Renderer) draw(c world.CellPos, d Drawable) {
	r.screen.SetContent(mapLeft+c.Col, mapTop+c.Row, d.Rune, d.Style)
}

// ScreenToWorld converts a terminal cell to the world coordinates of the
// center of the map tile drawn there.
func ScreenToWorld(x, y int) geom.Vector2 {
	return world.CellPos{Col: x - mapLeft, Row: y - mapTop}.Center()
}
