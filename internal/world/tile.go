// Package world provides maze layout parsing and the level geometry built from it.
package world

// Tile represents a single symbolic map cell.
type Tile rune

const (
	TileWallHorizontal    Tile = '═'
	TileWallVertical      Tile = '║'
	TileCornerTopLeft     Tile = '╔'
	TileCornerTopRight    Tile = '╗'
	TileCornerBottomLeft  Tile = '╚'
	TileCornerBottomRight Tile = '╝'
	TileCross             Tile = '╬'
	TileConnectorTop      Tile = '╩'
	TileConnectorBottom   Tile = '╦'
	TileConnectorLeft     Tile = '╣'
	TileConnectorRight    Tile = '╠'
	TileBlock             Tile = '■'
	TileCapLeft           Tile = '['
	TileCapRight          Tile = ']'
	TileCapTop            Tile = '^'
	TileCapBottom         Tile = '_'

	// TileFloor holds a pellet.
	TileFloor Tile = '.'
	// TilePower holds a power-up.
	TilePower Tile = 'P'
	// TileEmpty is passable space with nothing on it.
	TileEmpty Tile = ' '
)

// WallTiles lists every wall code in a stable order.
var WallTiles = []Tile{
	TileWallHorizontal, TileWallVertical,
	TileCornerTopLeft, TileCornerTopRight, TileCornerBottomLeft, TileCornerBottomRight,
	TileCross, TileConnectorTop, TileConnectorBottom, TileConnectorLeft, TileConnectorRight,
	TileBlock, TileCapLeft, TileCapRight, TileCapTop, TileCapBottom,
}

// ParseTile maps a layout rune to its tile. Unknown runes are empty space.
func ParseTile(r rune) Tile {
	t := Tile(r)
	if t.IsWall() || t == TileFloor || t == TilePower {
		return t
	}
	return TileEmpty
}

// IsWall returns true if the tile produces a wall segment.
func (t Tile) IsWall() bool {
	switch t {
	case TileWallHorizontal, TileWallVertical,
		TileCornerTopLeft, TileCornerTopRight, TileCornerBottomLeft, TileCornerBottomRight,
		TileCross, TileConnectorTop, TileConnectorBottom, TileConnectorLeft, TileConnectorRight,
		TileBlock, TileCapLeft, TileCapRight, TileCapTop, TileCapBottom:
		return true
	}
	return false
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.IsWall()
}

// Rune returns the tile's layout character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWallHorizontal:
		return "pipe_horizontal"
	case TileWallVertical:
		return "pipe_vertical"
	case TileCornerTopLeft:
		return "corner_top_left"
	case TileCornerTopRight:
		return "corner_top_right"
	case TileCornerBottomLeft:
		return "corner_bottom_left"
	case TileCornerBottomRight:
		return "corner_bottom_right"
	case TileCross:
		return "cross"
	case TileConnectorTop:
		return "connector_top"
	case TileConnectorBottom:
		return "connector_bottom"
	case TileConnectorLeft:
		return "connector_left"
	case TileConnectorRight:
		return "connector_right"
	case TileBlock:
		return "block"
	case TileCapLeft:
		return "cap_left"
	case TileCapRight:
		return "cap_right"
	case TileCapTop:
		return "cap_top"
	case TileCapBottom:
		return "cap_bottom"
	case TileFloor:
		return "floor"
	case TilePower:
		return "power"
	default:
		return "empty"
	}
}
