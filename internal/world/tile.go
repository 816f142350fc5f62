// Package world provides floor generation: room placement, hallway
// construction and point queries over the result.
package world

// Tile classifies a single grid cell of a floor.
type Tile rune

const (
	// TileRock is solid ground outside every room and hallway.
	TileRock Tile = 'O'
	// TileRoom is open space inside a room.
	TileRoom Tile = ' '
	// TileHallway is a corridor cell.
	TileHallway Tile = '#'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
