package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/floorgen/internal/world"
)

// Renderer handles drawing floors to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the floor with row y=0 at the top, matching WriteText, and a
// status line underneath. Cells beyond the screen are clipped.
func (r *Renderer) Render(f *world.Floor) {
	r.screen.Clear()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			tile := f.TileAt(world.Point{X: x, Y: y})
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	r.RenderMessage(StatusLine(f), f.Height)
	r.screen.Show()
}

// tileStyle returns the style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileRock:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileHallway:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.TileRoom:
		return tcell.StyleDefault.Background(tcell.ColorBlack)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage writes msg on row y starting at column 0.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// KeyHints lists the viewer's key bindings.
const KeyHints = "[r]egenerate [q]uit"

// Summary describes a floor in one line.
func Summary(f *world.Floor) string {
	return fmt.Sprintf("seed %d  rooms %d/%d  hallways %d  groups %d",
		f.Seed, len(f.Rooms), f.Requested(), len(f.Hallways), len(f.Components()))
}

// StatusLine is the summary followed by the key hints, as shown on screen.
func StatusLine(f *world.Floor) string {
	return Summary(f) + "  " + KeyHints
}
