package ui

import (
	"bufio"
	"io"

	"github.com/samdwyer/floorgen/internal/world"
)

// TextOptions controls WriteText output.
type TextOptions struct {
	// ShowHallways draws hallway cells as '#' instead of rock.
	ShowHallways bool
}

// WriteText writes the floor as plain text, one line per row. Rows are
// written in ascending y, so row y=0 comes first. Room cells are spaces and
// everything else is 'O'.
func WriteText(w io.Writer, f *world.Floor, opts TextOptions) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if _, err := bw.WriteRune(textTile(f, world.Point{X: x, Y: y}, opts).Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func textTile(f *world.Floor, p world.Point, opts TextOptions) world.Tile {
	if f.PointInRoom(p) {
		return world.TileRoom
	}
	if opts.ShowHallways && f.PointInHallway(p) {
		return world.TileHallway
	}
	return world.TileRock
}
