package world

// Room represents a rectangular room on the floor.
type Room struct {
	Rect            // Bottom-left corner and dimensions
	Connections int // Hallways attached to this room
}

// NewRoom creates an unconnected room.
func NewRoom(x, y, w, h int) Room {
	return Room{Rect: Rect{Pos: Point{X: x, Y: y}, Size: Size{W: w, H: h}}}
}

// Intersects returns true if other sits closer than padding to this room.
func (r Room) Intersects(other Room, padding int) bool {
	return Overlaps(r.Rect, other.Rect, padding)
}
