package world

// Direction is one of the four axis directions a hallway can run in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step for the direction. Up increases Y.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{Y: 1}
	case Down:
		return Point{Y: -1}
	case Left:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

// Vertical returns true for Up and Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Hallway is a straight one-cell-wide corridor. It starts on the first cell
// outside its source room and runs Length cells in Direction, ending on the
// first cell outside its target room.
type Hallway struct {
	Start     Point
	Direction Direction
	Length    int

	Source, Target int  // Indices into Floor.Rooms
	From, To       Rect // Endpoint room geometry when the hallway was built
}

// End returns the last cell of the hallway.
func (h Hallway) End() Point {
	d := h.Direction.Delta()
	n := h.Length - 1
	return Point{X: h.Start.X + d.X*n, Y: h.Start.Y + d.Y*n}
}

// Box returns the cells covered by the hallway as a rectangle.
func (h Hallway) Box() Rect {
	end := h.End()
	pos := Point{X: min(h.Start.X, end.X), Y: min(h.Start.Y, end.Y)}
	if h.Direction.Vertical() {
		return Rect{Pos: pos, Size: Size{W: 1, H: h.Length}}
	}
	return Rect{Pos: pos, Size: Size{W: h.Length, H: 1}}
}

// Contains returns true if p is one of the hallway's cells.
func (h Hallway) Contains(p Point) bool {
	return h.Box().Contains(p)
}

// exitPoint returns the first cell outside r in direction d, at perpendicular
// coordinate perp.
func exitPoint(r Rect, d Direction, perp int) Point {
	switch d {
	case Up:
		return Point{X: perp, Y: r.Max().Y}
	case Down:
		return Point{X: perp, Y: r.Pos.Y - 1}
	case Left:
		return Point{X: r.Pos.X - 1, Y: perp}
	default:
		return Point{X: r.Max().X, Y: perp}
	}
}
