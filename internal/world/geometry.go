package world

// Point is a grid coordinate. Y grows upward from the floor's bottom edge.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in grid units.
type Size struct {
	W, H int
}

// Rect is an axis-aligned box anchored at its bottom-left corner.
// It covers [Pos.X, Pos.X+Size.W) x [Pos.Y, Pos.Y+Size.H).
type Rect struct {
	Pos  Point
	Size Size
}

// Max returns the exclusive upper corner of the box.
func (r Rect) Max() Point {
	return Point{X: r.Pos.X + r.Size.W, Y: r.Pos.Y + r.Size.H}
}

// Contains reports whether p lies inside the box. The upper edges are open,
// so a point exactly on Max().X or Max().Y is outside.
func (r Rect) Contains(p Point) bool {
	return PointInBox(p, r.Pos, r.Size)
}

// Padded returns the box grown by padding units on every side.
func (r Rect) Padded(padding int) Rect {
	return Rect{
		Pos:  Point{X: r.Pos.X - padding, Y: r.Pos.Y - padding},
		Size: Size{W: r.Size.W + 2*padding, H: r.Size.H + 2*padding},
	}
}

// Overlaps reports whether candidate intersects existing once existing is
// grown by padding on every side. Only the existing box is padded, so two
// boxes that pass this test are at least padding units apart.
func Overlaps(candidate, existing Rect, padding int) bool {
	e := existing.Padded(padding)
	c := candidate
	return c.Pos.X < e.Max().X &&
		c.Max().X > e.Pos.X &&
		c.Pos.Y < e.Max().Y &&
		c.Max().Y > e.Pos.Y
}

// PointInBox reports whether point lies in the half-open box at pos with size.
func PointInBox(point, pos Point, size Size) bool {
	return point.X >= pos.X && point.X < pos.X+size.W &&
		point.Y >= pos.Y && point.Y < pos.Y+size.H
}
