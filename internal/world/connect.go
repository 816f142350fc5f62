package world

import "github.com/samdwyer/floorgen/internal/config"

// Rejection explains why a hallway attempt was discarded.
type Rejection int

const (
	RejectNone Rejection = iota
	// RejectSelf: the drawn target was the source room.
	RejectSelf
	// RejectDirections: the end direction was not opposite the start direction.
	RejectDirections
	// RejectGeometry: the rooms do not face each other along the start direction.
	RejectGeometry
	// RejectBlocked: the corridor would cut through another room.
	RejectBlocked
)

// String returns a human-readable rejection name.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectSelf:
		return "self"
	case RejectDirections:
		return "directions"
	case RejectGeometry:
		return "geometry"
	case RejectBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// ConnectReport counts hallway attempts by outcome.
type ConnectReport struct {
	Attempts   int
	Accepted   int
	Self       int
	Directions int
	Geometry   int
	Blocked    int
}

// Discarded returns the number of rejected attempts.
func (r ConnectReport) Discarded() int {
	return r.Self + r.Directions + r.Geometry + r.Blocked
}

func (r *ConnectReport) record(reason Rejection) {
	r.Attempts++
	switch reason {
	case RejectNone:
		r.Accepted++
	case RejectSelf:
		r.Self++
	case RejectDirections:
		r.Directions++
	case RejectGeometry:
		r.Geometry++
	case RejectBlocked:
		r.Blocked++
	}
}

// Connect attaches hallways between rooms. Every room draws an attempt count
// from attempts, and each attempt draws a target room and a start and end
// direction. Accepted hallways bump Connections on both endpoint rooms;
// rejected attempts leave rooms untouched. Connect owns rooms for the
// duration of the call.
func Connect(rooms []Room, rng Rand, attempts config.Range) ([]Hallway, ConnectReport) {
	var hallways []Hallway
	var report ConnectReport

	if len(rooms) == 0 {
		return hallways, report
	}

	for i := range rooms {
		n := drawRange(rng, attempts)
		for k := 0; k < n; k++ {
			target := rng.Intn(len(rooms))
			start := Direction(rng.Intn(4))
			end := Direction(rng.Intn(4))

			h, reason := planHallway(rooms, i, target, start, end, rng)
			report.record(reason)
			if reason != RejectNone {
				continue
			}

			hallways = append(hallways, h)
			rooms[i].Connections++
			rooms[target].Connections++
		}
	}

	return hallways, report
}

// planHallway builds the straight corridor from rooms[source] to
// rooms[target]. Only opposite direction pairs produce a corridor: the
// hallway leaves the source heading start and enters the target from its
// end side. The crossing coordinate is drawn from the span both rooms share
// perpendicular to the corridor.
func planHallway(rooms []Room, source, target int, start, end Direction, rng Rand) (Hallway, Rejection) {
	if source == target {
		return Hallway{}, RejectSelf
	}
	if end != start.Opposite() {
		return Hallway{}, RejectDirections
	}

	src, dst := rooms[source].Rect, rooms[target].Rect

	var lo, hi int
	if start.Vertical() {
		lo, hi = max(src.Pos.X, dst.Pos.X), min(src.Max().X, dst.Max().X)
	} else {
		lo, hi = max(src.Pos.Y, dst.Pos.Y), min(src.Max().Y, dst.Max().Y)
	}
	if lo >= hi {
		return Hallway{}, RejectGeometry
	}
	perp := lo + rng.Intn(hi-lo)

	from := exitPoint(src, start, perp)
	to := exitPoint(dst, end, perp)

	var length int
	switch start {
	case Up:
		length = to.Y - from.Y + 1
	case Down:
		length = from.Y - to.Y + 1
	case Left:
		length = from.X - to.X + 1
	default:
		length = to.X - from.X + 1
	}
	if length < 1 {
		return Hallway{}, RejectGeometry
	}

	h := Hallway{
		Start:     from,
		Direction: start,
		Length:    length,
		Source:    source,
		Target:    target,
		From:      src,
		To:        dst,
	}

	box := h.Box()
	for j, room := range rooms {
		if j == source || j == target {
			continue
		}
		if Overlaps(box, room.Rect, 0) {
			return Hallway{}, RejectBlocked
		}
	}

	return h, RejectNone
}
