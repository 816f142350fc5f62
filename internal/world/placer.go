package world

import "github.com/samdwyer/floorgen/internal/config"

// Outcome records whether a room found a spot on the floor.
type Outcome int

const (
	// Placed means the room was accepted.
	Placed Outcome = iota
	// GaveUp means every placement attempt collided and the room was dropped.
	GaveUp
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case GaveUp:
		return "gave_up"
	default:
		return "unknown"
	}
}

// Placement is the result of placing one requested room. For GaveUp the
// Room carries the drawn size and a zero position.
type Placement struct {
	Outcome  Outcome
	Room     Room
	Attempts int
}

// PlaceRooms draws a room count and room sizes from cfg and rejection-samples
// a position for each room. A room that cannot be placed within cfg.MaxTries
// attempts is dropped, not resized. cfg must already be valid.
func PlaceRooms(cfg config.Config, rng Rand) []Placement {
	count := drawRange(rng, cfg.RoomCount)
	var placements []Placement
	var placed []Room

	for i := 0; i < count; i++ {
		size := Size{
			W: drawRange(rng, cfg.RoomSize),
			H: drawRange(rng, cfg.RoomSize),
		}
		p := placeRoom(cfg, size, placed, rng)
		if p.Outcome == Placed {
			placed = append(placed, p.Room)
		}
		placements = append(placements, p)
	}

	return placements
}

// Rooms returns a fresh slice of the placed rooms in placement order.
func Rooms(placements []Placement) []Room {
	rooms := make([]Room, 0, len(placements))
	for _, p := range placements {
		if p.Outcome == Placed {
			rooms = append(rooms, p.Room)
		}
	}
	return rooms
}

// placeRoom tries up to cfg.MaxTries random positions for a room of size.
func placeRoom(cfg config.Config, size Size, placed []Room, rng Rand) Placement {
	xSpan := positionSpan(cfg.Width, size.W, cfg.Padding)
	ySpan := positionSpan(cfg.Height, size.H, cfg.Padding)

	for attempt := 1; attempt <= cfg.MaxTries; attempt++ {
		x := rng.Intn(xSpan)
		y := rng.Intn(ySpan)
		candidate := NewRoom(x, y, size.W, size.H)
		if !collides(candidate, placed, cfg.Padding) {
			return Placement{Outcome: Placed, Room: candidate, Attempts: attempt}
		}
	}

	return Placement{Outcome: GaveUp, Room: Room{Rect: Rect{Size: size}}, Attempts: cfg.MaxTries}
}

// positionSpan returns how many starting positions exist along one axis.
// Positions are drawn from [0, limit-size-padding); when that range is
// empty the room still fits flush at 0, which Validate guarantees.
func positionSpan(limit, size, padding int) int {
	span := limit - size - padding
	if span < 1 {
		return 1
	}
	return span
}

// collides returns true if candidate sits within padding of any placed room.
func collides(candidate Room, placed []Room, padding int) bool {
	for _, other := range placed {
		if candidate.Intersects(other, padding) {
			return true
		}
	}
	return false
}
