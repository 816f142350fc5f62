package world

import (
	"context"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/floorgen/internal/config"
	"github.com/samdwyer/floorgen/internal/telemetry"
)

// Floor is a generated level: a bounded grid with rooms and the hallways
// between them. It is read-only once Generate returns.
type Floor struct {
	Width  int
	Height int
	Seed   uint64

	Rooms      []Room
	Hallways   []Hallway
	Placements []Placement // One per requested room, in draw order
	Report     ConnectReport
}

// Generate validates cfg and builds a floor from a math/rand source seeded
// with seed. The same cfg and seed always produce the same floor. An invalid
// cfg is reported before any random number is drawn.
func Generate(ctx context.Context, cfg config.Config, seed uint64) (*Floor, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "floor.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	startTime := time.Now()

	rng := rand.New(rand.NewSource(int64(seed)))
	f := Build(cfg, rng)
	f.Seed = seed

	span.SetAttributes(
		attribute.Int("floor.width", f.Width),
		attribute.Int("floor.height", f.Height),
		attribute.Int64("floor.seed", int64(seed)),
		attribute.Int("floor.rooms_requested", f.Requested()),
		attribute.Int("floor.rooms_placed", len(f.Rooms)),
		attribute.Int("floor.rooms_dropped", f.Dropped()),
		attribute.Int("floor.hallways", len(f.Hallways)),
		attribute.Int("floor.hallways_discarded", f.Report.Discarded()),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return f, nil
}

// Build runs room placement and then hallway construction against rng.
// cfg must already be valid.
func Build(cfg config.Config, rng Rand) *Floor {
	placements := PlaceRooms(cfg, rng)
	rooms := Rooms(placements)
	hallways, report := Connect(rooms, rng, cfg.HallwayAttempts)

	return &Floor{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Rooms:      rooms,
		Hallways:   hallways,
		Placements: placements,
		Report:     report,
	}
}

// Requested returns the room count drawn before placement.
func (f *Floor) Requested() int {
	return len(f.Placements)
}

// Dropped returns how many requested rooms gave up on placement. Callers
// needing an exact room count should regenerate with another seed when this
// is non-zero.
func (f *Floor) Dropped() int {
	return f.Requested() - len(f.Rooms)
}

// PointInRoom returns true if p lies inside at least one room.
func (f *Floor) PointInRoom(p Point) bool {
	return f.RoomAt(p) >= 0
}

// RoomAt returns the index of the room containing p, or -1 if none does.
func (f *Floor) RoomAt(p Point) int {
	for i, room := range f.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// PointInHallway returns true if p is a hallway cell.
func (f *Floor) PointInHallway(p Point) bool {
	for _, h := range f.Hallways {
		if h.Contains(p) {
			return true
		}
	}
	return false
}

// InBounds returns true if p lies on the floor grid.
func (f *Floor) InBounds(p Point) bool {
	return PointInBox(p, Point{}, Size{W: f.Width, H: f.Height})
}

// TileAt classifies the cell at p. Cells off the grid are rock.
func (f *Floor) TileAt(p Point) Tile {
	switch {
	case !f.InBounds(p):
		return TileRock
	case f.PointInRoom(p):
		return TileRoom
	case f.PointInHallway(p):
		return TileHallway
	default:
		return TileRock
	}
}

// Components groups room indices that reach each other through hallways.
// Groups are ordered by their lowest room index and list rooms in visit order.
func (f *Floor) Components() [][]int {
	adjacent := make([][]int, len(f.Rooms))
	for _, h := range f.Hallways {
		adjacent[h.Source] = append(adjacent[h.Source], h.Target)
		adjacent[h.Target] = append(adjacent[h.Target], h.Source)
	}

	visited := mapset.New[int]()
	var groups [][]int
	for root := range f.Rooms {
		if visited.Has(root) {
			continue
		}
		visited.Put(root)
		group := []int{}
		queue := []int{root}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			group = append(group, current)
			for _, next := range adjacent[current] {
				if !visited.Has(next) {
					visited.Put(next)
					queue = append(queue, next)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// Connected returns true if every room can reach every other room.
func (f *Floor) Connected() bool {
	return len(f.Components()) <= 1
}
