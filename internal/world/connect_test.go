package world

import (
	"testing"

	"github.com/samdwyer/floorgen/internal/config"
)

var oneAttempt = config.Range{Min: 1, Max: 2}

func TestConnectStraightHallway(t *testing.T) {
	rooms := []Room{
		NewRoom(0, 0, 5, 5),  // A
		NewRoom(0, 10, 5, 5), // B, directly above A
	}
	rng := newScriptedRand(t,
		// room A: one attempt, target B, Up/Down, crossing x = 2
		0, 1, int(Up), int(Down), 2,
		// room B: one attempt, targets itself
		0, 1, int(Up), int(Down),
	)

	hallways, report := Connect(rooms, rng, oneAttempt)

	if len(hallways) != 1 {
		t.Fatalf("got %d hallways, want 1", len(hallways))
	}
	h := hallways[0]
	if h.Start != (Point{X: 2, Y: 5}) {
		t.Errorf("start = %+v, want (2,5)", h.Start)
	}
	if h.Direction != Up {
		t.Errorf("direction = %v, want up", h.Direction)
	}
	if h.Length != 5 {
		t.Errorf("length = %d, want 5", h.Length)
	}
	if h.End() != (Point{X: 2, Y: 9}) {
		t.Errorf("end = %+v, want (2,9)", h.End())
	}
	if h.Source != 0 || h.Target != 1 {
		t.Errorf("endpoints = %d->%d, want 0->1", h.Source, h.Target)
	}
	if h.From != rooms[0].Rect || h.To != rooms[1].Rect {
		t.Errorf("hallway geometry copies do not match the rooms")
	}

	if rooms[0].Connections != 1 || rooms[1].Connections != 1 {
		t.Errorf("connections = %d,%d, want 1,1", rooms[0].Connections, rooms[1].Connections)
	}
	if report.Attempts != 2 || report.Accepted != 1 || report.Self != 1 {
		t.Errorf("report = %+v, want 2 attempts, 1 accepted, 1 self", report)
	}
}

func TestConnectRejectsBlockedHallway(t *testing.T) {
	rooms := []Room{
		NewRoom(0, 0, 5, 5),  // A
		NewRoom(0, 6, 5, 2),  // C, between A and B
		NewRoom(0, 10, 5, 5), // B
	}
	rng := newScriptedRand(t,
		0, 2, int(Up), int(Down), 2, // A -> B through C
		0, 1, int(Up), int(Up), // C -> C
		0, 2, int(Up), int(Up), // B -> B
	)

	hallways, report := Connect(rooms, rng, oneAttempt)

	if len(hallways) != 0 {
		t.Fatalf("got %d hallways, want 0", len(hallways))
	}
	if report.Blocked != 1 || report.Self != 2 {
		t.Errorf("report = %+v, want 1 blocked, 2 self", report)
	}
	for i, r := range rooms {
		if r.Connections != 0 {
			t.Errorf("room %d has %d connections after rejected attempts", i, r.Connections)
		}
	}
}

func TestConnectRejectsMismatchedDirections(t *testing.T) {
	rooms := []Room{NewRoom(0, 0, 5, 5), NewRoom(0, 10, 5, 5)}
	rng := newScriptedRand(t,
		0, 1, int(Up), int(Up),
		0, 1, int(Left), int(Right),
	)

	hallways, report := Connect(rooms, rng, oneAttempt)

	if len(hallways) != 0 {
		t.Fatalf("got %d hallways, want 0", len(hallways))
	}
	if report.Directions != 1 || report.Self != 1 {
		t.Errorf("report = %+v, want 1 directions, 1 self", report)
	}
}

func TestConnectRejectsRoomsThatDoNotFace(t *testing.T) {
	rooms := []Room{
		NewRoom(0, 0, 5, 5),
		NewRoom(20, 10, 5, 5), // no shared x or y span
		NewRoom(0, 20, 5, 5),
	}
	rng := newScriptedRand(t,
		0, 1, int(Up), int(Down), // no shared x span
		0, 1, int(Up), int(Down), // self
		0, 0, int(Up), int(Down), 3, // room 0 is below room 2, not above
	)

	hallways, report := Connect(rooms, rng, oneAttempt)

	if len(hallways) != 0 {
		t.Fatalf("got %d hallways, want 0", len(hallways))
	}
	if report.Geometry != 2 || report.Self != 1 {
		t.Errorf("report = %+v, want 2 geometry, 1 self", report)
	}
}

func TestConnectHorizontalHallway(t *testing.T) {
	rooms := []Room{
		NewRoom(20, 0, 5, 6), // source on the right
		NewRoom(0, 2, 5, 6),  // target on the left
	}
	rng := newScriptedRand(t,
		0, 1, int(Left), int(Right), 1, // shared y span [2,6), crossing y = 3
		0, 1, int(Up), int(Down),
	)

	hallways, _ := Connect(rooms, rng, oneAttempt)

	if len(hallways) != 1 {
		t.Fatalf("got %d hallways, want 1", len(hallways))
	}
	h := hallways[0]
	if h.Start != (Point{X: 19, Y: 3}) || h.End() != (Point{X: 5, Y: 3}) {
		t.Errorf("hallway runs %+v -> %+v, want (19,3) -> (5,3)", h.Start, h.End())
	}
	if h.Box() != (Rect{Pos: Point{X: 5, Y: 3}, Size: Size{W: 15, H: 1}}) {
		t.Errorf("box = %+v, want x 5..19 on y 3", h.Box())
	}
}

func TestConnectNoRooms(t *testing.T) {
	hallways, report := Connect(nil, newScriptedRand(t), oneAttempt)
	if len(hallways) != 0 || report.Attempts != 0 {
		t.Errorf("Connect(nil) = %d hallways, %+v", len(hallways), report)
	}
}
