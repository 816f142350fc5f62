package world

import (
	"testing"

	"github.com/samdwyer/floorgen/internal/config"
)

// scriptedRand replays fixed values and fails the test when the script is
// exhausted or a value falls outside the requested range.
type scriptedRand struct {
	t      *testing.T
	values []int
	calls  []int // n passed to each Intn call
}

func newScriptedRand(t *testing.T, values ...int) *scriptedRand {
	return &scriptedRand{t: t, values: values}
}

func (s *scriptedRand) Intn(n int) int {
	s.t.Helper()
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		s.t.Fatalf("scriptedRand exhausted after %d calls", len(s.calls)-1)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range [0,%d) at call %d", v, n, len(s.calls))
	}
	return v
}

// recordingRand forwards to another source and records every n it was asked for.
type recordingRand struct {
	inner Rand
	calls []int
}

func (r *recordingRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	return r.inner.Intn(n)
}

// boundaryConfig is a 20x10 floor that fits exactly one 5x5 room row.
func boundaryConfig() config.Config {
	return config.Config{
		Width:           20,
		Height:          10,
		RoomCount:       config.Range{Min: 1, Max: 2},
		RoomSize:        config.Range{Min: 5, Max: 6},
		Padding:         5,
		MaxTries:        1000,
		HallwayAttempts: config.Range{Min: 0, Max: 4},
	}
}
