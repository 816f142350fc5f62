package world

import "github.com/samdwyer/floorgen/internal/config"

// Rand is the random source threaded through generation. *rand.Rand
// satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// drawRange returns a uniform value from the half-open range r.
func drawRange(rng Rand, r config.Range) int {
	return r.Min + rng.Intn(r.Len())
}
