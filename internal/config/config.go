// Package config holds floor generation settings and their validation.
package config

import "fmt"

// Range is a half-open integer range [Min, Max).
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Len returns the number of values in the range.
func (r Range) Len() int {
	return r.Max - r.Min
}

// Empty returns true if the range holds no values.
func (r Range) Empty() bool {
	return r.Max <= r.Min
}

// Last returns the largest value in the range.
func (r Range) Last() int {
	return r.Max - 1
}

// String formats the range as "min..max".
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Upper bounds accepted by Validate. They keep every sum and product the
// generator forms well inside int range.
const (
	MaxDimension       = 1 << 16 // Floor sides, room sides and padding
	MaxRooms           = 1 << 10 // Largest allowed RoomCount.Max
	MaxPlacementTries  = 1 << 20
	MaxHallwayAttempts = 1 << 6 // Largest allowed HallwayAttempts.Max
)

// Config holds floor generation options.
type Config struct {
	Width  int `json:"width"`  // Floor width in grid units
	Height int `json:"height"` // Floor height in grid units

	RoomCount Range `json:"roomCount"` // How many rooms to request
	RoomSize  Range `json:"roomSize"`  // Width and height of each room, drawn independently
	Padding   int   `json:"padding"`   // Minimum clearance between rooms

	// MaxTries bounds placement attempts per room before it is dropped.
	MaxTries int `json:"maxTries"`

	// HallwayAttempts is the range each room draws its hallway attempt count from.
	HallwayAttempts Range `json:"hallwayAttempts"`
}

// Validate checks every setting generation relies on. All failures are
// *ConfigError values matching ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Width > MaxDimension:
		return newConfigError("width", "must be in 1..%d, got %d", MaxDimension, c.Width)
	case c.Height <= 0 || c.Height > MaxDimension:
		return newConfigError("height", "must be in 1..%d, got %d", MaxDimension, c.Height)
	case c.RoomCount.Min < 0:
		return newConfigError("roomCount", "minimum must not be negative, got %s", c.RoomCount)
	case c.RoomCount.Max > MaxRooms:
		return newConfigError("roomCount", "maximum must not exceed %d, got %s", MaxRooms, c.RoomCount)
	case c.RoomCount.Empty():
		return newConfigError("roomCount", "range %s is empty", c.RoomCount)
	case c.RoomSize.Min <= 0:
		return newConfigError("roomSize", "minimum must be positive, got %s", c.RoomSize)
	case c.RoomSize.Max > MaxDimension:
		return newConfigError("roomSize", "maximum must not exceed %d, got %s", MaxDimension, c.RoomSize)
	case c.RoomSize.Empty():
		return newConfigError("roomSize", "range %s is empty", c.RoomSize)
	case c.Padding < 0 || c.Padding > MaxDimension:
		return newConfigError("padding", "must be in 0..%d, got %d", MaxDimension, c.Padding)
	case c.MaxTries <= 0 || c.MaxTries > MaxPlacementTries:
		return newConfigError("maxTries", "must be in 1..%d, got %d", MaxPlacementTries, c.MaxTries)
	case c.HallwayAttempts.Min < 0:
		return newConfigError("hallwayAttempts", "minimum must not be negative, got %s", c.HallwayAttempts)
	case c.HallwayAttempts.Max > MaxHallwayAttempts:
		return newConfigError("hallwayAttempts", "maximum must not exceed %d, got %s", MaxHallwayAttempts, c.HallwayAttempts)
	case c.HallwayAttempts.Empty():
		return newConfigError("hallwayAttempts", "range %s is empty", c.HallwayAttempts)
	case c.Padding > c.Width-c.RoomSize.Last():
		return newConfigError("roomSize", "largest room %d plus padding %d exceeds floor width %d",
			c.RoomSize.Last(), c.Padding, c.Width)
	case c.Padding > c.Height-c.RoomSize.Last():
		return newConfigError("roomSize", "largest room %d plus padding %d exceeds floor height %d",
			c.RoomSize.Last(), c.Padding, c.Height)
	}
	return nil
}
