package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals an embedded JSON file, panicking on error.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

// Default returns the compiled-in configuration: a 90x30 floor, 3..8 rooms
// of size 6..15, padding 5.
func Default() Config {
	return MustLoad[Config]("defaults.json")
}

// LoadFile overlays the JSON file at path on top of base. Fields missing
// from the file keep their base values.
func LoadFile(base Config, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := base
	if err := json.Unmarshal(content, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse JSON from %s: %w", path, err)
	}
	return cfg, nil
}

// Environment variables read by FromEnv.
const (
	EnvWidth           = "FLOORGEN_WIDTH"
	EnvHeight          = "FLOORGEN_HEIGHT"
	EnvRoomCount       = "FLOORGEN_ROOM_COUNT"
	EnvRoomSize        = "FLOORGEN_ROOM_SIZE"
	EnvPadding         = "FLOORGEN_PADDING"
	EnvMaxTries        = "FLOORGEN_MAX_TRIES"
	EnvHallwayAttempts = "FLOORGEN_HALLWAY_ATTEMPTS"
)

// FromEnv overlays any FLOORGEN_* variables that are set on top of base.
// Ranges use the "min..max" form.
func FromEnv(base Config) (Config, error) {
	cfg := base

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvPadding, &cfg.Padding},
		{EnvMaxTries, &cfg.MaxTries},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return base, fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = n
	}

	ranges := []struct {
		key string
		dst *Range
	}{
		{EnvRoomCount, &cfg.RoomCount},
		{EnvRoomSize, &cfg.RoomSize},
		{EnvHallwayAttempts, &cfg.HallwayAttempts},
	}
	for _, v := range ranges {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		r, err := ParseRange(raw)
		if err != nil {
			return base, fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = r
	}

	return cfg, nil
}

// ParseRange parses a half-open range written as "min..max".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "..")
	if !ok {
		return Range{}, fmt.Errorf("range %q must look like min..max", s)
	}

	lower, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("range %q: bad minimum: %w", s, err)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("range %q: bad maximum: %w", s, err)
	}

	return Range{Min: lower, Max: upper}, nil
}
