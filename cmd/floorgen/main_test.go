package main

import (
	"os"
	"testing"
)

func TestLoadSeedZeroIsKept(t *testing.T) {
	t.Setenv("FLOORGEN_SEED", "0")

	seed, err := loadSeed()
	if err != nil {
		t.Fatalf("loadSeed: %v", err)
	}
	if seed != 0 {
		t.Errorf("seed = %d, want 0", seed)
	}
}

func TestLoadSeedExplicit(t *testing.T) {
	t.Setenv("FLOORGEN_SEED", "18446744073709551615")

	seed, err := loadSeed()
	if err != nil {
		t.Fatalf("loadSeed: %v", err)
	}
	if seed != 1<<64-1 {
		t.Errorf("seed = %d, want max uint64", seed)
	}
}

func TestLoadSeedInvalid(t *testing.T) {
	t.Setenv("FLOORGEN_SEED", "-4")

	if _, err := loadSeed(); err == nil {
		t.Error("expected an error for a negative seed")
	}
}

func TestLoadSeedUnset(t *testing.T) {
	t.Setenv("FLOORGEN_SEED", "")
	os.Unsetenv("FLOORGEN_SEED")

	if _, err := loadSeed(); err != nil {
		t.Errorf("unset seed should pick one, got error %v", err)
	}
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("FLOORGEN_CONFIG", "")
	t.Setenv("FLOORGEN_PADDING", "9223372036854775807")

	if _, err := loadConfig(); err == nil {
		t.Error("expected huge padding to be rejected")
	}
}
