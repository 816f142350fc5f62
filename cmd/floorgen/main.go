// Package main is the entry point for floorgen.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/floorgen/internal/config"
	"github.com/samdwyer/floorgen/internal/telemetry"
	"github.com/samdwyer/floorgen/internal/ui"
	"github.com/samdwyer/floorgen/internal/viewer"
	"github.com/samdwyer/floorgen/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Configured() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed, err := loadSeed()
	if err != nil {
		log.Fatalf("Failed to read seed: %v", err)
	}

	if err := run(ctx, cfg, seed, os.Getenv("FLOORGEN_VIEW")); err != nil {
		log.Fatalf("floorgen: %v", err)
	}
}

// run generates and displays a floor. view "tui" opens the interactive
// viewer, anything else prints the text rendering to stdout.
func run(ctx context.Context, cfg config.Config, seed uint64, view string) error {
	tracer := telemetry.Tracer("cmd")
	ctx, span := tracer.Start(ctx, "floorgen.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("run.id", uuid.NewString()),
		attribute.Int64("run.seed", int64(seed)),
		attribute.String("run.view", view),
	)

	if view == "tui" {
		v, err := viewer.New(cfg, seed)
		if err != nil {
			return fmt.Errorf("failed to open viewer: %w", err)
		}
		return v.Run(ctx)
	}

	floor, err := world.Generate(ctx, cfg, seed)
	if err != nil {
		return err
	}

	opts := ui.TextOptions{ShowHallways: os.Getenv("FLOORGEN_HALLWAYS") != ""}
	if err := ui.WriteText(os.Stdout, floor, opts); err != nil {
		return fmt.Errorf("failed to write floor: %w", err)
	}
	log.Print(ui.Summary(floor))
	if floor.Dropped() > 0 {
		log.Printf("Note: %d room(s) could not be placed; try another seed for the full count", floor.Dropped())
	}
	return nil
}

// loadConfig starts from the compiled-in defaults, then applies the file
// named by FLOORGEN_CONFIG and any FLOORGEN_* overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if path := os.Getenv("FLOORGEN_CONFIG"); path != "" {
		var err error
		cfg, err = config.LoadFile(cfg, path)
		if err != nil {
			return cfg, err
		}
	}

	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// loadSeed reads FLOORGEN_SEED. Any uint64, including 0, is used as given;
// only an unset or empty variable picks a time-based seed.
func loadSeed() (uint64, error) {
	raw, ok := os.LookupEnv("FLOORGEN_SEED")
	if !ok || raw == "" {
		return uint64(time.Now().UnixNano()), nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("FLOORGEN_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("FLOORGEN_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "floorgen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
