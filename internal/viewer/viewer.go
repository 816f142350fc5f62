// Package viewer runs an interactive terminal session for browsing floors.
package viewer

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/floorgen/internal/config"
	"github.com/samdwyer/floorgen/internal/telemetry"
	"github.com/samdwyer/floorgen/internal/ui"
	"github.com/samdwyer/floorgen/internal/world"
)

// Action is what a key press asks the viewer to do.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionQuit
)

// Viewer holds the interactive session state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      config.Config
	seed     uint64
	floor    *world.Floor
	running  bool
}

// New opens the terminal and creates a viewer starting at seed.
func New(cfg config.Config, seed uint64) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg, seed), nil
}

// NewWithScreen creates a viewer drawing to an already initialized screen.
func NewWithScreen(screen *ui.Screen, cfg config.Config, seed uint64) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		seed:     seed,
		running:  true,
	}
}

// Floor returns the floor currently on display.
func (v *Viewer) Floor() *world.Floor {
	return v.floor
}

// Run generates the first floor and processes input until the user quits.
// The screen is closed on return.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.generate(ctx); err != nil {
		return err
	}

	for v.running {
		v.renderer.Render(v.floor)

		if err := v.handleInput(ctx); err != nil {
			return err
		}
	}

	return nil
}

// generate replaces the current floor with one built from the current seed.
func (v *Viewer) generate(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.generate")
	defer span.End()

	floor, err := world.Generate(ctx, v.cfg, v.seed)
	if err != nil {
		span.RecordError(err)
		return err
	}
	v.floor = floor

	span.SetAttributes(
		attribute.Int64("floor.seed", int64(v.seed)),
		attribute.Int("floor.rooms", len(floor.Rooms)),
	)
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.Apply(ctx, ActionFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized underneath us
		v.running = false
	}
	return nil
}

// ActionFor maps a key press to an action.
func ActionFor(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R', ' ':
			return ActionRegenerate
		}
	}
	return ActionNone
}

// Apply performs an action. Regenerating advances the seed by one.
func (v *Viewer) Apply(ctx context.Context, action Action) error {
	switch action {
	case ActionQuit:
		v.running = false
	case ActionRegenerate:
		v.seed++
		return v.generate(ctx)
	}
	return nil
}

// Running returns false once the user has quit.
func (v *Viewer) Running() bool {
	return v.running
}
