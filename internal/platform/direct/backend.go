package direct

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/picodino/internal/clock"
	"github.com/vovakirdan/picodino/internal/core"
	"github.com/vovakirdan/picodino/internal/display"
	"github.com/vovakirdan/picodino/internal/games/dino"
	"github.com/vovakirdan/picodino/internal/registry"
)

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}

// Backend runs the busy loop on the controlling terminal.
type Backend struct{}

// ID returns the backend ID.
func (Backend) ID() string { return BackendID }

// Title returns the backend name.
func (Backend) Title() string { return "Terminal busy loop (tcell)" }

// Run plays until the user quits or ctx is cancelled.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	ink, ok := core.ParseColor(opts.Ink)
	if opts.Ink != "" && !ok {
		return fmt.Errorf("direct: unknown ink colour %q", opts.Ink)
	}

	mode := display.HalfBlock
	if opts.Quadrant {
		mode = display.Quadrant
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("direct: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("direct: cannot init screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := mode.GridSize(opts.Config.Display.Width, opts.Config.Display.Height)
	if w, h := screen.Size(); w < cols || h < rows+1 {
		return fmt.Errorf("direct: terminal is %dx%d, need at least %dx%d (try --quadrant)",
			w, h, cols, rows+1)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := dino.New(opts.Config, clock.NewMonotonic(), dino.NewRoller(seed))
	runner := NewRunner(screen, game, Options{
		Mode:   mode,
		Ink:    ink,
		MaxFPS: opts.MaxFPS,
		Store:  opts.Store,
		Logger: opts.Logger,
	})

	if opts.Logger != nil {
		opts.Logger.Debug("direct loop starting", "max_fps", opts.MaxFPS, "seed", seed)
	}
	return runner.Run(ctx)
}
