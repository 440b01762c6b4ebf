package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

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

// Backend runs the game inside a Bubble Tea program.
type Backend struct{}

// ID returns the backend ID.
func (Backend) ID() string { return BackendID }

// Title returns the backend name.
func (Backend) Title() string { return "Terminal (Bubble Tea)" }

// Run plays until the user quits or ctx is cancelled, then optionally
// shows the session scoreboard.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	ink, ok := core.ParseColor(opts.Ink)
	if opts.Ink != "" && !ok {
		return fmt.Errorf("tui: unknown ink colour %q", opts.Ink)
	}

	mode := display.HalfBlock
	if opts.Quadrant {
		mode = display.Quadrant
	}

	cols, rows := mode.GridSize(opts.Config.Display.Width, opts.Config.Display.Height)
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
		if w < cols || h < rows+chromeRows {
			return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d (try --quadrant)",
				w, h, cols, rows+chromeRows)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := dino.New(opts.Config, clock.NewMonotonic(), dino.NewRoller(seed))
	model := NewModel(game, ModelOptions{
		Mode:   mode,
		Ink:    ink,
		FPS:    opts.FPS,
		Store:  opts.Store,
		Logger: opts.Logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	if opts.Scoreboard && opts.Store != nil && ctx.Err() == nil {
		return RunScoreboard(opts.Store, width, height)
	}
	return nil
}
