// Package headless plays the game without a terminal: a manual clock
// advanced by a fixed step per tick, the autopilot on the buttons and a
// framebuffer nobody looks at. Used for soak runs and tuning configs.
package headless

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picodino/internal/clock"
	"github.com/vovakirdan/picodino/internal/config"
	"github.com/vovakirdan/picodino/internal/display"
	"github.com/vovakirdan/picodino/internal/games/dino"
	"github.com/vovakirdan/picodino/internal/storage"
)

// BackendID is the name runs are recorded under.
const BackendID = "headless"

// Defaults applied by Simulate for zero options.
const (
	DefaultTicks  = 10000
	DefaultStepMs = 16
	DefaultRuns   = 1
)

// ctxCheckEvery is how many ticks run between context checks.
const ctxCheckEvery = 1024

// Options configures a simulation.
type Options struct {
	Seed    int64
	Ticks   int    // Tick limit
	StepMs  uint32 // Clock advance per tick
	Runs    int    // Stop after this many game overs
	Lead    int    // Autopilot jump distance, 0 = dino.DefaultLead
	Store   *storage.Store
	Logger  *log.Logger
	Verbose bool // Log every event at debug level
}

// RunResult is one game of the simulation. Finished is false for a game
// cut short by the tick limit.
type RunResult struct {
	Points   int
	Distance int
	Ticks    int
	SimMs    int64
	Finished bool
}

// Summary describes a whole simulation.
type Summary struct {
	Seed      int64
	Ticks     int
	SimMs     int64
	Frames    int
	Spawns    int
	Jumps     int
	HighScore int
	Runs      []RunResult
}

// Simulate plays until the tick limit, the requested number of game overs
// or ctx cancellation, whichever comes first.
func Simulate(ctx context.Context, cfg config.DinoConfig, opts Options) (Summary, error) {
	if opts.Ticks <= 0 {
		opts.Ticks = DefaultTicks
	}
	if opts.StepMs == 0 {
		opts.StepMs = DefaultStepMs
	}
	if opts.Runs <= 0 {
		opts.Runs = DefaultRuns
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clk := clock.NewManual(0)
	game := dino.New(cfg, clk, dino.NewRoller(opts.Seed))
	pilot := dino.NewAutopilot(game, true)
	if opts.Lead > 0 {
		pilot.Lead = opts.Lead
	}
	fb := display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height)

	summary := Summary{Seed: opts.Seed}
	runStart := 0 // Ticks completed before the current run began

	finish := func(points, distance int, finished bool) RunResult {
		ticks := summary.Ticks - runStart
		return RunResult{
			Points:   points,
			Distance: distance,
			Ticks:    ticks,
			SimMs:    int64(ticks) * int64(opts.StepMs),
			Finished: finished,
		}
	}

	for summary.Ticks < opts.Ticks && len(summary.Runs) < opts.Runs {
		if summary.Ticks%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return summary, fmt.Errorf("headless: %w", err)
			}
		}

		clk.Advance(opts.StepMs)
		res := game.Tick(pilot, fb)
		summary.Ticks++
		summary.HighScore = res.State.HighScore

		for _, e := range res.Events {
			if opts.Verbose {
				logger.Debug(e.Kind.String(), "x", e.X, "tick", summary.Ticks)
			}
			switch e.Kind {
			case dino.EventSpawn:
				summary.Spawns++
			case dino.EventJump:
				summary.Jumps++
			case dino.EventReset:
				runStart = summary.Ticks - 1
			case dino.EventCollision:
				run := finish(res.State.Score, res.State.Distance, true)
				summary.Runs = append(summary.Runs, run)
				logger.Info("game over",
					"run", len(summary.Runs),
					"points", run.Points,
					"distance", run.Distance,
					"ticks", run.Ticks,
				)
				if opts.Store != nil {
					d := time.Duration(run.SimMs) * time.Millisecond
					if _, err := opts.Store.SaveRun(BackendID, run.Points, run.Distance, d); err != nil {
						return summary, fmt.Errorf("headless: %w", err)
					}
				}
			}
		}
	}

	if state := game.State(); !state.GameOver && len(summary.Runs) < opts.Runs {
		summary.Runs = append(summary.Runs, finish(state.Score, state.Distance, false))
	}

	summary.SimMs = int64(summary.Ticks) * int64(opts.StepMs)
	summary.Frames = fb.Frames()
	return summary, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WriteSummary prints the per-run table and the totals.
func WriteSummary(w io.Writer, s Summary) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RUN", "POINTS", "DISTANCE", "TICKS", "SIM TIME", "END").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, r := range s.Runs {
		end := "collision"
		if !r.Finished {
			end = "tick limit"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Points),
			strconv.Itoa(r.Distance),
			strconv.Itoa(r.Ticks),
			(time.Duration(r.SimMs) * time.Millisecond).String(),
			end,
		)
	}

	_, err := fmt.Fprintf(w, "%s\nseed %d  ticks %d  frames %d  spawns %d  jumps %d  high score %d\n",
		t.Render(), s.Seed, s.Ticks, s.Frames, s.Spawns, s.Jumps, s.HighScore)
	return err
}
