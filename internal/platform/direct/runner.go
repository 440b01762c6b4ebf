// Package direct runs the game on a tcell screen from a busy loop, the way
// the firmware drives its panel: input arrives asynchronously and the loop
// ticks as fast as it can, optionally capped.
package direct

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/picodino/internal/core"
	"github.com/vovakirdan/picodino/internal/display"
	"github.com/vovakirdan/picodino/internal/games/dino"
	"github.com/vovakirdan/picodino/internal/input"
	"github.com/vovakirdan/picodino/internal/storage"
)

// BackendID is the name runs are recorded under.
const BackendID = "direct"

var inkColors = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorGreen:   tcell.ColorLime,
	core.ColorAmber:   tcell.ColorOrange,
	core.ColorCyan:    tcell.ColorAqua,
	core.ColorBlue:    tcell.ColorBlue,
}

// Options configures a Runner.
type Options struct {
	Mode   display.CellMode
	Ink    core.Color
	MaxFPS int // 0 = unthrottled
	Store  *storage.Store
	Logger *log.Logger
}

// Runner owns the screen, the game and the loop between them.
type Runner struct {
	screen   tcell.Screen
	game     *dino.Game
	fb       *display.Framebuffer
	buttons  *input.Latch
	pause    atomic.Bool
	quit     atomic.Bool
	mode     display.CellMode
	ink      tcell.Style
	frameGap time.Duration
	store    *storage.Store
	logger   *log.Logger
	runStart time.Time
}

// NewRunner wires a game to an initialised screen. Every Present on the
// game's framebuffer is copied to the screen.
func NewRunner(screen tcell.Screen, game *dino.Game, opts Options) *Runner {
	cfg := game.Config()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runner{
		screen:   screen,
		game:     game,
		fb:       display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height),
		buttons:  input.NewLatch(),
		mode:     opts.Mode,
		ink:      tcell.StyleDefault.Foreground(inkColors[opts.Ink]),
		store:    opts.Store,
		logger:   logger,
		runStart: time.Now(),
	}
	if opts.MaxFPS > 0 {
		r.frameGap = time.Second / time.Duration(opts.MaxFPS)
	}
	r.fb.OnPresent = r.draw
	return r
}

// HandleEvent applies one terminal event. Safe to call from the event
// goroutine while the loop is running.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			r.quit.Store(true)
		case tcell.KeyUp:
			r.buttons.Press(input.ButtonJump)
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'w':
				r.buttons.Press(input.ButtonJump)
			case 'r':
				r.buttons.Press(input.ButtonReset)
			case 'p':
				r.pause.Store(true)
			case 'q':
				r.quit.Store(true)
			}
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
}

// Step runs one loop iteration: apply a pending pause request, tick and
// record the run if it just ended.
func (r *Runner) Step() dino.StepResult {
	if r.pause.Swap(false) {
		r.game.TogglePause()
		r.drawStatus()
		r.screen.Show()
	}

	res := r.game.Tick(r.buttons, r.fb)

	for _, e := range res.Events {
		switch e.Kind {
		case dino.EventReset:
			r.runStart = time.Now()
		case dino.EventCollision:
			r.recordRun(res.State)
		}
	}
	return res
}

// Stopped reports whether the user asked to quit.
func (r *Runner) Stopped() bool {
	return r.quit.Load()
}

// Run polls events on a goroutine and ticks until the user quits or ctx
// is cancelled. The screen must be finalised by the caller afterwards,
// which also ends the event goroutine.
func (r *Runner) Run(ctx context.Context) error {
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			r.HandleEvent(ev)
		}
	}()

	r.screen.Clear()
	last := time.Now()
	for !r.Stopped() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if r.frameGap > 0 {
			if wait := r.frameGap - time.Since(last); wait > 0 {
				time.Sleep(wait)
			}
			last = time.Now()
		}
		r.Step()
	}
	return nil
}

func (r *Runner) recordRun(state core.GameState) {
	elapsed := time.Since(r.runStart)
	r.logger.Info("game over",
		"points", state.Score,
		"high", state.HighScore,
		"distance", state.Distance,
		"duration", elapsed.Round(time.Millisecond),
	)
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(BackendID, state.Score, state.Distance, elapsed); err != nil {
		r.logger.Warn("cannot record run", "error", err)
	}
}

// draw copies the framebuffer to the screen.
func (r *Runner) draw(fb *display.Framebuffer) {
	style := r.ink
	if fb.Contrast() < 128 {
		style = style.Dim(true)
	}

	cols, rows := r.mode.GridSize(fb.Width(), fb.Height())
	for cy := range rows {
		for cx := range cols {
			r.screen.SetContent(cx, cy, fb.Glyph(cx, cy, r.mode), nil, style)
		}
	}
	r.drawStatus()
	r.screen.Show()
}

// drawStatus writes the status line under the panel.
func (r *Runner) drawStatus() {
	_, rows := r.mode.GridSize(r.fb.Width(), r.fb.Height())
	s := r.game.State()

	var line string
	switch {
	case s.GameOver:
		line = fmt.Sprintf("GAME OVER  %d points, r to reset, q to quit", s.Score)
	case s.Paused:
		line = "PAUSED  p to resume"
	default:
		line = fmt.Sprintf("points %d  best %d  distance %d", s.Score, s.HighScore, s.Distance)
	}

	width, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := range width {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		r.screen.SetContent(x, rows, ch, nil, style)
	}
}
