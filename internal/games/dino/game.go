// Package dino implements a Chrome Dino-style endless runner game.
// The player must jump over obstacles while running automatically.
//
// The game is driven one tick at a time by whatever loop owns it. Time is
// read from a clock.Source rather than counted in ticks, so the jump arc
// and spawn cooldown behave the same at any frame rate.
package dino

import (
	"slices"
	"strconv"

	"github.com/vovakirdan/picodino/internal/clock"
	"github.com/vovakirdan/picodino/internal/config"
	"github.com/vovakirdan/picodino/internal/core"
	"github.com/vovakirdan/picodino/internal/display"
	"github.com/vovakirdan/picodino/internal/input"
)

// Where the game over banner is drawn.
const (
	gameOverText = "GAME OVER"
	gameOverX    = 30
	gameOverY    = 30
)

// Score text is drawn at this height; the points sit at scoreX, the high
// score is right aligned.
const (
	scoreX = 10
	scoreY = 10
)

// Game implements the runner game logic.
type Game struct {
	cfg       config.DinoConfig
	clock     clock.Source
	spawner   *Spawner
	player    Player
	obstacles []Obstacle // Spawn order
	currentX  int        // Distance travelled
	points    int
	highScore int // Survives Reset
	night     bool
	phase     Phase
	gameOver  bool
	pausedAt  clock.Ticks
	events    []Event
}

// New creates a game ready to run. The roller drives obstacle spawning.
func New(cfg config.DinoConfig, clk clock.Source, roller Roller) *Game {
	g := &Game{
		cfg:       cfg,
		clock:     clk,
		spawner:   NewSpawner(cfg.Obstacles.SpawnChance, cfg.Obstacles.CooldownMs, roller),
		obstacles: make([]Obstacle, 0, 8),
	}
	g.Reset()
	return g
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.DinoConfig {
	return g.cfg
}

// Reset restarts the run. The high score is kept.
func (g *Game) Reset() {
	g.player = NewPlayer(g.cfg)
	g.obstacles = g.obstacles[:0]
	g.currentX = 0
	g.points = 0
	g.night = false
	g.phase = Running
	g.gameOver = false
	g.spawner.Reset()
}

// TogglePause pauses a running game or resumes a paused one. A game over
// cannot be resumed, only reset. On resume the jump and cooldown clocks are
// shifted by the time spent paused.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}

	now := g.clock.NowMs()
	if g.phase == Running {
		g.phase = Paused
		g.pausedAt = now
		return
	}

	span := clock.Diff(now, g.pausedAt)
	if g.player.IsJumping {
		g.player.JumpStart += clock.Ticks(uint32(span))
	}
	g.spawner.Shift(span)
	g.phase = Running
}

// Tick advances the game by one loop iteration and draws the frame.
// Nothing is drawn while paused, so the last frame stays on the display.
func (g *Game) Tick(in input.Source, r display.Renderer) StepResult {
	g.events = nil

	resetPressed := in.ResetPressed()
	jumpPressed := in.JumpPressed()
	now := g.clock.NowMs()

	if resetPressed {
		g.Reset()
		g.emit(EventReset, 0)
	}

	if g.phase == Paused {
		return g.result()
	}

	if jumpPressed && !g.player.IsJumping {
		g.player.StartJump(now)
		g.emit(EventJump, g.currentX)
	} else if g.player.IsJumping {
		if g.player.UpdateJump(clock.Diff(now, g.player.JumpStart)) {
			g.emit(EventLand, g.currentX)
		}
	}

	speed := g.cfg.Physics.RunSpeed
	for i := range g.obstacles {
		g.obstacles[i].X -= speed
		if CheckHit(g.obstacles[i], g.player) {
			g.endRun(g.obstacles[i], r)
			break
		}
	}

	if g.phase == Paused {
		return g.result()
	}

	g.obstacles = slices.DeleteFunc(g.obstacles, func(o Obstacle) bool {
		return o.X < 0
	})

	if g.spawner.Update(now) {
		x := g.currentX + g.cfg.Display.Width - 1
		g.obstacles = append(g.obstacles, NewObstacle(x, g.cfg))
		g.emit(EventSpawn, x)
	}

	g.advance()
	g.render(r)

	return g.result()
}

// endRun switches to the game over pause and draws the banner over the
// last frame.
func (g *Game) endRun(o Obstacle, r display.Renderer) {
	g.phase = Paused
	g.gameOver = true
	g.emit(EventCollision, o.X)

	r.DrawText(gameOverText, gameOverX, gameOverY)
	r.Present()
}

// advance moves the world forward and updates score and palette.
func (g *Game) advance() {
	prev := g.currentX
	g.currentX += g.cfg.Physics.RunSpeed

	g.points = Points(g.currentX)
	if g.points >= g.highScore {
		g.highScore = g.points
	}

	interval := g.cfg.Cycle.Interval
	if crossed := g.currentX/interval - prev/interval; crossed%2 != 0 {
		g.night = !g.night
	}
	if g.currentX/interval != prev/interval {
		g.emit(EventPalette, g.currentX)
	}
}

// render draws the scene in a fixed order and presents it.
func (g *Game) render(r display.Renderer) {
	width := g.cfg.Display.Width
	ground := g.cfg.Display.GroundHeight

	r.Clear()
	r.DrawLine(0, ground+1, width-1, ground+1)
	r.DrawText(strconv.Itoa(g.points), scoreX, scoreY)
	high := strconv.Itoa(g.highScore)
	r.DrawText(high, width-display.TextWidth(high), scoreY)
	r.DrawSprite(display.SpriteDino, g.player.X, g.player.Y)
	for _, o := range g.obstacles {
		r.DrawSprite(display.SpriteCactus, o.X, o.Y)
	}
	r.SetInvert(g.night)
	r.SetContrast(g.cfg.Contrast())
	r.Present()
}

func (g *Game) emit(kind EventKind, x int) {
	g.events = append(g.events, Event{Kind: kind, X: x})
}

func (g *Game) result() StepResult {
	return StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.points,
		HighScore: g.highScore,
		Distance:  g.currentX,
		GameOver:  g.gameOver,
		Paused:    g.phase == Paused,
		Night:     g.night,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	return slices.Clone(g.obstacles)
}

// Ahead returns the horizontal gap between the player's leading edge and
// the nearest obstacle that can still hit it.
func (g *Game) Ahead() (gap int, ok bool) {
	lead := g.player.X + g.player.Width
	best := 0
	for _, o := range g.obstacles {
		if o.X+o.Width <= g.player.X {
			continue
		}
		d := o.X - lead
		if !ok || d < best {
			best, ok = d, true
		}
	}
	return best, ok
}
