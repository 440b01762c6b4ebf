package dino

import (
	"github.com/vovakirdan/picodino/internal/clock"
	"github.com/vovakirdan/picodino/internal/config"
	"github.com/vovakirdan/picodino/internal/core"
)

// Player is the jumping sprite. X never changes; Y moves between
// DefaultY-JumpHeight (apex) and DefaultY (ground) in y-down screen units.
type Player struct {
	X, Y          int
	Width, Height int
	DefaultY      int         // Resting y on the ground
	JumpHeight    int         // Apex height of the arc
	JumpDuration  int         // Total airtime in ms
	IsJumping     bool
	JumpStart     clock.Ticks // Tick the current jump started at
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.DinoConfig) Player {
	defaultY := cfg.Display.GroundHeight - cfg.Player.Height
	return Player{
		X:            cfg.Player.X,
		Y:            defaultY,
		Width:        cfg.Player.Width,
		Height:       cfg.Player.Height,
		DefaultY:     defaultY,
		JumpHeight:   cfg.Physics.JumpHeight,
		JumpDuration: cfg.Physics.JumpDurationMs,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a ground obstacle scrolling left towards the player.
type Obstacle struct {
	X, Y          int
	Width, Height int
}

// NewObstacle creates an obstacle at x resting on the ground.
func NewObstacle(x int, cfg config.DinoConfig) Obstacle {
	return Obstacle{
		X:      x,
		Y:      cfg.Display.GroundHeight - cfg.Obstacles.Height,
		Width:  cfg.Obstacles.Width,
		Height: cfg.Obstacles.Height,
	}
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}
