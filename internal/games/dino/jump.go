package dino

import (
	"math"

	"github.com/vovakirdan/picodino/internal/clock"
)

// ArcOffset returns the height above ground at normalized jump time t:
// a parabola that is 0 at t=0 and t=1 and peaks at height when t=0.5.
func ArcOffset(height, t float64) float64 {
	return height * 4 * t * (1 - t)
}

// StartJump puts the player in the air at tick now. It returns false and
// changes nothing if a jump is already in progress.
func (p *Player) StartJump(now clock.Ticks) bool {
	if p.IsJumping {
		return false
	}
	p.IsJumping = true
	p.JumpStart = now
	return true
}

// UpdateJump places the player on the arc for elapsedMs since the jump
// started. Once the arc is complete the player lands and UpdateJump
// returns true. Y is rounded half to even. Calls while grounded do nothing.
func (p *Player) UpdateJump(elapsedMs int64) (landed bool) {
	if !p.IsJumping {
		return false
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}

	t := float64(elapsedMs) / float64(p.JumpDuration)
	if t > 1 {
		p.IsJumping = false
		p.Y = p.DefaultY
		return true
	}

	y := float64(p.DefaultY) - ArcOffset(float64(p.JumpHeight), t)
	p.Y = int(math.RoundToEven(y))
	return false
}
