package dino

import (
	"math/rand"

	"github.com/vovakirdan/picodino/internal/clock"
)

// Roller draws uniform values in [0, 1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// NewRoller returns a seeded Roller.
func NewRoller(seed int64) Roller {
	return rand.New(rand.NewSource(seed))
}

// Spawner decides when a new obstacle appears. Every Update draws one
// roll. A roll above chance spawns unless the cooldown is active; chance
// is therefore the probability of not spawning. The cooldown starts at the
// spawn and clears on the first Update more than cooldownMs later.
type Spawner struct {
	chance     float64
	cooldownMs int64
	roller     Roller
	cooling    bool
	start      clock.Ticks
}

// NewSpawner creates a spawner with no cooldown active.
func NewSpawner(chance float64, cooldownMs int, roller Roller) *Spawner {
	return &Spawner{
		chance:     chance,
		cooldownMs: int64(cooldownMs),
		roller:     roller,
	}
}

// Update rolls for this tick and reports whether an obstacle spawns.
func (s *Spawner) Update(now clock.Ticks) bool {
	if s.roller.Float64() > s.chance && !s.cooling {
		s.cooling = true
		s.start = now
		return true
	}
	if s.cooling && clock.Diff(now, s.start) > s.cooldownMs {
		s.cooling = false
	}
	return false
}

// CoolingDown reports whether spawning is currently blocked.
func (s *Spawner) CoolingDown() bool {
	return s.cooling
}

// Reset clears the cooldown.
func (s *Spawner) Reset() {
	s.cooling = false
	s.start = 0
}

// Shift moves the cooldown start forward by ms, used when resuming from a
// pause so paused time does not count towards the cooldown.
func (s *Spawner) Shift(ms int64) {
	if s.cooling {
		s.start += clock.Ticks(uint32(ms))
	}
}
