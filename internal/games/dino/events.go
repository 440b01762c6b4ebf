package dino

import "github.com/vovakirdan/picodino/internal/core"

// Phase is the state machine phase.
type Phase int

const (
	Running Phase = iota
	Paused
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Paused {
		return "paused"
	}
	return "running"
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventReset EventKind = iota
	EventJump
	EventLand
	EventSpawn
	EventCollision
	EventPalette
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	case EventSpawn:
		return "spawn"
	case EventCollision:
		return "collision"
	case EventPalette:
		return "palette"
	default:
		return "unknown"
	}
}

// Event is one occurrence during a tick. X is the obstacle position for
// spawn and collision events and the distance for the others.
type Event struct {
	Kind EventKind
	X    int
}

// StepResult is returned by Game.Tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Has reports whether an event of kind k happened this tick.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
