package dino

// DefaultLead is the gap at which the autopilot jumps. At the default
// speed and a 16ms step the player clears an 8px obstacle from gaps of
// roughly 8 to 38.
const DefaultLead = 20

// Autopilot is an input.Source that plays the game. It jumps when the
// nearest obstacle is within Lead pixels and, if Restart is set, resets
// after a game over.
type Autopilot struct {
	Game    *Game
	Lead    int
	Restart bool
}

// NewAutopilot creates an autopilot with the default lead.
func NewAutopilot(g *Game, restart bool) *Autopilot {
	return &Autopilot{Game: g, Lead: DefaultLead, Restart: restart}
}

// JumpPressed implements input.Source.
func (a *Autopilot) JumpPressed() bool {
	if a.Game.Phase() != Running || a.Game.Player().IsJumping {
		return false
	}
	gap, ok := a.Game.Ahead()
	return ok && gap <= a.Lead
}

// ResetPressed implements input.Source.
func (a *Autopilot) ResetPressed() bool {
	return a.Restart && a.Game.State().GameOver
}
