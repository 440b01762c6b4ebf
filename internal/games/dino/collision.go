package dino

// CheckHit reports whether obstacle o hits player p. An obstacle whose
// trailing edge has reached the player's leading edge is behind the player
// and never hits. Otherwise the boxes collide when they overlap or touch.
func CheckHit(o Obstacle, p Player) bool {
	if o.X+o.Width <= p.X {
		return false
	}
	return p.Rect().Touches(o.Rect())
}
