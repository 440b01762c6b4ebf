// Package core provides small shared types for the game and its front-ends.
// It has no external dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned bounding box in screen pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Touches reports whether two boxes overlap with closed edges: boxes that
// share an edge or a corner count as overlapping. This is the sprite
// collision rule.
func (r Rect) Touches(other Rect) bool {
	if r.Right() < other.X || other.Right() < r.X {
		return false
	}
	if r.Bottom() < other.Y || other.Bottom() < r.Y {
		return false
	}
	return true
}
