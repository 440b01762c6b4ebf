package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(16, 42, 8, 8)
	if r.Right() != 24 || r.Bottom() != 50 {
		t.Errorf("Right, Bottom = %d, %d, expected 24, 50", r.Right(), r.Bottom())
	}
}

func TestRectTouches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"identical", NewRect(16, 42, 8, 8), NewRect(16, 42, 8, 8), true},
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"shared vertical edge", NewRect(0, 0, 8, 8), NewRect(8, 0, 8, 8), true},
		{"shared horizontal edge", NewRect(0, 0, 8, 8), NewRect(0, 8, 8, 8), true},
		{"shared corner", NewRect(0, 0, 8, 8), NewRect(8, 8, 8, 8), true},
		{"one unit gap horizontal", NewRect(0, 0, 8, 8), NewRect(9, 0, 8, 8), false},
		{"one unit gap vertical", NewRect(0, 0, 8, 8), NewRect(0, 9, 8, 8), false},
		{"dino above cactus", NewRect(16, 20, 8, 8), NewRect(20, 42, 8, 8), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Touches(tc.b); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Touches(tc.a); got != tc.expected {
				t.Errorf("Touches() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameButtons(t *testing.T) {
	f := NewInputFrame()
	if f.JumpPressed() || f.ResetPressed() {
		t.Fatal("empty frame should report no buttons")
	}

	f.Set(ActionJump)
	if !f.JumpPressed() || f.ResetPressed() {
		t.Error("jump only frame reported wrong buttons")
	}

	f.Set(ActionRestart)
	if !f.ResetPressed() {
		t.Error("ResetPressed() should be true after Set(ActionRestart)")
	}

	f.Clear()
	if f.JumpPressed() {
		t.Error("Clear() should drop jump")
	}

	var zero InputFrame
	if zero.JumpPressed() {
		t.Error("zero frame should report no jump")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" || Action(99).String() != "Unknown" {
		t.Errorf("unexpected names %q, %q", ActionJump.String(), Action(99).String())
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Green "); !ok || c != ColorGreen {
		t.Errorf("ParseColor(Green) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
