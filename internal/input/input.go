// Package input defines the button source the game loop polls each tick.
package input

import "sync/atomic"

// Source exposes the two momentary buttons. Pressed is always true,
// whatever the electrical polarity of the underlying pin.
type Source interface {
	JumpPressed() bool
	ResetPressed() bool
}

// Button identifies one of the two game buttons.
type Button int

const (
	ButtonJump Button = iota
	ButtonReset
)

// Latch is a Source fed from another goroutine, the way an interrupt
// handler would feed a polled flag. A press stays latched until the next
// poll of that button reads it.
type Latch struct {
	jump  atomic.Bool
	reset atomic.Bool
}

// NewLatch creates a latch with no presses pending.
func NewLatch() *Latch {
	return &Latch{}
}

// Press latches a button press. Safe for concurrent use.
func (l *Latch) Press(b Button) {
	switch b {
	case ButtonJump:
		l.jump.Store(true)
	case ButtonReset:
		l.reset.Store(true)
	}
}

// JumpPressed reports and clears a pending jump press.
func (l *Latch) JumpPressed() bool {
	return l.jump.Swap(false)
}

// ResetPressed reports and clears a pending reset press.
func (l *Latch) ResetPressed() bool {
	return l.reset.Swap(false)
}

// Frame is the button state for a single tick of a Script.
type Frame struct {
	Jump  bool
	Reset bool
}

// Script replays a fixed sequence of frames, one per tick. Each tick reads
// ResetPressed first and JumpPressed second, which is the order the game
// loop uses; the frame advances after JumpPressed. After the last frame
// nothing is pressed.
type Script struct {
	frames []Frame
	pos    int
}

// NewScript creates a script from frames.
func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Idle returns n frames with no buttons pressed.
func Idle(n int) []Frame {
	return make([]Frame, n)
}

// ResetPressed reports the reset button for the current frame.
func (s *Script) ResetPressed() bool {
	if s.pos >= len(s.frames) {
		return false
	}
	return s.frames[s.pos].Reset
}

// JumpPressed reports the jump button for the current frame and advances.
func (s *Script) JumpPressed() bool {
	if s.pos >= len(s.frames) {
		return false
	}
	pressed := s.frames[s.pos].Jump
	s.pos++
	return pressed
}

// Remaining returns how many frames have not been consumed.
func (s *Script) Remaining() int {
	return len(s.frames) - s.pos
}
