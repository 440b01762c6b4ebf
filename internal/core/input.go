package core

// Action is a semantic front-end action, decoupled from the key that
// produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Jump button
	ActionRestart        // Reset button
	ActionPause          // Toggle pause
	ActionQuit           // Leave the front-end
)

var actionNames = [...]string{"None", "Jump", "Restart", "Pause", "Quit"}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects the actions triggered between two ticks. It doubles
// as the game's button source: Jump is the jump button and Restart the
// reset button. The zero value is an empty frame.
type InputFrame struct {
	set uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	f.set |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.set&(1<<a) != 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.set = 0
}

// JumpPressed reports the jump button.
func (f InputFrame) JumpPressed() bool { return f.Has(ActionJump) }

// ResetPressed reports the reset button.
func (f InputFrame) ResetPressed() bool { return f.Has(ActionRestart) }
