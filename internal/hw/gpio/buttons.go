//go:build tinygo

// Package gpio reads the game buttons from board pins.
package gpio

import "machine"

// Buttons polls two momentary switches wired between a pin and ground.
// The internal pull-ups hold an idle pin high, so pressed reads as low.
type Buttons struct {
	jump  machine.Pin
	reset machine.Pin
}

// NewButtons configures both pins as pulled-up inputs.
func NewButtons(jump, reset machine.Pin) *Buttons {
	jump.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	reset.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &Buttons{jump: jump, reset: reset}
}

// JumpPressed reports whether the jump switch is closed.
func (b *Buttons) JumpPressed() bool {
	return !b.jump.Get()
}

// ResetPressed reports whether the reset switch is closed.
func (b *Buttons) ResetPressed() bool {
	return !b.reset.Get()
}
