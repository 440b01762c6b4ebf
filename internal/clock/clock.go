// Package clock provides the millisecond tick source used by the game loop.
// Ticks wrap at 2^32 like a microcontroller counter, so elapsed time must
// always be taken with Diff rather than plain subtraction.
package clock

import "time"

// Ticks is a wrapping millisecond counter value.
type Ticks uint32

// Source reports the current tick count.
type Source interface {
	NowMs() Ticks
}

// Diff returns end - start in milliseconds, correct across counter rollover
// as long as the real gap is under 2^31 ms.
func Diff(end, start Ticks) int64 {
	return int64(int32(end - start))
}

// Monotonic is the production clock, driven by Go's monotonic time reading.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock whose tick zero is the moment of the call.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// NowMs returns milliseconds since creation, truncated to 32 bits.
func (m *Monotonic) NowMs() Ticks {
	return Ticks(uint64(time.Since(m.start).Milliseconds()))
}

// Manual is a clock that only moves when told to. Used by tests and the
// headless runner.
type Manual struct {
	now Ticks
}

// NewManual creates a manual clock reading start.
func NewManual(start Ticks) *Manual {
	return &Manual{now: start}
}

// NowMs returns the current reading.
func (m *Manual) NowMs() Ticks {
	return m.now
}

// Advance moves the clock forward by ms, wrapping like hardware would.
func (m *Manual) Advance(ms uint32) {
	m.now += Ticks(ms)
}

// Set jumps the clock to t.
func (m *Manual) Set(t Ticks) {
	m.now = t
}
