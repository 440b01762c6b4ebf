package input

import (
	"sync"
	"testing"
)

func TestLatchConsumesOnRead(t *testing.T) {
	l := NewLatch()

	if l.JumpPressed() || l.ResetPressed() {
		t.Fatal("new latch should have nothing pending")
	}

	l.Press(ButtonJump)
	if l.ResetPressed() {
		t.Error("jump press should not latch reset")
	}
	if !l.JumpPressed() {
		t.Error("JumpPressed() should report the latched press")
	}
	if l.JumpPressed() {
		t.Error("second JumpPressed() should be false")
	}

	l.Press(ButtonReset)
	l.Press(ButtonReset)
	if !l.ResetPressed() || l.ResetPressed() {
		t.Error("repeated presses between polls collapse into one")
	}
}

func TestLatchConcurrentPress(t *testing.T) {
	l := NewLatch()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Press(ButtonJump)
		}()
	}
	wg.Wait()

	if !l.JumpPressed() {
		t.Error("press from goroutines should be visible to the poller")
	}
}

func TestScriptReplaysFrames(t *testing.T) {
	s := NewScript(Frame{Jump: true}, Frame{}, Frame{Reset: true, Jump: true})

	expected := []Frame{{Jump: true}, {}, {Reset: true, Jump: true}, {}, {}}
	for i, want := range expected {
		reset := s.ResetPressed()
		jump := s.JumpPressed()
		if reset != want.Reset || jump != want.Jump {
			t.Errorf("tick %d: got reset=%v jump=%v, expected %+v", i, reset, jump, want)
		}
	}

	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", s.Remaining())
	}
}

func TestIdle(t *testing.T) {
	s := NewScript(Idle(3)...)
	if s.Remaining() != 3 {
		t.Fatalf("Remaining() = %d, expected 3", s.Remaining())
	}
	for i := 0; i < 3; i++ {
		if s.ResetPressed() || s.JumpPressed() {
			t.Errorf("idle frame %d reported a press", i)
		}
	}
}
