package ssd1306

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/picodino/internal/display"
)

type fakePanel struct {
	commands []uint8
	buffer   []byte
	shown    int
	fail     error
}

func (f *fakePanel) Command(cmd uint8) { f.commands = append(f.commands, cmd) }

func (f *fakePanel) SetBuffer(buf []byte) error {
	f.buffer = slices.Clone(buf)
	return f.fail
}

func (f *fakePanel) Display() error {
	f.shown++
	return nil
}

func TestPresentSendsPages(t *testing.T) {
	panel := &fakePanel{}
	fb := display.NewFramebuffer(128, 64)
	fb.OnPresent = NewPresenter(panel).Present

	fb.SetPixel(3, 9, true)
	fb.Present()

	if panel.shown != 1 {
		t.Fatalf("Display called %d times, expected 1", panel.shown)
	}
	if len(panel.buffer) != 128*8 {
		t.Fatalf("buffer is %d bytes, expected %d", len(panel.buffer), 128*8)
	}
	// y=9 is bit 1 of page 1
	if panel.buffer[128+3] != 0x02 {
		t.Errorf("page byte = %#x, expected 0x02", panel.buffer[128+3])
	}
	if len(panel.commands) != 0 {
		t.Errorf("unchanged state sent commands %v", panel.commands)
	}
}

func TestPresentSendsChangedState(t *testing.T) {
	panel := &fakePanel{}
	fb := display.NewFramebuffer(128, 64)
	fb.OnPresent = NewPresenter(panel).Present

	fb.SetInvert(true)
	fb.SetContrast(1)
	fb.Present()
	fb.Present()

	expected := []uint8{cmdInvert, cmdSetContrast, 1}
	if !slices.Equal(panel.commands, expected) {
		t.Errorf("commands = %v, expected %v", panel.commands, expected)
	}

	fb.SetInvert(false)
	fb.Present()
	if last := panel.commands[len(panel.commands)-1]; last != cmdNormal {
		t.Errorf("last command = %#x, expected normal display", last)
	}
}

func TestPresentKeepsFirstError(t *testing.T) {
	boom := errors.New("nack")
	panel := &fakePanel{fail: boom}
	p := NewPresenter(panel)
	fb := display.NewFramebuffer(128, 64)
	fb.OnPresent = p.Present

	fb.Present()
	panel.fail = errors.New("later")
	fb.Present()

	if !errors.Is(p.Err(), boom) {
		t.Errorf("Err() = %v, expected first error", p.Err())
	}
	if panel.shown != 2 {
		t.Error("frames should still be shown after an error")
	}
}
