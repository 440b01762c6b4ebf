// Package ssd1306 puts the game framebuffer on a 128x64 SSD1306 OLED. The
// Device is a display.Renderer: the game draws into its framebuffer and
// every Present pushes display state and the page buffer through the
// tinygo.org/x/drivers panel driver.
package ssd1306

import "github.com/vovakirdan/picodino/internal/display"

// Panel register values, shared with the driver's registers.
const (
	cmdSetContrast uint8 = 0x81
	cmdNormal      uint8 = 0xA6
	cmdInvert      uint8 = 0xA7
)

// Panel is the part of the panel driver a Presenter needs.
// *ssd1306.Device from tinygo.org/x/drivers satisfies it.
type Panel interface {
	Command(cmd uint8)
	SetBuffer(buf []byte) error
	Display() error
}

// Presenter mirrors a framebuffer onto a panel. Display state is only
// sent when it changed since the last frame.
type Presenter struct {
	panel    Panel
	invert   bool
	contrast uint8
	err      error
}

// NewPresenter assumes a freshly configured panel: not inverted, full
// contrast.
func NewPresenter(p Panel) *Presenter {
	return &Presenter{panel: p, contrast: 255}
}

// Present sends changed invert and contrast, then the page buffer. It has
// the signature of display.Framebuffer.OnPresent.
func (p *Presenter) Present(fb *display.Framebuffer) {
	if inv := fb.Inverted(); inv != p.invert {
		if inv {
			p.panel.Command(cmdInvert)
		} else {
			p.panel.Command(cmdNormal)
		}
		p.invert = inv
	}

	if c := fb.Contrast(); c != p.contrast {
		p.panel.Command(cmdSetContrast)
		p.panel.Command(c)
		p.contrast = c
	}

	p.keep(p.panel.SetBuffer(fb.Pages()))
	p.keep(p.panel.Display())
}

// Err returns the first error the panel reported, if any.
func (p *Presenter) Err() error {
	return p.err
}

func (p *Presenter) keep(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}
