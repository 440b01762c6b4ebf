//go:build tinygo

package ssd1306

import (
	"errors"
	"machine"

	oled "tinygo.org/x/drivers/ssd1306"

	"github.com/vovakirdan/picodino/internal/display"
)

// DEFAULT_ADDRESS is the usual I2C address of 128x64 modules.
const DEFAULT_ADDRESS uint8 = 0x3C

// ErrNoDisplay is returned by Init when the panel does not acknowledge.
var ErrNoDisplay = errors.New("ssd1306: no display on bus")

// Device is one panel on an I2C bus.
type Device struct {
	*display.Framebuffer

	bus     *machine.I2C
	address uint16
	panel   oled.Device
	out     *Presenter
}

// New creates a device for a width x height panel at address.
func New(bus *machine.I2C, address uint8, width, height int) *Device {
	d := &Device{
		Framebuffer: display.NewFramebuffer(width, height),
		bus:         bus,
		address:     uint16(address),
		panel:       oled.NewI2C(bus),
	}
	d.out = NewPresenter(&d.panel)
	d.OnPresent = d.out.Present
	return d
}

// Init checks the panel answers, runs the driver's power-up sequence and
// clears the screen.
func (d *Device) Init() error {

	// The driver does not report bus errors from Configure
	if err := d.bus.Tx(d.address, []byte{0x00, oled.DISPLAYOFF}, nil); err != nil {
		return ErrNoDisplay
	}

	d.panel.Configure(oled.Config{
		Width:    int16(d.Width()),
		Height:   int16(d.Height()),
		Address:  d.address,
		VccState: oled.SWITCHCAPVCC,
	})
	d.panel.Command(oled.SETCONTRAST)
	d.panel.Command(255)

	d.Clear()
	d.Present()
	return d.out.Err()
}

// Err returns the first error seen by Present, if any.
func (d *Device) Err() error {
	return d.out.Err()
}
