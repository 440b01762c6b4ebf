//go:build tinygo

// picodino-pico is the firmware build: the game on a Raspberry Pi Pico
// with an SSD1306 OLED on I2C1 and two buttons to ground.
//
// Build:
//
//	tinygo flash -target=pico ./cmd/picodino-pico
package main

import (
	"machine"
	"time"

	"github.com/vovakirdan/picodino/internal/clock"
	"github.com/vovakirdan/picodino/internal/config"
	"github.com/vovakirdan/picodino/internal/games/dino"
	"github.com/vovakirdan/picodino/internal/hw/gpio"
	"github.com/vovakirdan/picodino/internal/hw/rng"
	"github.com/vovakirdan/picodino/internal/hw/ssd1306"
)

const (
	PIN_SCL   machine.Pin = machine.GP15
	PIN_SDA   machine.Pin = machine.GP14
	PIN_JUMP  machine.Pin = machine.GP12
	PIN_RESET machine.Pin = machine.GP7
)

const I2C_FREQUENCY = 400 * machine.KHz

func main() {

	cfg := config.DefaultDinoConfig()

	// Set up the display bus
	i2c := machine.I2C1
	err := i2c.Configure(machine.I2CConfig{
		SCL:       PIN_SCL,
		SDA:       PIN_SDA,
		Frequency: I2C_FREQUENCY,
	})
	if err != nil {
		// Couldn't configure I2C
		halt()
	}

	oled := ssd1306.New(i2c, ssd1306.DEFAULT_ADDRESS, cfg.Display.Width, cfg.Display.Height)
	if err := oled.Init(); err != nil {
		halt()
	}

	buttons := gpio.NewButtons(PIN_JUMP, PIN_RESET)
	game := dino.New(cfg, clock.NewMonotonic(), dino.NewRoller(rng.Seed(machine.GetRNG, time.Now().UnixNano())))

	for {
		game.Tick(buttons, oled)
	}
}

// halt flashes the on-board LED forever. Nothing works without a display.
func halt() {

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(200 * time.Millisecond)
		led.Low()
		time.Sleep(200 * time.Millisecond)
	}
}
