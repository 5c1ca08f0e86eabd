//go:build rp2040

// Command joypanel-pico is the RP2040 firmware: a joystick-driven cursor on
// the SSD1306 panel and joystick-driven RGB LED brightness.
//
// Build with: tinygo flash -target=pico ./cmd/joypanel-pico
package main

import (
	"context"
	"log"
	"machine"
	"time"

	"github.com/sweeney/joypanel/internal/analog"
	"github.com/sweeney/joypanel/internal/board"
	"github.com/sweeney/joypanel/internal/display"
	"github.com/sweeney/joypanel/internal/logic"
	"github.com/sweeney/joypanel/internal/panel"
	"github.com/sweeney/joypanel/internal/render"
)

const loopDelay = 10 * time.Microsecond

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run() error {
	state := logic.NewState()
	g := logic.DefaultGeometry

	green := board.NewLED(board.PinGreen, state.GreenLED())
	buttons := board.NewButtons(board.PinJoystick, board.PinAction)

	red, err := board.NewPWM(board.PinRed)
	if err != nil {
		return err
	}
	blue, err := board.NewPWM(board.PinBlue)
	if err != nil {
		return err
	}

	bus, err := board.I2C()
	if err != nil {
		return err
	}
	oled := display.NewSSD1306(bus, display.DefaultAddress, g)

	adc := board.NewADC(machine.ADC0, machine.ADC1)
	sampler := analog.NewSampler(adc, board.ChannelH, board.ChannelV)

	detector := logic.NewEdgeDetector(state, buttons, green, board.Millis)
	if err := buttons.Arm(func(b logic.Button) { detector.OnFallingEdge(b) }); err != nil {
		return err
	}

	ctrl := panel.New(state, sampler, render.New(oled, g), red, blue, panel.Config{
		Geometry: g,
		Delay:    loopDelay,
	})
	log.Printf("started: pico joystick panel")
	return ctrl.Run(context.Background())
}
