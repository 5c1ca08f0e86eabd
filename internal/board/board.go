//go:build rp2040

package board

import (
	"machine"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

// Pin assignment of the reference board.
const (
	PinGreen    = machine.GP11
	PinBlue     = machine.GP12
	PinRed      = machine.GP13
	PinAction   = machine.GP5
	PinJoystick = machine.GP22

	PinSDA = machine.GP14
	PinSCL = machine.GP15

	// ADC inputs: ADC0 is GP26 (vertical), ADC1 is GP27 (horizontal).
	ChannelV = 0
	ChannelH = 1

	I2CFrequency = 400 * machine.KHz
)

var boot = time.Now()

// Millis returns milliseconds since boot. It wraps after about 49 days.
func Millis() uint32 {
	return uint32(time.Since(boot).Milliseconds())
}

// I2C configures the display bus.
func I2C() (*machine.I2C, error) {
	bus := machine.I2C1
	err := bus.Configure(machine.I2CConfig{
		Frequency: I2CFrequency,
		SDA:       PinSDA,
		SCL:       PinSCL,
	})
	if err != nil {
		return nil, err
	}
	return bus, nil
}

// Buttons are the two active-low buttons with internal pull-ups.
type Buttons struct {
	pins [2]machine.Pin
}

// NewButtons configures the joystick and action button pins as pulled-up
// inputs.
func NewButtons(joystick, action machine.Pin) *Buttons {
	b := &Buttons{}
	b.pins[logic.JoystickButton] = joystick
	b.pins[logic.ActionButton] = action
	for _, p := range b.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

// Asserted reports whether the button is held (line low).
func (b *Buttons) Asserted(btn logic.Button) bool {
	return !b.pins[btn].Get()
}

// Arm installs fn as the falling-edge interrupt handler of both pins.
// fn runs in interrupt context.
func (b *Buttons) Arm(fn func(logic.Button)) error {
	for i, p := range b.pins {
		btn := logic.Button(i)
		if err := p.SetInterrupt(machine.PinFalling, func(machine.Pin) { fn(btn) }); err != nil {
			return err
		}
	}
	return nil
}

// LED is a push-pull output.
type LED struct {
	pin machine.Pin
}

// NewLED configures pin as an output at the initial level.
func NewLED(pin machine.Pin, initial bool) *LED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Set(initial)
	return &LED{pin: pin}
}

// Set drives the LED.
func (l *LED) Set(on bool) error {
	l.pin.Set(on)
	return nil
}
